package awesomeapidomain

// Quote representa uma cotação devolvida pela AwesomeAPI.
// Os valores numéricos chegam como texto.
type Quote struct {
	Code       string `json:"code"`
	CodeIn     string `json:"codein"`
	Name       string `json:"name"`
	High       string `json:"high"`
	Low        string `json:"low"`
	Bid        string `json:"bid"`
	Ask        string `json:"ask"`
	Timestamp  string `json:"timestamp"`
	CreateDate string `json:"create_date"`
}

// QuoteResponse é indexada pelo par sem hífen ("USDBRL")
type QuoteResponse map[string]Quote

// ErrorResponse é o corpo devolvido pela AwesomeAPI quando o par não existe
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
