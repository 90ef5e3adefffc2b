package domain

import "time"

// RawSheet representa a primeira aba da planilha enviada, ainda sem tratamento.
// A linha 0 é descartável, a linha 1 é o cabeçalho real e as demais são dados.
type RawSheet struct {
	Name string
	Rows [][]string
}

// NormalizedRecord representa uma venda de uma base em um período (formato longo)
type NormalizedRecord struct {
	PackOrderID *float64  `json:"pack_order_id"`
	BaseID      *float64  `json:"base_id"`
	Level       int       `json:"level"`
	Period      time.Time `json:"period"` // Sempre o primeiro dia do mês, em UTC
	Value       float64   `json:"value"`
}

// NormalizeStats resume o que foi aproveitado e descartado na normalização
type NormalizeStats struct {
	DataRows       int      `json:"data_rows"`
	DateColumns    int      `json:"date_columns"`
	SkippedColumns []string `json:"skipped_columns"`
	DroppedRecords int      `json:"dropped_records"`
	Records        int      `json:"records"`
}
