package domain

import "time"

// SheetSession guarda em memória a planilha normalizada de um upload
type SheetSession struct {
	ID        string
	FileName  string
	CreatedAt time.Time
	ExpiresAt time.Time
	Records   []NormalizedRecord
	Stats     NormalizeStats
}

type SheetSessionResponse struct {
	ID        string            `json:"id"`
	FileName  string            `json:"file_name"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
	Records   int               `json:"records"`
	Stats     NormalizeStats    `json:"stats"`
	Periods   *AvailablePeriods `json:"periods"`
}

func (s *SheetSession) ToResponse() *SheetSessionResponse {
	return &SheetSessionResponse{
		ID:        s.ID,
		FileName:  s.FileName,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
		Records:   len(s.Records),
		Stats:     s.Stats,
		Periods:   NewAvailablePeriods(s.Records),
	}
}

// ExchangeRateResponse representa a cotação USD-BRL exposta pela API
type ExchangeRateResponse struct {
	Available bool     `json:"available"`
	Rate      *float64 `json:"rate,omitempty"`
}
