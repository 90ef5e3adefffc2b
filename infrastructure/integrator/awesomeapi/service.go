package awesomeapi

import (
	"context"
	"strconv"
	"strings"

	"github.com/vfg2006/clash-paysheet/infrastructure/integrator/awesomeapi/quoteclient"
	"github.com/vfg2006/clash-paysheet/internal/config"
	"github.com/vfg2006/clash-paysheet/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// RateProvider fornece a cotação atual do par configurado.
// Qualquer falha resulta em ok=false; a cotação nunca é obrigatória.
type RateProvider interface {
	GetRate(ctx context.Context) (rate float64, ok bool)
}

type AwesomeAPIService struct {
	pair   string
	Client quoteclient.Client
}

func New(cfg *config.Config, client quoteclient.Client) *AwesomeAPIService {
	return &AwesomeAPIService{
		pair:   cfg.ExchangeRate.Pair,
		Client: client,
	}
}

func (s *AwesomeAPIService) GetRate(ctx context.Context) (float64, bool) {
	logger := log.ForContext(ctx).WithField("pair", s.pair)

	resp, err := s.Client.GetLastQuote(ctx, s.pair)
	if err != nil {
		logger.WithError(err).Warn("Cotação indisponível")
		return 0, false
	}

	quote, exists := resp[QuoteKey(s.pair)]
	if !exists {
		logger.Warnf("Resposta sem a chave %s", QuoteKey(s.pair))
		return 0, false
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(quote.Bid), 64)
	if err != nil || rate <= 0 {
		logger.Warnf("Valor de compra inválido: %q", quote.Bid)
		return 0, false
	}

	return rate, true
}

// QuoteKey converte o par da URL ("USD-BRL") na chave da resposta ("USDBRL")
func QuoteKey(pair string) string {
	return strings.ToUpper(strings.ReplaceAll(pair, "-", ""))
}
