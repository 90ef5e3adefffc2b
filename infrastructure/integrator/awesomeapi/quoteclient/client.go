package quoteclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	awesomeapidomain "github.com/vfg2006/clash-paysheet/infrastructure/integrator/awesomeapi/domain"
	"github.com/vfg2006/clash-paysheet/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

type Client interface {
	GetLastQuote(ctx context.Context, pair string) (awesomeapidomain.QuoteResponse, error)
}

type AwesomeAPIClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente HTTP da AwesomeAPI com o timeout configurado
func NewClient(cfg *config.Config) Client {
	return &AwesomeAPIClient{
		httpClient: &http.Client{
			Timeout: cfg.ExchangeRate.Timeout,
		},
		baseURL: cfg.ExchangeRate.URL,
	}
}

// GetLastQuote consulta a última cotação do par (ex.: "USD-BRL")
func (c *AwesomeAPIClient) GetLastQuote(ctx context.Context, pair string) (awesomeapidomain.QuoteResponse, error) {
	var response awesomeapidomain.QuoteResponse

	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, pair)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr awesomeapidomain.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			return response, fmt.Errorf("requisição falhou com status %s: %s", resp.Status, apiErr.Message)
		}
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
