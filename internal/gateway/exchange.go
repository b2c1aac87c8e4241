package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RateFetcher returns the current USD to EGP conversion rate.
type RateFetcher interface {
	USDToEGP(ctx context.Context) (float64, error)
}

type ExchangeClient struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewExchangeClient(baseURL string, log *zap.Logger) *ExchangeClient {
	return &ExchangeClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With(zap.String("gateway", "exchange")),
	}
}

type exchangeRateResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (c *ExchangeClient) USDToEGP(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/v4/latest/USD", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build exchange rate request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Exchange rate request failed", zap.Error(err))
		return 0, fmt.Errorf("exchange rate service unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("Exchange rate service returned non-OK status",
			zap.Int("status", resp.StatusCode))
		return 0, fmt.Errorf("exchange rate service returned status %d", resp.StatusCode)
	}

	var result exchangeRateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decode exchange rate response: %w", err)
	}

	rate, ok := result.Rates["EGP"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("exchange rate response missing EGP rate")
	}

	return rate, nil
}
