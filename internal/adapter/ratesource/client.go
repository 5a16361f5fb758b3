package ratesource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fx-wallet/config"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Client implements ports.RateSource against an exchangerate-api style
// provider: GET {base_url}/v6/{api_key}/latest/{BASE}. One request per call,
// no caching, no retry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        zerolog.Logger
}

// NewClient creates a rate source client from configuration.
func NewClient(cfg config.RateSourceConfig, log zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		log:        log,
	}
}

// latestPayload is the provider's success envelope. Anything else — non-2xx
// status, result != "success", or a missing rate map — is a uniform failure.
type latestPayload struct {
	Result          string                     `json:"result"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// Latest fetches the rate mapping for the given base currency.
func (c *Client) Latest(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/v6/%s/latest/%s", c.baseURL, c.apiKey, strings.ToUpper(baseCurrency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build rate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate source returned status %d", resp.StatusCode)
	}

	var payload latestPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode rate payload: %w", err)
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("rate source result %q", payload.Result)
	}
	if len(payload.ConversionRates) == 0 {
		return nil, fmt.Errorf("rate payload has no conversion rates")
	}

	c.log.Debug().
		Str("base_currency", baseCurrency).
		Int("rates", len(payload.ConversionRates)).
		Msg("rates fetched")

	return payload.ConversionRates, nil
}
