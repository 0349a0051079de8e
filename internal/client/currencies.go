package client

import (
	"context"
	"fmt"

	"github.com/DasULTRAS/splitwise-sdk/internal/http"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// CurrenciesClient implements splitwise.CurrenciesClient.
type CurrenciesClient struct {
	httpClient *http.Client
}

// NewCurrenciesClient creates a new currencies client.
func NewCurrenciesClient(httpClient *http.Client) *CurrenciesClient {
	return &CurrenciesClient{
		httpClient: httpClient,
	}
}

// List implements splitwise.CurrenciesClient.List.
func (c *CurrenciesClient) List(ctx context.Context) ([]splitwise.Currency, error) {
	resp, err := c.httpClient.Get(ctx, "/get_currencies", nil)
	if err != nil {
		return nil, fmt.Errorf("listing currencies: %w", err)
	}

	var envelope struct {
		Currencies []splitwise.Currency `json:"currencies"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing currencies list: %w", err)
	}

	return envelope.Currencies, nil
}
