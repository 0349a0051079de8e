package client

import (
	"context"
	"fmt"

	"github.com/DasULTRAS/splitwise-sdk/internal/http"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// CategoriesClient implements splitwise.CategoriesClient.
type CategoriesClient struct {
	httpClient *http.Client
}

// NewCategoriesClient creates a new categories client.
func NewCategoriesClient(httpClient *http.Client) *CategoriesClient {
	return &CategoriesClient{
		httpClient: httpClient,
	}
}

// List implements splitwise.CategoriesClient.List.
func (c *CategoriesClient) List(ctx context.Context) ([]splitwise.Category, error) {
	resp, err := c.httpClient.Get(ctx, "/get_categories", nil)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	var envelope struct {
		Categories []splitwise.Category `json:"categories"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing categories list: %w", err)
	}

	return envelope.Categories, nil
}
