package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/feedshop/order-settlement/internal/domain"
)

// HTTPCatalogClient реализует domain.ProductPricer через HTTP API каталога.
// Каталог возвращает снимки цен с уже примененными товарными скидками.
type HTTPCatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogClient создает новый клиент каталога
func NewCatalogClient(baseURL string) *HTTPCatalogClient {
	return &HTTPCatalogClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type pricingRequest struct {
	Items []domain.OrderItemRequest `json:"items"`
}

type pricingResponse struct {
	Items []domain.PricedItem `json:"items"`
}

// PriceItems запрашивает цены позиций у каталога
func (c *HTTPCatalogClient) PriceItems(ctx context.Context, items []domain.OrderItemRequest) ([]domain.PricedItem, error) {
	body, err := json.Marshal(pricingRequest{Items: items})
	if err != nil {
		return nil, fmt.Errorf("catalog client: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/internal/pricing", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("catalog client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var pricing pricingResponse
		if err := json.NewDecoder(resp.Body).Decode(&pricing); err != nil {
			return nil, fmt.Errorf("catalog client: failed to decode response: %w", err)
		}
		return pricing.Items, nil

	case http.StatusNotFound:
		return nil, domain.ErrProductNotFound

	case http.StatusConflict:
		// Каталог сигнализирует об отсутствии товара на складе
		return nil, domain.ErrOutOfStock

	default:
		return nil, fmt.Errorf("catalog client: unexpected status code: %d", resp.StatusCode)
	}
}
