package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/avc/cashback-settlement/internal/domain"
)

// HTTPGatewayClient реализует domain.GatewayClient поверх HTTP API
// внешнего шлюза расчетов.
type HTTPGatewayClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGatewayClient создает новый GatewayClient
func NewGatewayClient(baseURL string) domain.GatewayClient {
	return &HTTPGatewayClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetSettlementStatus получает статус расчета по покупке.
// Возвращает nil без ошибки, если покупка еще не зарегистрирована в шлюзе.
func (c *HTTPGatewayClient) GetSettlementStatus(ctx context.Context, purchaseID int64) (*domain.SettlementStatus, error) {
	url := fmt.Sprintf("%s/api/settlements/%d", c.baseURL, purchaseID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway client: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var status domain.SettlementStatus
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			return nil, fmt.Errorf("gateway client: failed to decode response: %w", err)
		}
		return &status, nil

	case http.StatusNoContent:
		// Покупка еще не зарегистрирована в шлюзе
		return nil, nil

	case http.StatusTooManyRequests:
		// Слишком много запросов, нужно повторить позже
		retryAfter := resp.Header.Get("Retry-After")
		seconds, _ := strconv.Atoi(retryAfter)
		return nil, NewRateLimitError(time.Duration(seconds) * time.Second)

	default:
		return nil, fmt.Errorf("gateway client: unexpected status code: %d", resp.StatusCode)
	}
}
