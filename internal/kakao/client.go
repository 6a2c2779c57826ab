// Package kakao содержит клиент Kakao Local API: геокодирование и поиск заведений.
package kakao

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/akozadaev/lunch_solution_center/internal/apperr"
	"github.com/akozadaev/lunch_solution_center/internal/logging"
	"github.com/akozadaev/lunch_solution_center/internal/models"
)

// DefaultBaseURL - адрес Kakao Local API.
const DefaultBaseURL = "https://dapi.kakao.com"

const providerName = "Kakao"

// Client выполняет запросы к Kakao Local API.
// Все запросы последовательные, без повторов.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создает клиент Kakao Local API.
// Пустой baseURL заменяется на DefaultBaseURL.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.OrNop(logger),
	}
}

// documentsResponse - общий формат ответа поисковых эндпоинтов Kakao.
type documentsResponse struct {
	Meta struct {
		TotalCount    int  `json:"total_count"`
		PageableCount int  `json:"pageable_count"`
		IsEnd         bool `json:"is_end"`
	} `json:"meta"`
	Documents []models.PlaceRecord `json:"documents"`
}

// errorResponse - тело ошибки Kakao.
type errorResponse struct {
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
}

// get выполняет GET запрос и декодирует успешный ответ.
// Неуспешный статус возвращается как *apperr.UpstreamError.
func (c *Client) get(ctx context.Context, path string, params url.Values) (*documentsResponse, error) {
	if c.apiKey == "" {
		return nil, &apperr.ConfigurationError{Key: "KAKAO_REST_API_KEY"}
	}

	fullURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Kakao API: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Kakao response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.logger.Error("kakao api error",
			zap.String("path", path),
			zap.Int("status", res.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, &apperr.UpstreamError{
			Provider: providerName,
			Status:   res.StatusCode,
			Detail:   errorDetail(body),
		}
	}

	var result documentsResponse
	if len(body) == 0 {
		return &result, nil
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode Kakao response: %w", err)
	}

	return &result, nil
}

func errorDetail(body []byte) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.ErrorType != "" {
		return fmt.Sprintf("%s: %s", e.ErrorType, e.Message)
	}
	if len(body) > 0 {
		return string(body)
	}
	return "no body"
}
