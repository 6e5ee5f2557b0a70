// Типизированный клиент одной коллекции внешнего сервиса хранения.
// Сервис хранения - это REST-подобный mock-API: GET / (список, с
// best-effort фильтрами равенства), GET /{id}, POST / (сервис назначает id),
// PUT /{id} (полная замена), DELETE /{id} (ответ - удаленный объект).
// Никаких ретраев, кэшей и пагинации: каждый вызов - свежий запрос по сети.
package mockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "inventory-system/pkg/errors"

	"go.uber.org/zap"
)

// Collection - клиент одной коллекции. T - тип сущности коллекции.
type Collection[T any] struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func NewCollection[T any](baseURL string, timeout time.Duration, logger *zap.Logger) *Collection[T] {
	return &Collection[T]{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.Named("mockapi"),
	}
}

// List возвращает всю коллекцию. params - best-effort фильтры равенства;
// сервис может их игнорировать, поэтому вызывающий обязан фильтровать сам.
func (c *Collection[T]) List(ctx context.Context, params url.Values) ([]T, error) {
	raw, err := c.do(ctx, http.MethodGet, "", params, nil)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON списка из %s: %w", c.baseURL, err)
	}
	c.logger.Debug("Коллекция получена", zap.String("url", c.baseURL), zap.Int("count", len(items)))
	return items, nil
}

func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	raw, err := c.do(ctx, http.MethodGet, "/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](c.baseURL, raw)
}

// Create отправляет сущность на POST /; сервис назначает id и возвращает
// сохраненный объект.
func (c *Collection[T]) Create(ctx context.Context, payload T) (*T, error) {
	raw, err := c.do(ctx, http.MethodPost, "", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](c.baseURL, raw)
}

// Update - полная замена: PUT /{id}. Слияние полей - забота вызывающего.
func (c *Collection[T]) Update(ctx context.Context, id string, payload T) (*T, error) {
	raw, err := c.do(ctx, http.MethodPut, "/"+url.PathEscape(id), nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](c.baseURL, raw)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) (*T, error) {
	raw, err := c.do(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](c.baseURL, raw)
}

func (c *Collection[T]) do(ctx context.Context, method, path string, params url.Values, body interface{}) (json.RawMessage, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации тела запроса для %s: %w", fullURL, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания %s-запроса для %s: %w", method, fullURL, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &apperrors.NetworkError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("Сервис хранения вернул ошибку",
			zap.String("url", fullURL),
			zap.String("status", resp.Status),
		)
		return nil, &apperrors.ServerError{URL: fullURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

func decodeOne[T any](baseURL string, raw json.RawMessage) (*T, error) {
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON объекта из %s: %w", baseURL, err)
	}
	return &item, nil
}
