package gitea

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Kargones/gitea-vcs/internal/constants"
	"github.com/Kargones/gitea-vcs/internal/pkg/logging"
	"github.com/Kargones/gitea-vcs/internal/pkg/metrics"
	"github.com/Kargones/gitea-vcs/internal/pkg/tracing"
	"github.com/Kargones/gitea-vcs/internal/pkg/urlutil"

	"github.com/rs/xid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/oauth2"
)

var (
	errBaseURLRequired = errors.New("не указан адрес сервера Gitea")
	errBaseURLInvalid  = errors.New("адрес сервера Gitea должен быть абсолютным URL")
)

// request описывает один вызов API.
type request struct {
	operation string
	method    string
	// path - путь относительно /api/v1; сегменты экранирует вызывающий код.
	path   string
	query  url.Values
	body   any
	expect int
}

// transport выполняет запросы к API и проверяет статус ответа.
// После создания не изменяется и безопасен для конкурентного использования.
type transport struct {
	base    *url.URL
	client  *http.Client
	token   string
	user    string
	pass    string
	logger  logging.Logger
	metrics metrics.Collector
}

// newTokenTransport создаёт transport, аутентифицированный токеном:
// заголовок ставит oauth2.Transport, query-параметр добавляет do.
func newTokenTransport(base *url.URL, cfg Config, token string) *transport {
	client := *cfg.HTTPClient
	client.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   constants.TokenHeaderType,
		}),
		Base: cfg.HTTPClient.Transport,
	}
	return &transport{
		base:    base,
		client:  &client,
		token:   token,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// newBasicTransport создаёт transport с basic auth для эндпоинтов /users/{name}/tokens.
func newBasicTransport(base *url.URL, cfg Config) *transport {
	return &transport{
		base:    base,
		client:  cfg.HTTPClient,
		user:    cfg.Username,
		pass:    cfg.Password,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// do выполняет запрос. Статус, отличный от r.expect, возвращается как *APIError.
func (t *transport) do(ctx context.Context, r request) (*Response, error) {
	// r.path уже экранирован: он идёт в RawPath, а Path получает
	// неэкранированную форму, иначе URL.String экранирует его повторно.
	rawPath := strings.TrimRight(t.base.EscapedPath(), "/") + r.path
	path, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, NewGiteaError(ErrGiteaValidation, "некорректный путь запроса "+r.operation, err)
	}
	u := *t.base
	u.Path = path
	u.RawPath = rawPath
	q := url.Values{}
	for k, v := range r.query {
		q[k] = v
	}
	if t.token != "" {
		q.Set(constants.TokenQueryParam, t.token)
	}
	u.RawQuery = q.Encode()

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, NewGiteaError(ErrGiteaValidation, "не удалось сериализовать тело запроса "+r.operation, err)
		}
		body = bytes.NewReader(data)
	}

	ctx, span := tracing.StartSpan(ctx, "gitea."+r.operation,
		attribute.String("http.request.method", r.method),
		attribute.String("url.path", u.Path),
	)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, NewGiteaError(ErrGiteaValidation, "не удалось создать запрос "+r.operation, err)
	}
	requestID := xid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.user != "" {
		req.SetBasicAuth(t.user, t.pass)
	}

	log := t.logger.With(
		"request_id", requestID,
		"operation", r.operation,
		"method", r.method,
		"url", urlutil.RedactURL(&u),
	)
	if traceID := tracing.TraceIDFromContext(ctx); traceID != "" {
		log = log.With("trace_id", traceID)
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		elapsed := time.Since(start)
		t.metrics.RecordRequest(r.operation, 0, elapsed, false)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		log.Warn("gitea: запрос не выполнен", "error", err.Error(), "duration_ms", elapsed.Milliseconds())
		return nil, transportError(ctx, r.operation, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("gitea: не удалось закрыть тело ответа", "error", closeErr.Error())
		}
	}()

	data, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		t.metrics.RecordRequest(r.operation, resp.StatusCode, elapsed, false)
		span.RecordError(err)
		span.SetStatus(codes.Error, "read body")
		return nil, transportError(ctx, r.operation, err)
	}

	ok := resp.StatusCode == r.expect
	t.metrics.RecordRequest(r.operation, resp.StatusCode, elapsed, ok)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	log.Debug("gitea: запрос выполнен",
		"status", resp.StatusCode,
		"expected", r.expect,
		"duration_ms", elapsed.Milliseconds(),
	)

	raw := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}
	if !ok {
		span.SetStatus(codes.Error, fmt.Sprintf("unexpected status %d", resp.StatusCode))
		return nil, &APIError{
			Operation:  r.operation,
			StatusCode: resp.StatusCode,
			Expected:   r.expect,
			Response:   raw,
		}
	}
	return raw, nil
}

// transportError различает отмену/таймаут и прочие сетевые ошибки.
// URL в *url.Error очищается от токена.
func transportError(ctx context.Context, operation string, err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if u, perr := url.Parse(uerr.URL); perr == nil {
			uerr.URL = urlutil.RedactURL(u)
		}
	}
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return NewGiteaError(ErrGiteaTimeout, operation+": превышено время ожидания", err)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewGiteaError(ErrGiteaTimeout, operation+": превышено время ожидания", err)
	}
	return NewGiteaError(ErrGiteaConnect, operation+": ошибка подключения к Gitea", err)
}

// ListOptions - параметры постраничного вывода. Нулевые значения не передаются.
type ListOptions struct {
	// Page - номер страницы, начиная с 1.
	Page int
	// Limit - размер страницы.
	Limit int
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", fmt.Sprint(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", fmt.Sprint(o.Limit))
	}
	return q
}
