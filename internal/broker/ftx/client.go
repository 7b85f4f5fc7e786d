package ftx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/nikita55612/ftxCollector/internal/logger"
	"github.com/nikita55612/ftxCollector/internal/metrics"
	"github.com/nikita55612/httpx"
	"github.com/sirupsen/logrus"
)

const MAINNET = "https://ftx.com/api"

const (
	headerKey        = "FTX-KEY"
	headerSign       = "FTX-SIGN"
	headerTimestamp  = "FTX-TS"
	headerSubaccount = "FTX-SUBACCOUNT"
)

const defaultTimeout = 10 * time.Second

// timeNowMillis возвращает текущее время UTC в миллисекундах; подменяется в тестах
var timeNowMillis = func() int64 { return time.Now().UnixMilli() }

// Client представляет клиент для работы с REST API FTX.
// После создания клиент не изменяется и безопасен для конкурентного использования.
type Client struct {
	baseURL    string           // базовый URL API
	apiKey     string           // публичный API-ключ для аутентификации
	signer     *Signer          // подпись запросов секретным ключом
	subaccount string           // имя субаккаунта (необязательно)
	timeout    time.Duration    // таймаут одного запроса (0 - без таймаута)
	debug      bool             // логировать строку подписи
	log        *logrus.Entry    // логгер клиента
	metrics    *metrics.Metrics // метрики запросов (может быть nil)
}

// NewClient создает новый экземпляр клиента для работы с API FTX.
// Учетные данные не проверяются локально: неверный ключ приводит к 401 от биржи.
func NewClient(apiKey, apiSecret string, opts ...Option) *Client {
	client := &Client{
		baseURL: MAINNET,
		apiKey:  apiKey,
		signer:  NewSigner(apiSecret),
		timeout: defaultTimeout,
		log:     logger.Discard().WithComponent("ftx"),
	}
	for _, option := range opts {
		option(client)
	}
	return client
}

// NewClientFromEnv создает клиента по переменным окружения FTX_API_KEY и FTX_API_SECRET.
// Если в рабочем каталоге есть файл .env, переменные загружаются из него.
func NewClientFromEnv(opts ...Option) (*Client, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: NewClientFromEnv: failed to load .env file: %w", errorTitle, err)
	}
	apiKey := os.Getenv("FTX_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("%s: NewClientFromEnv: FTX_API_KEY is not set", errorTitle)
	}
	apiSecret := os.Getenv("FTX_API_SECRET")
	if apiSecret == "" {
		return nil, fmt.Errorf("%s: NewClientFromEnv: FTX_API_SECRET is not set", errorTitle)
	}
	return NewClient(apiKey, apiSecret, opts...), nil
}

// Option определяет тип функции для настройки Client
type Option func(*Client)

// WithBaseURL устанавливает пользовательский базовый URL API
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout устанавливает таймаут для HTTP-запросов (0 отключает таймаут)
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithSubaccount устанавливает субаккаунт для запросов
func WithSubaccount(name string) Option {
	return func(c *Client) {
		c.subaccount = name
	}
}

// WithDebug включает логирование строки подписи на уровне debug
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithLogger устанавливает логгер клиента
func WithLogger(log *logger.Log) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log.WithComponent("ftx")
		}
	}
}

// WithMetrics включает сбор метрик запросов
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func (c *Client) String() string {
	return fmt.Sprintf("ftx.Client{baseURL: %s, apiKey: ***, secret: ***}", c.baseURL)
}

func (c *Client) GoString() string {
	return c.String()
}

// callAPI выполняет подписанный GET-запрос и возвращает элементы массива result
func (c *Client) callAPI(ctx context.Context, path string, query url.Values) ([]json.RawMessage, *Error) {
	endpoint, err := url.Parse(strings.TrimRight(c.baseURL, "/") + path)
	if err != nil {
		err = fmt.Errorf("invalid request url: %w", err)
		return nil, NewError(InternalErrorT, err)
	}

	timestamp := timeNowMillis()
	signPath := endpoint.EscapedPath()
	req := httpx.Get(endpoint.String()).WithHeader(
		headerKey, c.apiKey,
		headerSign, c.signer.Sign(timestamp, http.MethodGet, signPath),
		headerTimestamp, timestamp,
		"Accept", "application/json",
	)
	if c.subaccount != "" {
		req = req.WithHeader(headerSubaccount, url.PathEscape(c.subaccount))
	}
	for key := range query {
		req = req.WithQuery(key, query.Get(key))
	}
	req = req.WithContext(ctx)
	if c.timeout > 0 {
		req = req.WithTimeout(c.timeout)
	}

	log := c.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"path":       signPath,
	})
	if c.debug {
		log.WithField("sign_payload", c.signer.Payload(timestamp, http.MethodGet, signPath)).
			Debug("signing request")
	}

	res, err := req.Build().Do()
	if err != nil {
		return nil, NewError(RequestErrorT, err)
	}
	defer res.Close()

	log.WithField("status", res.StatusCode).Debug("response received")
	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil, newStatusError(res.StatusCode, res.Status)
	}

	body, err := res.ReadBody()
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return nil, NewError(RequestErrorT, err)
	}

	return unwrapEnvelope(body)
}

// observe учитывает завершенный вызов в метриках и логе
func (c *Client) observe(endpoint string, start time.Time, err *Error, records int) {
	outcome := "ok"
	if err != nil {
		outcome = string(err.Type)
		c.log.WithField("endpoint", endpoint).WithError(err).Debug("request failed")
	}
	c.metrics.ObserveRequest(endpoint, outcome, time.Since(start))
	c.metrics.AddRecords(endpoint, records)
}
