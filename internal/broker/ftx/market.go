package ftx

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/nikita55612/ftxCollector/internal/broker/ftx/models"
	"github.com/nikita55612/ftxCollector/internal/cdl"
)

// GetMarkets возвращает все инструменты биржи, индексированные по имени.
// Ошибка декодирования любого элемента отменяет результат целиком.
// https://docs.ftx.com/#get-markets
func (c *Client) GetMarkets(ctx context.Context) (map[string]models.Market, error) {
	const endpoint = "GetMarkets"
	start := time.Now()

	records, err := c.callAPI(ctx, "/markets", nil)
	if err != nil {
		c.observe(endpoint, start, err, 0)
		return nil, err.SetEndpoint(endpoint)
	}
	list, err := decodeRecords(records, marketFromRaw)
	if err != nil {
		c.observe(endpoint, start, err, 0)
		return nil, err.SetEndpoint(endpoint)
	}
	c.observe(endpoint, start, nil, len(list))

	markets := make(map[string]models.Market, len(list))
	for _, m := range list {
		markets[m.Name] = m
	}
	return markets, nil
}

// GetTrades возвращает исторические свечи инструмента в порядке, полученном от биржи.
// resolution - длительность свечи в секундах, limit - максимальное число свечей;
// оба значения передаются бирже без проверки. startTime и endTime необязательны.
// https://docs.ftx.com/#get-historical-prices
func (c *Client) GetTrades(
	ctx context.Context,
	marketName string,
	resolution int,
	limit int,
	startTime *time.Time,
	endTime *time.Time,
) ([]cdl.Candle, error) {
	const endpoint = "GetTrades"
	start := time.Now()

	if marketName == "" {
		err := NewError(ArgumentErrorT, errors.New("market name is empty"))
		c.observe(endpoint, start, err, 0)
		return nil, err.SetEndpoint(endpoint)
	}

	records, err := c.callAPI(ctx, marketPath(marketName)+"/candles", candlesQuery(resolution, limit, startTime, endTime))
	if err != nil {
		c.observe(endpoint, start, err, 0)
		return nil, err.SetEndpoint(endpoint)
	}
	candles, err := decodeRecords(records, candleFromRaw)
	if err != nil {
		c.observe(endpoint, start, err, 0)
		return nil, err.SetEndpoint(endpoint)
	}
	c.observe(endpoint, start, nil, len(candles))

	return candles, nil
}

// candlesQuery формирует параметры запроса свечей; границы интервала передаются в секундах
func candlesQuery(resolution, limit int, startTime, endTime *time.Time) url.Values {
	query := make(url.Values)
	query.Set("resolution", strconv.Itoa(resolution))
	query.Set("limit", strconv.Itoa(limit))
	if startTime != nil {
		query.Set("start_time", strconv.FormatInt(startTime.Unix(), 10))
	}
	if endTime != nil {
		query.Set("end_time", strconv.FormatInt(endTime.Unix(), 10))
	}
	return query
}
