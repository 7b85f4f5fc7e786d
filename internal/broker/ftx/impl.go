package ftx

import (
	"context"
	"time"

	"github.com/nikita55612/ftxCollector/internal/broker"
	"github.com/nikita55612/ftxCollector/internal/broker/ftx/models"
	"github.com/nikita55612/ftxCollector/internal/cdl"
)

func (c *Client) BrokerImpl() broker.Broker {
	return &BrokerImpl{cli: c}
}

type BrokerImpl struct {
	cli *Client
}

func (b *BrokerImpl) GetMarkets(ctx context.Context) (map[string]models.Market, error) {
	return b.cli.GetMarkets(ctx)
}

// GetCandles переводит длительность свечи в секунды, как того требует API
func (b *BrokerImpl) GetCandles(
	ctx context.Context,
	market string,
	resolution time.Duration,
	limit int,
	start, end *time.Time,
) ([]cdl.Candle, error) {
	return b.cli.GetTrades(ctx, market, int(resolution/time.Second), limit, start, end)
}
