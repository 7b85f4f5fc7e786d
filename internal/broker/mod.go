package broker

import (
	"context"
	"time"

	"github.com/nikita55612/ftxCollector/internal/broker/ftx/models"
	"github.com/nikita55612/ftxCollector/internal/cdl"
)

// Broker - источник рыночных данных, которым пользуется сборщик
type Broker interface {
	GetMarkets(ctx context.Context) (map[string]models.Market, error)
	GetCandles(ctx context.Context, market string, resolution time.Duration, limit int, start, end *time.Time) ([]cdl.Candle, error)
}
