package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikita55612/ftxCollector/internal/broker"
	"github.com/nikita55612/ftxCollector/internal/broker/ftx/models"
	"github.com/nikita55612/ftxCollector/internal/cdl"
	"github.com/nikita55612/ftxCollector/internal/config"
	"github.com/nikita55612/ftxCollector/internal/logger"
	"github.com/nikita55612/ftxCollector/internal/metrics"
	"github.com/nikita55612/ftxCollector/internal/utils/norm"
	"github.com/nikita55612/ftxCollector/internal/utils/numeric"
	"github.com/sirupsen/logrus"
)

// ErrMarketNotListed - инструмента из конфигурации нет в списке биржи
var ErrMarketNotListed = errors.New("market is not listed by the exchange")

// Snapshot - результат одного цикла сбора
type Snapshot struct {
	ID      string
	Taken   time.Time
	Markets map[string]models.Market
	Candles map[string][]cdl.Candle
	Failed  map[string]error
}

// Summary - краткая сводка по свечам инструмента
type Summary struct {
	Market        string
	Kind          string // spot, future или unknown
	Precision     int    // знаков после запятой в шаге цены, -1 если неизвестно
	Candles       int
	LastClose     float64
	Typical       float64 // (H+L+C)/3 последней свечи
	Change        float64 // (C-O)/O последней свечи
	Turnover      float64 // сумма C*V по всем свечам
	AvgVolume     float64
	Direction     float64
	VolumeRatio   float64
	VolumeZ       float64 // z-score объема последней свечи
	BodyRatio     float64 // тело последней свечи к телу предыдущей
	ClosePosition float64 // положение Close в диапазоне предыдущей свечи
}

// Summary возвращает сводку по собранным свечам; false, если свечей нет
func (s *Snapshot) Summary(market string) (Summary, bool) {
	candles := s.Candles[market]
	n := len(candles)
	if n == 0 {
		return Summary{}, false
	}
	last := &candles[n-1]
	volumes := cdl.ListOfCandleArg(candles, cdl.Volume)
	sum := Summary{
		Market:    market,
		Kind:      "unknown",
		Precision: -1,
		Candles:   n,
		LastClose: last.C,
		Typical:   last.Arg(cdl.HLC),
		Change:    last.Arg(cdl.RateOfChange),
		Turnover:  numeric.Sum(cdl.ListOfCandleArg(candles, cdl.PriceVolume)),
		AvgVolume: numeric.Avg(volumes),
		Direction: last.Arg(cdl.Direction),
		VolumeZ:   norm.ZScore(volumes),
	}
	if m, ok := s.Markets[market]; ok {
		switch {
		case m.IsSpot():
			sum.Kind = "spot"
		case m.IsFuture():
			sum.Kind = "future"
		}
		if p, ok := m.PricePrecision(); ok {
			sum.Precision = p
		}
	}
	if n > 1 {
		prev := &candles[n-2]
		sum.VolumeRatio = cdl.ListOfCandleRatio(candles, cdl.VolumeRatio, 1)[n-1]
		sum.BodyRatio = last.Ratio(cdl.BodyStrengthRatio, prev)
		sum.ClosePosition = last.Ratio(cdl.ClosePositionRatio, prev)
	}
	return sum, true
}

// Collector периодически забирает список инструментов и свечи по настроенным инструментам
type Collector struct {
	src     broker.Broker
	cfg     config.Collect
	log     *logrus.Entry
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(src broker.Broker, cfg config.Collect, log *logger.Log, m *metrics.Metrics) *Collector {
	if log == nil {
		log = logger.Discard()
	}
	return &Collector{
		src:     src,
		cfg:     cfg,
		log:     log.WithComponent("collector"),
		metrics: m,
		now:     time.Now,
	}
}

// Collect выполняет один цикл сбора. Ошибка списка инструментов прерывает цикл,
// ошибки по отдельным инструментам попадают в Snapshot.Failed.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		ID:      uuid.NewString(),
		Taken:   c.now(),
		Candles: make(map[string][]cdl.Candle, len(c.cfg.Markets)),
		Failed:  make(map[string]error),
	}
	log := c.log.WithField("cycle", snap.ID)

	markets, err := c.src.GetMarkets(ctx)
	if err != nil {
		c.metrics.ObserveCycle(cycleOutcome(ctx, "failed"))
		return nil, fmt.Errorf("list markets: %w", err)
	}
	snap.Markets = markets
	log.WithField("markets", len(markets)).Info("markets listed")

	var start *time.Time
	if c.cfg.Lookback > 0 {
		t := snap.Taken.Add(-c.cfg.Lookback)
		start = &t
	}

	for _, name := range c.cfg.Markets {
		if ctx.Err() != nil {
			break
		}
		if _, ok := markets[name]; !ok {
			c.fail(log, snap, name, ErrMarketNotListed)
			continue
		}
		candles, err := c.src.GetCandles(ctx, name, c.cfg.Resolution, c.cfg.Limit, start, nil)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			c.fail(log, snap, name, err)
			continue
		}
		snap.Candles[name] = candles
		log.WithFields(logrus.Fields{
			"market":  name,
			"candles": len(candles),
		}).Debug("candles collected")
	}

	if err := ctx.Err(); err != nil {
		c.metrics.ObserveCycle("cancelled")
		return nil, err
	}

	outcome := "ok"
	if len(snap.Failed) > 0 {
		outcome = "partial"
	}
	c.metrics.ObserveCycle(outcome)
	return snap, nil
}

// cycleOutcome отличает остановку по ctx от ошибки биржи
func cycleOutcome(ctx context.Context, outcome string) string {
	if ctx.Err() != nil {
		return "cancelled"
	}
	return outcome
}

func (c *Collector) fail(log *logrus.Entry, snap *Snapshot, market string, err error) {
	snap.Failed[market] = err
	c.metrics.MarketFailure(market)
	log.WithField("market", market).WithError(err).Warn("candles not collected")
}

// Run выполняет цикл сбора и передает результат в handle. При PollInterval > 0
// циклы повторяются до отмены ctx; ошибки цикла логируются и не останавливают сбор.
// Отмена ctx не считается ошибкой.
func (c *Collector) Run(ctx context.Context, handle func(*Snapshot)) error {
	if c.cfg.PollInterval <= 0 {
		snap, err := c.Collect(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil:
			return err
		}
		handle(snap)
		return nil
	}

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()
	for {
		snap, err := c.Collect(ctx)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil:
			c.log.WithError(err).Error("collect cycle failed")
		default:
			handle(snap)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
