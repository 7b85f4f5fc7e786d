package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"

	"github.com/logrusorgru/aurora"
	"github.com/nikita55612/ftxCollector/internal/broker/ftx"
	"github.com/nikita55612/ftxCollector/internal/collector"
	"github.com/nikita55612/ftxCollector/internal/config"
	"github.com/nikita55612/ftxCollector/internal/logger"
	"github.com/nikita55612/ftxCollector/internal/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Bold(aurora.Red(err.Error())))
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.LoadConfig(os.Getenv("FTXC_CONFIG"))
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.WithComponent("metrics").WithError(err).Error("metrics server stopped")
			}
		}()
	}

	cli, err := ftx.NewClientFromEnv(
		ftx.WithBaseURL(cfg.Exchange.BaseURL),
		ftx.WithTimeout(cfg.Exchange.Timeout),
		ftx.WithSubaccount(cfg.Exchange.Subaccount),
		ftx.WithDebug(cfg.Exchange.Debug),
		ftx.WithLogger(log),
		ftx.WithMetrics(m),
	)
	if err != nil {
		return err
	}

	c := collector.New(cli.BrokerImpl(), cfg.Collect, log, m)
	return c.Run(ctx, printSnapshot)
}

func printSnapshot(snap *collector.Snapshot) {
	fmt.Printf("%s %s, markets listed: %d\n",
		aurora.Bold("cycle"), snap.Taken.Format("2006-01-02 15:04:05"), len(snap.Markets))

	names := make([]string, 0, len(snap.Candles))
	for name := range snap.Candles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sum, ok := snap.Summary(name)
		if !ok {
			fmt.Printf("  %s: no candles\n", aurora.Cyan(name))
			continue
		}
		dir := aurora.Yellow("FLAT")
		switch {
		case sum.Direction > 0:
			dir = aurora.Green("UP")
		case sum.Direction < 0:
			dir = aurora.Red("DOWN")
		}
		fmt.Printf("  %s [%s]: %d candles, close %s %s (%+.2f%%), typical %s, turnover %.2f\n",
			aurora.Cyan(name), sum.Kind, sum.Candles,
			formatPrice(sum.LastClose, sum.Precision), aurora.Bold(dir), sum.Change*100,
			formatPrice(sum.Typical, sum.Precision), sum.Turnover)
		fmt.Printf("    avg volume %.2f (z %.2f), volume ratio %.2f, body ratio %.2f, close position %.2f\n",
			sum.AvgVolume, sum.VolumeZ, sum.VolumeRatio, sum.BodyRatio, sum.ClosePosition)
	}

	for name, err := range snap.Failed {
		fmt.Printf("  %s: %s\n", aurora.Cyan(name), aurora.Red(err.Error()))
	}
}

// formatPrice округляет цену до шага инструмента; -1 оставляет исходную запись
func formatPrice(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
