package main_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/nikita55612/ftxCollector/internal/broker/ftx"
)

func liveClient(t *testing.T) *ftx.Client {
	t.Helper()
	cli, err := ftx.NewClientFromEnv(ftx.WithTimeout(15 * time.Second))
	if err != nil {
		t.Skipf("live exchange credentials not configured: %v", err)
	}
	return cli
}

func TestGetMarkets(t *testing.T) {
	cli := liveClient(t)
	markets, err := cli.GetMarkets(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	m, ok := markets["BTC-PERP"]
	if !ok {
		t.Fatalf("BTC-PERP not listed among %d markets", len(markets))
	}
	data, _ := json.MarshalIndent(m, "", "    ")
	fmt.Println(string(data))
}

func TestGetTrades(t *testing.T) {
	cli := liveClient(t)
	start := time.Now().Add(-2 * time.Hour)
	candles, err := cli.GetTrades(context.Background(), "BTC-PERP", 300, 10, &start, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range candles {
		fmt.Println(*c.AsArr())
	}
}
