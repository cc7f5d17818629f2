package main

import (
	"context"
	"flag"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vegamm/internal/feed"
	"vegamm/internal/obs"
	"vegamm/internal/ops"
	"vegamm/internal/store"
	"vegamm/internal/strategy"
	"vegamm/internal/venue"
	"vegamm/internal/wallet"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logs.Errorf("agent: %+v", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := ops.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.PyroscopeURL != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "vegamm.agent",
			ServerAddress:   cfg.PyroscopeURL,
		})
		if err != nil {
			return errors.Wrap(err, "start profiler")
		}
		defer profiler.Stop()
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}

	w1 := wallet.NewClient(cfg.Wallets[0].ServiceURL, cfg.Wallets[0].Token, cfg.Wallets[0].PublicKey, httpClient)
	w2 := wallet.NewClient(cfg.Wallets[1].ServiceURL, cfg.Wallets[1].Token, cfg.Wallets[1].PublicKey, httpClient)
	logs.Infof("loaded wallet 1 with public key %s", w1.PubKey())
	logs.Infof("loaded wallet 2 with public key %s", w2.PubKey())

	ref := feed.NewRefPrice()
	binance := feed.NewBinanceFeed(ctx, cfg.Feed.WSURL, ref)
	if err := binance.StartWebsocket(ctx); err != nil {
		return errors.Wrap(err, "start reference feed")
	}
	defer binance.Close()
	if err := binance.SubscribeBookTicker(ctx, cfg.Feed.Market); err != nil {
		return errors.Wrap(err, "subscribe book ticker")
	}
	unsubscribe := binance.ObserveBookTicker(ctx)
	defer unsubscribe()

	query := venue.NewClient(cfg.Venue.GatewayURL, httpClient)
	st, err := store.New(ctx, query, cfg.Venue.MarketID)
	if err != nil {
		return errors.Wrap(err, "initialize venue store")
	}

	metrics := obs.NewMetrics()
	streams := venue.NewStream(cfg.Venue.StreamURL)
	store.RunSync(ctx, st, streams, cfg.Venue.MarketID, w1.PubKey(), w2.PubKey(), metrics)

	go logMetrics(ctx, metrics)

	engine := strategy.New(strategy.Config{
		MarketID:       cfg.Venue.MarketID,
		TradeSize:      cfg.TradeSize,
		SubmissionRate: cfg.SubmissionRate,
		JitterMax:      cfg.JitterMax,
	}, st, ref, w1, w2, rand.New(rand.NewSource(time.Now().UnixNano())), metrics)

	engine.Run(ctx)
	return nil
}

func logMetrics(ctx context.Context, metrics *obs.Metrics) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logs.Infof("metrics: %+v", metrics.Snapshot())
		}
	}
}
