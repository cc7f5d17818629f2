package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Venue     VenueConfig     `json:"venue"`
	Feed      FeedConfig      `json:"feed"`
	Wallets   []WalletConfig  `json:"wallets"`
	Trading   TradingConfig   `json:"trading"`
	Profiling ProfilingConfig `json:"profiling"`
}

// VenueConfig points at the venue data gateway.
type VenueConfig struct {
	GatewayURL string `json:"gatewayUrl"`
	StreamURL  string `json:"streamUrl"`
	MarketID   string `json:"marketId"`
}

// FeedConfig points at the external reference price stream.
type FeedConfig struct {
	WSURL  string `json:"wsUrl"`
	Market string `json:"market"`
}

// WalletConfig holds one account's wallet service credentials.
type WalletConfig struct {
	ServiceURL string `json:"serviceUrl"`
	Token      string `json:"token"`
	PublicKey  string `json:"publicKey"`
}

// TradingConfig describes the submission cadence and sizing bound.
type TradingConfig struct {
	TradeSize             int64 `json:"tradeSize"`
	SubmissionRateSeconds int64 `json:"submissionRateSeconds"`
	JitterMaxSeconds      int64 `json:"jitterMaxSeconds"`
}

// ProfilingConfig enables continuous profiling when the address is set.
type ProfilingConfig struct {
	PyroscopeURL string `json:"pyroscopeUrl"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Venue          VenueConfig
	Feed           FeedConfig
	Wallets        [2]WalletConfig
	TradeSize      int64
	SubmissionRate time.Duration
	JitterMax      time.Duration
	PyroscopeURL   string
}

// Load reads a JSON config file and validates it.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, err
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, err
	}
	return resolve(cfg)
}

func resolve(cfg FileConfig) (Loaded, error) {
	if cfg.Venue.GatewayURL == "" {
		return Loaded{}, fmt.Errorf("venue gatewayUrl is empty")
	}
	if cfg.Venue.StreamURL == "" {
		return Loaded{}, fmt.Errorf("venue streamUrl is empty")
	}
	if cfg.Venue.MarketID == "" {
		return Loaded{}, fmt.Errorf("venue marketId is empty")
	}
	if cfg.Feed.WSURL == "" {
		return Loaded{}, fmt.Errorf("feed wsUrl is empty")
	}
	if cfg.Feed.Market == "" {
		return Loaded{}, fmt.Errorf("feed market is empty")
	}
	if len(cfg.Wallets) != 2 {
		return Loaded{}, fmt.Errorf("exactly two wallets required, got %d", len(cfg.Wallets))
	}
	for i, w := range cfg.Wallets {
		if w.ServiceURL == "" {
			return Loaded{}, fmt.Errorf("wallet %d serviceUrl is empty", i)
		}
		if w.PublicKey == "" {
			return Loaded{}, fmt.Errorf("wallet %d publicKey is empty", i)
		}
	}
	if cfg.Trading.TradeSize <= 0 {
		return Loaded{}, fmt.Errorf("tradeSize must be > 0")
	}
	if cfg.Trading.SubmissionRateSeconds <= 0 {
		return Loaded{}, fmt.Errorf("submissionRateSeconds must be > 0")
	}
	jitter := cfg.Trading.JitterMaxSeconds
	if jitter < 0 {
		return Loaded{}, fmt.Errorf("jitterMaxSeconds must be >= 0")
	}
	if jitter == 0 {
		jitter = 10
	}
	return Loaded{
		Venue:          cfg.Venue,
		Feed:           cfg.Feed,
		Wallets:        [2]WalletConfig{cfg.Wallets[0], cfg.Wallets[1]},
		TradeSize:      cfg.Trading.TradeSize,
		SubmissionRate: time.Duration(cfg.Trading.SubmissionRateSeconds) * time.Second,
		JitterMax:      time.Duration(jitter) * time.Second,
		PyroscopeURL:   cfg.Profiling.PyroscopeURL,
	}, nil
}
