package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "NARRATIVE_SCANNER_CONFIG"
	logLevelEnv       = "NARRATIVE_SCANNER_LOG_LEVEL"
	outputDirEnv      = "NARRATIVE_SCANNER_OUTPUT_DIR"
	ecosystemEnv      = "NARRATIVE_SCANNER_ECOSYSTEM"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"

	defaultTimeoutSeconds = 15
	defaultUserAgent      = "NarrativeScanner/1.0"
)

// Config holds high-level settings required across the application.
type Config struct {
	Ecosystem     EcosystemConfig    `yaml:"ecosystem"`
	HTTP          HTTPConfig         `yaml:"http"`
	Sources       SourcesConfig      `yaml:"sources"`
	Output        OutputConfig       `yaml:"output"`
	Logging       LoggingConfig      `yaml:"logging"`
	Notifications NotificationConfig `yaml:"notifications"`
	Schedule      ScheduleConfig     `yaml:"schedule"`
}

// EcosystemConfig names the chain every adapter is scoped to.
type EcosystemConfig struct {
	Name   string `yaml:"name"`   // search term and subreddit, e.g. "solana"
	Chain  string `yaml:"chain"`  // DeFiLlama chain label, e.g. "Solana"
	Symbol string `yaml:"symbol"` // news category, e.g. "SOL"
}

// HTTPConfig controls the outbound client shared by adapters.
type HTTPConfig struct {
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	UserAgent      string `yaml:"userAgent"`
}

// Timeout converts the configured seconds to a duration.
func (h HTTPConfig) Timeout() time.Duration {
	if h.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// SourcesConfig lists the five signal adapters.
type SourcesConfig struct {
	GitHub    SourceConfig `yaml:"github"`
	Reddit    SourceConfig `yaml:"reddit"`
	News      SourceConfig `yaml:"news"`
	DeFiLlama SourceConfig `yaml:"defillama"`
	CoinGecko SourceConfig `yaml:"coingecko"`
}

// SourceConfig describes a single upstream endpoint.
type SourceConfig struct {
	Enabled  *bool  `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Limit    int    `yaml:"limit"`
}

// IsEnabled defaults to true when the flag is absent.
func (s SourceConfig) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// OutputConfig decides where saved reports land.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig sets the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
}

// Configured reports whether both token and chat are present.
func (t TelegramConfig) Configured() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// ScheduleConfig enables repeated runs when Interval is positive.
type ScheduleConfig struct {
	Interval string `yaml:"interval"`
}

// Every parses the interval; zero means run once.
func (s ScheduleConfig) Every() time.Duration {
	if strings.TrimSpace(s.Interval) == "" {
		return 0
	}
	d, err := time.ParseDuration(s.Interval)
	if err != nil || d < 0 {
		log.Printf("config: invalid schedule interval %q, running once", s.Interval)
		return 0
	}
	return d
}

// Load reads .env and YAML configuration (if present) and applies environment overrides.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: cannot load .env: %v", err)
	}

	cfg := Default()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else if fileCfg, err := Parse(raw); err != nil {
			log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		} else {
			cfg = mergeConfig(cfg, fileCfg)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Parse decodes a YAML document without applying defaults.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv(ecosystemEnv); v != "" {
		c.Ecosystem.Name = strings.ToLower(v)
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Ecosystem.Name != "" {
		base.Ecosystem.Name = override.Ecosystem.Name
	}
	if override.Ecosystem.Chain != "" {
		base.Ecosystem.Chain = override.Ecosystem.Chain
	}
	if override.Ecosystem.Symbol != "" {
		base.Ecosystem.Symbol = override.Ecosystem.Symbol
	}

	if override.HTTP.TimeoutSeconds > 0 {
		base.HTTP.TimeoutSeconds = override.HTTP.TimeoutSeconds
	}
	if override.HTTP.UserAgent != "" {
		base.HTTP.UserAgent = override.HTTP.UserAgent
	}

	base.Sources.GitHub = mergeSource(base.Sources.GitHub, override.Sources.GitHub)
	base.Sources.Reddit = mergeSource(base.Sources.Reddit, override.Sources.Reddit)
	base.Sources.News = mergeSource(base.Sources.News, override.Sources.News)
	base.Sources.DeFiLlama = mergeSource(base.Sources.DeFiLlama, override.Sources.DeFiLlama)
	base.Sources.CoinGecko = mergeSource(base.Sources.CoinGecko, override.Sources.CoinGecko)

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if override.Schedule.Interval != "" {
		base.Schedule.Interval = override.Schedule.Interval
	}

	return base
}

func mergeSource(base, override SourceConfig) SourceConfig {
	if override.Enabled != nil {
		base.Enabled = override.Enabled
	}
	if override.Endpoint != "" {
		base.Endpoint = override.Endpoint
	}
	if override.Limit > 0 {
		base.Limit = override.Limit
	}
	return base
}

// Default returns the built-in configuration targeting the Solana ecosystem.
func Default() Config {
	return Config{
		Ecosystem: EcosystemConfig{Name: "solana", Chain: "Solana", Symbol: "SOL"},
		HTTP:      HTTPConfig{TimeoutSeconds: defaultTimeoutSeconds, UserAgent: defaultUserAgent},
		Sources: SourcesConfig{
			GitHub:    SourceConfig{Endpoint: "https://api.github.com/search/repositories", Limit: 10},
			Reddit:    SourceConfig{Endpoint: "https://www.reddit.com/r/%s/hot.json", Limit: 10},
			News:      SourceConfig{Endpoint: "https://min-api.cryptocompare.com/data/v2/news/", Limit: 8},
			DeFiLlama: SourceConfig{Endpoint: "https://api.llama.fi/protocols", Limit: 10},
			CoinGecko: SourceConfig{Endpoint: "https://api.coingecko.com/api/v3/search/trending", Limit: 7},
		},
		Output:  OutputConfig{Dir: "reports"},
		Logging: LoggingConfig{Level: "info"},
	}
}
