// Package config loads YAML configuration with environment overrides.
package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "HISTORY_SCANNER_CONFIG"
	redisAddrEnv      = "REDIS_ADDR"
	sqlitePathEnv     = "SQLITE_PATH"
	providerAPIKeyEnv = "PROVIDER_API_KEY"
	providerModelEnv  = "PROVIDER_MODEL"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Sources       SourcesConfig      `yaml:"sources"`
	Provider      ProviderConfig     `yaml:"provider"`
	Cache         CacheConfig        `yaml:"cache"`
	Storage       StorageConfig      `yaml:"storage"`
	Notifications NotificationConfig `yaml:"notifications"`
	Digest        DigestConfig       `yaml:"digest"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SourcesConfig selects the enabled event providers and their endpoints.
type SourcesConfig struct {
	Enabled       []string `yaml:"enabled"`
	DayHistoryURL string   `yaml:"dayHistoryUrl"`
	WikipediaURL  string   `yaml:"wikipediaUrl"`
	WikiSiteURL   string   `yaml:"wikiSiteUrl"`
	OnThisDayURL  string   `yaml:"onThisDayUrl"`
}

// ProviderConfig defines how to contact the generative-text API.
type ProviderConfig struct {
	Endpoint     string `yaml:"endpoint"`
	Model        string `yaml:"model"`
	APIKey       string `yaml:"apiKey"`
	SystemPrompt string `yaml:"systemPrompt"`
}

// CacheConfig chooses the result cache backend.
type CacheConfig struct {
	Backend   string        `yaml:"backend"` // "memory" or "redis"
	RedisAddr string        `yaml:"redisAddr"`
	TTL       time.Duration `yaml:"ttl"`
}

// StorageConfig describes the favorites database location.
type StorageConfig struct {
	SQLitePath string `yaml:"sqlitePath"`
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

// DigestConfig defines when and how large the daily digest is.
type DigestConfig struct {
	Enabled bool `yaml:"enabled"`
	Hour    int  `yaml:"hour"`
	Minute  int  `yaml:"minute"`
	Size    int  `yaml:"size"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(redisAddrEnv); v != "" {
		c.Cache.Backend = "redis"
		c.Cache.RedisAddr = v
	}

	if v := os.Getenv(sqlitePathEnv); v != "" {
		c.Storage.SQLitePath = v
	}

	if v := os.Getenv(providerAPIKeyEnv); v != "" {
		c.Provider.APIKey = v
	}

	if v := os.Getenv(providerModelEnv); v != "" {
		c.Provider.Model = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if len(override.Sources.Enabled) > 0 {
		base.Sources.Enabled = override.Sources.Enabled
	}
	if override.Sources.DayHistoryURL != "" {
		base.Sources.DayHistoryURL = override.Sources.DayHistoryURL
	}
	if override.Sources.WikipediaURL != "" {
		base.Sources.WikipediaURL = override.Sources.WikipediaURL
	}
	if override.Sources.WikiSiteURL != "" {
		base.Sources.WikiSiteURL = override.Sources.WikiSiteURL
	}
	if override.Sources.OnThisDayURL != "" {
		base.Sources.OnThisDayURL = override.Sources.OnThisDayURL
	}

	if override.Provider.Endpoint != "" {
		base.Provider.Endpoint = override.Provider.Endpoint
	}
	if override.Provider.Model != "" {
		base.Provider.Model = override.Provider.Model
	}
	if override.Provider.APIKey != "" {
		base.Provider.APIKey = override.Provider.APIKey
	}
	if override.Provider.SystemPrompt != "" {
		base.Provider.SystemPrompt = override.Provider.SystemPrompt
	}

	if override.Cache.Backend != "" {
		base.Cache.Backend = override.Cache.Backend
	}
	if override.Cache.RedisAddr != "" {
		base.Cache.RedisAddr = override.Cache.RedisAddr
	}
	if override.Cache.TTL > 0 {
		base.Cache.TTL = override.Cache.TTL
	}

	if override.Storage.SQLitePath != "" {
		base.Storage.SQLitePath = override.Storage.SQLitePath
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}

	if override.Digest.Enabled {
		base.Digest.Enabled = true
	}
	if override.Digest.Hour > 0 {
		base.Digest.Hour = override.Digest.Hour
	}
	if override.Digest.Minute > 0 {
		base.Digest.Minute = override.Digest.Minute
	}
	if override.Digest.Size > 0 {
		base.Digest.Size = override.Digest.Size
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Sources: SourcesConfig{
			Enabled:       []string{"History.com", "Wikipedia", "On This Day"},
			DayHistoryURL: "https://history.muffinlabs.com",
			WikipediaURL:  "https://en.wikipedia.org/w/api.php",
			WikiSiteURL:   "https://en.wikipedia.org",
			OnThisDayURL:  "https://byabbe.se/on-this-day",
		},
		Provider: ProviderConfig{
			Endpoint:     "https://api.openai.com/v1/chat/completions",
			Model:        "gpt-4o-mini",
			APIKey:       "",
			SystemPrompt: "You are a careful historian. Answer with verified historical facts only.",
		},
		Cache: CacheConfig{
			Backend: "memory",
			TTL:     24 * time.Hour,
		},
		Storage: StorageConfig{SQLitePath: "historyscanner.db"},
		Notifications: NotificationConfig{
			Telegram: TelegramConfig{BotToken: "", ChatID: ""},
		},
		Digest: DigestConfig{Enabled: false, Hour: 9, Minute: 0, Size: 5},
	}
}
