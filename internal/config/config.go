// Package config holds the bot's start-up configuration, read once from the
// environment and passed into each component's constructor.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAlertKeywords is the built-in sensitive keyword set, overridable via
// ALERT_KEYWORDS.
var DefaultAlertKeywords = []string{"password", "رمز", "otp", "cvv2", "کارت"}

// Config is the process-lifetime configuration of the relay bot.
type Config struct {
	BotToken    string
	DestChatIDs []int64

	// SourceChatIDs is the inbound allow-list. Empty with AllowAllSources
	// set means every chat is accepted.
	SourceChatIDs   []int64
	AllowAllSources bool

	AlertChatID    int64
	AlertKeywords  []string
	DailyLogChatID int64

	LogDir string
	// AggregateEvery schedules recurring daily aggregation; zero means the
	// job runs once at start-up only.
	AggregateEvery time.Duration
}

// Load reads configuration from environment variables. A missing bot token
// or destination list is a fatal configuration error.
func Load() (*Config, error) {
	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		AlertKeywords: DefaultAlertKeywords,
		LogDir:        getEnv("LOG_DIR", "logs"),
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is not set")
	}

	dests, err := parseIDList(os.Getenv("DEST_CHAT_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEST_CHAT_IDS: %w", err)
	}
	if len(dests) == 0 {
		return nil, fmt.Errorf("DEST_CHAT_IDS is not set")
	}
	cfg.DestChatIDs = dests

	sources := getEnv("SOURCE_CHAT_IDS", "*")
	if sources == "*" {
		cfg.AllowAllSources = true
	} else {
		cfg.SourceChatIDs, err = parseIDList(sources)
		if err != nil {
			return nil, fmt.Errorf("invalid SOURCE_CHAT_IDS: %w", err)
		}
	}

	if cfg.AlertChatID, err = parseOptionalID(os.Getenv("ALERT_CHAT_ID")); err != nil {
		return nil, fmt.Errorf("invalid ALERT_CHAT_ID: %w", err)
	}
	if cfg.DailyLogChatID, err = parseOptionalID(os.Getenv("DAILY_LOG_CHAT_ID")); err != nil {
		return nil, fmt.Errorf("invalid DAILY_LOG_CHAT_ID: %w", err)
	}

	if kw := os.Getenv("ALERT_KEYWORDS"); kw != "" {
		cfg.AlertKeywords = splitList(kw)
	}

	if interval := os.Getenv("AGGREGATE_INTERVAL"); interval != "" {
		cfg.AggregateEvery, err = time.ParseDuration(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid AGGREGATE_INTERVAL: %w", err)
		}
	}

	return cfg, nil
}

// SourceAllowed reports whether a chat may feed the pipeline.
func (c *Config) SourceAllowed(chatID int64) bool {
	if c.AllowAllSources {
		return true
	}
	for _, id := range c.SourceChatIDs {
		if id == chatID {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseIDList(value string) ([]int64, error) {
	var ids []int64
	for _, item := range splitList(value) {
		id, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a chat id", item)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptionalID(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseInt(value, 10, 64)
}
