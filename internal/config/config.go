package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type UserCredential struct {
	Username string
	Password string
	Role     string // "founder" | "member"
}

type Config struct {
	ListenPort string
	LogLevel   string // "debug" | "info" | "warn" | "error"
	PrettyLog  bool   // true => zap dev (console), false => zap prod (JSON)

	// Snapshot store
	StoreBackend  string // "redis" | "postgres" | "memory"
	SnapshotKey   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Notion
	NotionAPIKey       string
	NotionTaskDatabase string
	NotionBiometricsDB string

	// Discord
	DiscordCheckInWebhook  string
	DiscordCheckOutWebhook string
	DiscordSummaryWebhook  string
	DiscordChannelWebhooks map[string]string // channel name -> webhook URL

	// RabbitMQ
	RabbitURL string

	// SMTP digest
	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string
	DigestTo string
	// 0 disables the scheduled digest; the manual endpoint still works.
	DigestIntervalHours int

	Users []UserCredential
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		ListenPort: getenv("HUB_LISTEN_PORT", ":8080"),
		LogLevel:   getenv("HUB_LOG_LEVEL", "info"),
		PrettyLog:  getenvBool("HUB_PRETTY_LOG", false),

		StoreBackend:  getenv("HUB_STORE_BACKEND", "redis"),
		SnapshotKey:   getenv("HUB_SNAPSHOT_KEY", "focusInLeadsData"),
		RedisAddr:     getenv("HUB_REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("HUB_REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("HUB_REDIS_DB", 0),
		DatabaseURL:   getenv("DATABASE_URL", ""),

		GeminiAPIKey: getenv("GEMINI_API_KEY", ""),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.5-flash"),

		NotionAPIKey:       getenv("NOTION_API_KEY", ""),
		NotionTaskDatabase: getenv("NOTION_DATABASE_ID", ""),
		NotionBiometricsDB: getenv("NOTION_BIOMETRICS_DATABASE_ID", ""),

		DiscordCheckInWebhook:  getenv("DISCORD_WEBHOOK_URL_CHECK_IN", ""),
		DiscordCheckOutWebhook: getenv("DISCORD_WEBHOOK_URL_CHECK_OUT", ""),
		DiscordSummaryWebhook:  getenv("DISCORD_WEBHOOK_URL_SUMMARY", ""),
		DiscordChannelWebhooks: parseChannelWebhooks(getenv("DISCORD_CHANNEL_WEBHOOKS", "")),

		RabbitURL: getenv("HUB_RABBITMQ_URL", ""),

		MailHost:            getenv("MAIL_HOST", ""),
		MailPort:            getenvInt("MAIL_PORT", 587),
		MailUser:            getenv("MAIL_USER", ""),
		MailPass:            getenv("MAIL_PASS", ""),
		MailFrom:            getenv("MAIL_FROM", "no-reply@focusin.in"),
		DigestTo:            getenv("HUB_DIGEST_TO", ""),
		DigestIntervalHours: getenvInt("HUB_DIGEST_INTERVAL_HOURS", 0),

		Users: parseUsers(getenv("HUB_USERS", "")),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// parseUsers reads "username:password:role" triples separated by commas.
// Malformed entries are skipped rather than aborting startup.
func parseUsers(raw string) []UserCredential {
	var users []UserCredential
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, ":", 3)
		if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
			continue
		}
		role := "member"
		if len(fields) == 3 && fields[2] != "" {
			role = fields[2]
		}
		users = append(users, UserCredential{
			Username: fields[0],
			Password: fields[1],
			Role:     role,
		})
	}
	return users
}

// parseChannelWebhooks reads "channel=url" pairs separated by semicolons.
// Webhook URLs contain slashes, so semicolon keeps the pairs unambiguous.
func parseChannelWebhooks(raw string) map[string]string {
	hooks := make(map[string]string)
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pair := strings.SplitN(part, "=", 2)
		if len(pair) != 2 || pair[0] == "" || pair[1] == "" {
			continue
		}
		hooks[pair[0]] = pair[1]
	}
	return hooks
}
