package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is built once in main from the environment and injected into every
// constructor. Nothing in the process reads os.Getenv after startup.
type Config struct {
	Port        string
	DatabaseURL string
	AdminKey    string
	SiteBaseURL string
	CORSOrigins []string

	// When empty, origin_url from the client is used verbatim for the
	// provider success/cancel URLs. When set, origins outside the list are
	// rejected before any provider call.
	CheckoutAllowedOrigins []string

	StripeAPIKey        string
	StripeWebhookSecret string

	PayPalBaseURL  string
	PayPalClientID string
	PayPalSecret   string

	OpenAIAPIKey string
	ChatModel    string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string
}

func Load() *Config {
	return &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		AdminKey:    os.Getenv("ADMIN_API_KEY"),
		SiteBaseURL: getenv("SITE_BASE_URL", "https://pjcwebdesigns.solutions"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),

		CheckoutAllowedOrigins: splitList(os.Getenv("CHECKOUT_ALLOWED_ORIGINS")),

		StripeAPIKey:        os.Getenv("STRIPE_API_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		PayPalBaseURL:  getenv("PAYPAL_BASE_URL", "https://api-m.sandbox.paypal.com"),
		PayPalClientID: os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalSecret:   os.Getenv("PAYPAL_CLIENT_SECRET"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		ChatModel:    getenv("CHAT_MODEL", "gpt-4o-mini"),

		MailHost: os.Getenv("MAIL_HOST"),
		MailPort: getenvInt("MAIL_PORT", 587),
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),
		MailFrom: getenv("MAIL_FROM", "no-reply@pjcwebdesigns.solutions"),

		RabbitUser: getenv("RABBITMQ_USER", "guest"),
		RabbitPass: getenv("RABBITMQ_PASS", "guest"),
		RabbitHost: getenv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getenv("RABBITMQ_PORT", "5672"),
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
