package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	AdminFullName string `envconfig:"ADMIN_FULL_NAME"`

	PayPal       PayPalConfig       `envconfig:"PAYPAL"`
	OpenAI       OpenAIConfig       `envconfig:"OPENAI"`
	ContextForge ContextForgeConfig `envconfig:"CONTEXTFORGE"`
	Email        EmailConfig        `envconfig:"BREVO"`
}

type PayPalConfig struct {
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	Environment  string `envconfig:"ENVIRONMENT" default:"sandbox"`
	BaseURL      string `envconfig:"API_BASE_URL"`
}

func (c PayPalConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// APIBase honors an explicit override, otherwise maps the environment name to
// the matching PayPal REST host.
func (c PayPalConfig) APIBase() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Environment == "live" {
		return "https://api-m.paypal.com"
	}
	return "https://api-m.sandbox.paypal.com"
}

type OpenAIConfig struct {
	APIKey string `envconfig:"API_KEY"`
	Model  string `envconfig:"MODEL" default:"gpt-4o-mini"`
}

func (c OpenAIConfig) Configured() bool { return c.APIKey != "" }

type ContextForgeConfig struct {
	URL        string `envconfig:"URL"`
	Token      string `envconfig:"TOKEN"`
	TeacherTag string `envconfig:"TEACHER_TAG" default:"teacher"`
}

type EmailConfig struct {
	APIKey      string `envconfig:"API_KEY"`
	SenderEmail string `envconfig:"SENDER_EMAIL"`
	SenderName  string `envconfig:"SENDER_NAME"`
}

// Load reads .env when present and builds the full configuration once; every
// component receives its slice of this struct instead of reading the
// environment ad hoc.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
