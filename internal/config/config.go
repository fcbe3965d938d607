package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// Config contains runtime configuration values.
type Config struct {
	ChannelID      string        `env:"CHANNEL_ID" validate:"required,numeric"`
	BotToken       string        `env:"BOT_TOKEN" validate:"required"`
	BaseURL        string        `env:"LEETCODE_BASE_URL" validate:"required,url"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	StartSchedule  string        `env:"START_SCHEDULE" validate:"omitempty,cron"`
	LogLevel       string        `env:"LOG_LEVEL" validate:"oneof=debug info warn warning error"`
}

const (
	defaultBaseURL  = "https://leetcode.com"
	defaultTimeout  = 30 * time.Second
	defaultLogLevel = "info"
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ChannelID:      strings.TrimSpace(os.Getenv("CHANNEL_ID")),
		BotToken:       strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		BaseURL:        strings.TrimRight(getenvDefault("LEETCODE_BASE_URL", defaultBaseURL), "/"),
		RequestTimeout: parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		StartSchedule:  strings.TrimSpace(os.Getenv("START_SCHEDULE")),
		LogLevel:       strings.ToLower(getenvDefault("LOG_LEVEL", defaultLogLevel)),
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("env")
	})
	if err := v.RegisterValidation("cron", validateCron); err != nil {
		return fmt.Errorf("register cron validation: %w", err)
	}

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "numeric":
		return fe.Field() + " must be a numeric channel id"
	case "url":
		return fe.Field() + " must be an absolute URL"
	case "cron":
		return fe.Field() + " must be a cron expression"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func validateCron(fl validator.FieldLevel) bool {
	_, err := cron.ParseStandard(fl.Field().String())
	return err == nil
}

func getenvDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
