package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"

	"github.com/iamasit07/connect-four/internal/validator"
)

// how the player picks a move
const (
	InputModeCell   = "cell"
	InputModeColumn = "column"
)

type Config struct {
	PlayerOneName string `validate:"max=32"`
	PlayerTwoName string `validate:"max=32"`
	InputMode     string `validate:"required,oneof=cell column"`
	ShowReasons   bool
	Debug         bool
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		PlayerOneName: strings.TrimSpace(GetEnv("PLAYER_ONE_NAME", "")),
		PlayerTwoName: strings.TrimSpace(GetEnv("PLAYER_TWO_NAME", "")),
		InputMode:     strings.ToLower(strings.TrimSpace(GetEnv("INPUT_MODE", InputModeCell))),
		ShowReasons:   GetEnvAsBool("SHOW_REASONS", false),
		Debug:         GetEnvAsBool("DEBUG", false),
	}

	return AppConfig
}

// Validate reports every invalid field in one error.
func (c *Config) Validate() error {
	err := validator.Struct(c)
	if err == nil {
		return nil
	}

	var verrs playgroundvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value())))
	}
	return fmt.Errorf("invalid config: %s: %w", strings.Join(msgs, "; "), err)
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
