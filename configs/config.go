package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type PollBotConfig struct {
	App    App
	Bot    Bot
	DB     DB
	Logger Logger
}

func LoadPollBotConfig() (PollBotConfig, error) {
	// A local .env is optional, the environment wins either way.
	_ = godotenv.Load()

	var config PollBotConfig

	if err := env.Parse(&config); err != nil {
		return PollBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
