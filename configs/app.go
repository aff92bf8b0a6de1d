package configs

import "time"

type App struct {
	Environment         string        `env:"ENVIRONMENT" envDefault:"dev"`
	PollLimitPerServer  int           `env:"POLL_LIMIT_PER_SERVER" envDefault:"15"`
	ClosedPollRetention time.Duration `env:"CLOSED_POLL_RETENTION" envDefault:"240h"`
	SweepInterval       time.Duration `env:"SWEEP_INTERVAL" envDefault:"12h"`
	TempMessageTimeout  time.Duration `env:"TEMP_MESSAGE_TIMEOUT" envDefault:"30s"`
	InteractiveTimeout  time.Duration `env:"INTERACTIVE_TIMEOUT" envDefault:"5m"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
