package configs

type Logger struct {
	AppName string `env:"LOGGER_APP_NAME" envDefault:"poll_me_bot"`
	URL     string `env:"LOGGER_URL"`
}
