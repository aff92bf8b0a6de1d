package configs

type Bot struct {
	Token string `env:"DISCORD_BOT_TOKEN,notEmpty"`
}
