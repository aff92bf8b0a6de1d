package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron"

	"poll_me_bot/configs"
	"poll_me_bot/internal/db"
	"poll_me_bot/internal/db/repositories"
	"poll_me_bot/internal/di"
	"poll_me_bot/internal/discord_bot"
	"poll_me_bot/internal/discord_bot/commands"
	"poll_me_bot/internal/poll"
	"poll_me_bot/internal/sweep"
	"poll_me_bot/internal/transport"
)

func main() {
	config, err := configs.LoadPollBotConfig()
	logger := di.NewLogger(config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	channelRepository := repositories.NewChannelRepository(database)
	pollRepository := repositories.NewPollRepository(database)
	optionRepository := repositories.NewOptionRepository(database)
	voteRepository := repositories.NewVoteRepository(database)

	logger.Info("starting discord session")
	session, err := discordgo.New("Bot " + config.Bot.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildMembers

	if err = session.Open(); err != nil {
		logger.Fatalw("failed to open discord session", "error", err)
	}
	logger.Info("discord session opened")

	messenger := transport.NewDiscordMessenger(session)

	bot := discord_bot.NewBot(commands.Deps{
		Messenger: messenger,
		Channels:  channelRepository,
		Polls:     pollRepository,
		Options:   optionRepository,
		Votes:     voteRepository,
		Engine:    poll.NewEngine(optionRepository, voteRepository, logger),
		App:       config.App,
		Logger:    logger,
	})
	bot.Bind(session)
	go bot.Run()

	sweeper := sweep.NewSweeper(
		channelRepository,
		pollRepository,
		optionRepository,
		voteRepository,
		messenger,
		config.App,
		logger,
		bot.Locker(),
	)

	// Catch up after downtime before taking new commands seriously.
	sweeper.Run()
	if err = sweeper.RefreshAllPolls(); err != nil {
		logger.Errorw("failed to refresh polls on startup", "error", err)
	}

	scheduler := gocron.NewScheduler(time.UTC)
	if err = sweeper.Schedule(scheduler); err != nil {
		logger.Fatalw("failed to schedule sweep", "error", err)
	}
	scheduler.StartAsync()

	logger.Info("bot is running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	// The gateway stops producing events before the queue shuts down.
	logger.Info("shutting down")
	scheduler.Stop()
	if err = session.Close(); err != nil {
		logger.Warnw("failed to close discord session", "error", err)
	}
	bot.Close()
}
