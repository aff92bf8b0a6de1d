package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poll_me_bot/configs"
	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/poll"
	"poll_me_bot/internal/testutil"
)

func newTestDeps() (Deps, *testutil.Store, *testutil.FakeMessenger) {
	store := testutil.NewStore()
	messenger := testutil.NewFakeMessenger()
	logger := zap.NewNop().Sugar()

	optionRepository := testutil.NewOptionRepository(store)
	voteRepository := testutil.NewVoteRepository(store)

	deps := Deps{
		Messenger: messenger,
		Channels:  testutil.NewChannelRepository(store),
		Polls:     testutil.NewPollRepository(store),
		Options:   optionRepository,
		Votes:     voteRepository,
		Engine:    poll.NewEngine(optionRepository, voteRepository, logger),
		App: configs.App{
			PollLimitPerServer:  15,
			ClosedPollRetention: 240 * time.Hour,
			TempMessageTimeout:  time.Minute,
			InteractiveTimeout:  time.Minute,
		},
		Logger: logger,
	}

	return deps, store, messenger
}

// seedPoll plants a channel, a poll with its message already sent, and the
// given options.
func seedPoll(t *testing.T, deps Deps, messenger *testutil.FakeMessenger, key string, optionTexts []string, mutate func(*models.Poll)) *models.Poll {
	t.Helper()

	channel, err := deps.Channels.Create(&models.Channel{DiscordID: "channel", ServerID: "server"})
	require.NoError(t, err)

	p := &models.Poll{
		Key:       key,
		ServerID:  "server",
		AuthorID:  "author",
		Question:  "Question?",
		ChannelID: channel.ID,
	}
	if mutate != nil {
		mutate(p)
	}

	p, err = deps.Polls.Create(p)
	require.NoError(t, err)

	options := make([]*models.Option, 0, len(optionTexts))
	for i, text := range optionTexts {
		options = append(options, &models.Option{PollID: p.ID, Position: i + 1, Text: text})
	}
	require.NoError(t, deps.Options.CreateMany(options))

	messageID, err := messenger.SendMessage("channel", "placeholder")
	require.NoError(t, err)
	p.MessageID = messageID

	_, err = deps.Polls.Update(p)
	require.NoError(t, err)

	return p
}

func testContext(deps Deps, authorID, content string, tokens []string) Context {
	channel, _ := deps.Channels.GetOneByDiscordID("channel")

	return Context{
		ServerID:  "server",
		ChannelID: "channel",
		AuthorID:  authorID,
		Content:   content,
		Tokens:    tokens,
		Channel:   channel,
	}
}
