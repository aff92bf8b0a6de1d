package discord_bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poll_me_bot/configs"
	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/discord_bot/commands"
	"poll_me_bot/internal/poll"
	"poll_me_bot/internal/testutil"
	"poll_me_bot/internal/transport"
)

func newTestBot() (*Bot, *testutil.Store, *testutil.FakeMessenger) {
	store := testutil.NewStore()
	messenger := testutil.NewFakeMessenger()
	logger := zap.NewNop().Sugar()

	optionRepository := testutil.NewOptionRepository(store)
	voteRepository := testutil.NewVoteRepository(store)

	bot := NewBot(commands.Deps{
		Messenger: messenger,
		Channels:  testutil.NewChannelRepository(store),
		Polls:     testutil.NewPollRepository(store),
		Options:   optionRepository,
		Votes:     voteRepository,
		Engine:    poll.NewEngine(optionRepository, voteRepository, logger),
		App: configs.App{
			PollLimitPerServer: 15,
			TempMessageTimeout: time.Minute,
			InteractiveTimeout: time.Minute,
		},
		Logger: logger,
	})
	bot.botID = "bot"

	return bot, store, messenger
}

func userMessage(content string) *transport.Message {
	return &transport.Message{
		ID:        "user-msg",
		ChannelID: "channel",
		ServerID:  "server",
		AuthorID:  "alice",
		Content:   content,
	}
}

func TestHandleMessage_DispatchesCommand(t *testing.T) {
	bot, store, _ := newTestBot()

	require.NoError(t, bot.handleMessage(userMessage(`!poll dinner "Where to eat?" "Pizza" "Sushi"`)))

	require.Len(t, store.Polls, 1)
	assert.Equal(t, "dinner", store.Polls[0].Key)
}

func TestHandleMessage_UnknownVerbIgnored(t *testing.T) {
	bot, store, messenger := newTestBot()

	require.NoError(t, bot.handleMessage(userMessage("!something_else hello")))

	assert.Empty(t, store.Polls)
	assert.Nil(t, messenger.LastSent())
}

func TestHandleMessage_ChatterIgnored(t *testing.T) {
	bot, store, messenger := newTestBot()

	require.NoError(t, bot.handleMessage(userMessage("just talking")))

	assert.Empty(t, store.Polls)
	assert.Nil(t, messenger.LastSent())
}

func TestHandleMessage_UnmatchedQuoteRejected(t *testing.T) {
	bot, store, messenger := newTestBot()

	require.NoError(t, bot.handleMessage(userMessage(`!poll dinner "Where to eat?`)))

	assert.Empty(t, store.Polls)
	require.NotNil(t, messenger.LastSent())
	assert.Contains(t, messenger.LastSent().Content, "Invalid parameters")
}

func TestHandleMessage_DeleteCommandsPolicy(t *testing.T) {
	bot, _, messenger := newTestBot()

	_, err := bot.deps.Channels.Create(&models.Channel{
		DiscordID:      "channel",
		ServerID:       "server",
		DeleteCommands: true,
	})
	require.NoError(t, err)

	require.NoError(t, bot.handleMessage(userMessage(`!poll dinner "Where to eat?" "A" "B"`)))
	assert.Contains(t, messenger.Deleted, "user-msg")

	messenger.Deleted = nil
	messenger.MissingMessages = map[string]bool{}
	require.NoError(t, bot.handleMessage(userMessage("just talking")))
	assert.NotContains(t, messenger.Deleted, "user-msg")
}

func TestHandleMessage_DeleteAllPolicy(t *testing.T) {
	bot, _, messenger := newTestBot()

	_, err := bot.deps.Channels.Create(&models.Channel{
		DiscordID: "channel",
		ServerID:  "server",
		DeleteAll: true,
	})
	require.NoError(t, err)

	require.NoError(t, bot.handleMessage(userMessage("just talking")))
	assert.Contains(t, messenger.Deleted, "user-msg")
}

func TestHandleMessage_ReplyRoutedToInteractive(t *testing.T) {
	bot, store, messenger := newTestBot()

	promptID, err := messenger.SendMessage("channel", "Reply to this message with the question for your poll. (key:create_poll)")
	require.NoError(t, err)
	messenger.Sent[promptID].AuthorID = "bot"

	reply := userMessage("Where should we eat?")
	reply.ReplyToID = promptID

	require.NoError(t, bot.handleMessage(reply))

	require.Len(t, store.Polls, 1)
	assert.Equal(t, "Where should we eat?", store.Polls[0].Question)
}

func TestHandleReaction_VoteOnPollMessage(t *testing.T) {
	bot, store, messenger := newTestBot()

	channel, err := bot.deps.Channels.Create(&models.Channel{DiscordID: "channel", ServerID: "server"})
	require.NoError(t, err)

	p, err := bot.deps.Polls.Create(&models.Poll{
		Key:       "dinner",
		ServerID:  "server",
		AuthorID:  "author",
		Question:  "Question?",
		ChannelID: channel.ID,
	})
	require.NoError(t, err)
	require.NoError(t, bot.deps.Options.CreateMany([]*models.Option{
		{PollID: p.ID, Position: 1, Text: "A"},
	}))

	messageID, err := messenger.SendMessage("channel", "placeholder")
	require.NoError(t, err)
	p.MessageID = messageID
	_, err = bot.deps.Polls.Update(p)
	require.NoError(t, err)

	ev := event{
		kind:      eventReactionAdd,
		serverID:  "server",
		channelID: "channel",
		messageID: messageID,
		userID:    "alice",
		emoji:     "1⃣",
	}

	require.NoError(t, bot.handleReaction(ev, true))
	require.Len(t, store.Votes, 1)

	require.NoError(t, bot.handleReaction(ev, false))
	assert.Empty(t, store.Votes)
}

func TestClose_StopsRunAndDropsLateEvents(t *testing.T) {
	bot, store, _ := newTestBot()

	finished := make(chan struct{})
	go func() {
		bot.Run()
		close(finished)
	}()

	bot.Close()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after Close")
	}

	// A gateway callback firing after shutdown must neither panic nor block.
	bot.enqueue(event{kind: eventMessage, message: userMessage(`!poll late "Too late?" "A" "B"`)})

	assert.Empty(t, store.Polls)
}

func TestHandleReaction_MenuReaction(t *testing.T) {
	bot, _, messenger := newTestBot()

	menuID, err := messenger.SendMessage("channel", "React with the number of what you want to do: (key:menu)")
	require.NoError(t, err)
	messenger.Sent[menuID].AuthorID = "bot"

	ev := event{
		kind:      eventReactionAdd,
		serverID:  "server",
		channelID: "channel",
		messageID: menuID,
		userID:    "alice",
		emoji:     "1⃣",
	}

	require.NoError(t, bot.handleReaction(ev, true))

	assert.Contains(t, messenger.LastSent().Content, "key:create_poll")
}
