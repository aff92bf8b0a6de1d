package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poll_me_bot/internal/transport"
)

func TestHelp_SendsMenuWithReactions(t *testing.T) {
	deps, _, messenger := newTestDeps()
	command := NewHelpCommand(deps)

	ctx := Context{ServerID: "server", ChannelID: "channel", AuthorID: "alice", Content: "!help_me_poll"}

	require.NoError(t, command.Handle(ctx))

	message := messenger.LastSent()
	require.NotNil(t, message)
	assert.Contains(t, message.Content, menuMarker)
	assert.Equal(t, []string{"1⃣", "2⃣"}, messenger.Reactions[message.ID])
}

func TestInteractive_MenuReactionStartsCreation(t *testing.T) {
	deps, _, messenger := newTestDeps()
	interactive := NewInteractive(deps)

	menu := &transport.Message{ID: "menu", ChannelID: "channel", ServerID: "server", Content: menuText}

	require.NoError(t, interactive.HandleReaction(menu, "1⃣", "alice"))

	assert.Contains(t, messenger.LastSent().Content, createPollMarker)
}

func TestInteractive_MenuReactionShowsHelp(t *testing.T) {
	deps, _, messenger := newTestDeps()
	interactive := NewInteractive(deps)

	menu := &transport.Message{ID: "menu", ChannelID: "channel", ServerID: "server", Content: menuText}

	require.NoError(t, interactive.HandleReaction(menu, "2⃣", "alice"))

	assert.Contains(t, messenger.LastSent().Content, "command guide")
}

func TestInteractive_FullFlow(t *testing.T) {
	deps, store, messenger := newTestDeps()
	interactive := NewInteractive(deps)

	prompt := &transport.Message{
		ID:        "prompt",
		ChannelID: "channel",
		AuthorID:  "bot",
		Content:   "Reply to this message with the question for your poll. (" + createPollMarker + ")",
	}

	reply := Context{
		ServerID:  "server",
		ChannelID: "channel",
		AuthorID:  "alice",
		Content:   "Where should we eat?",
	}

	handled, err := interactive.HandleReply(reply, prompt)
	require.NoError(t, err)
	assert.True(t, handled)

	require.Len(t, store.Polls, 1)
	p := store.Polls[0]
	assert.Equal(t, "Where should we eat?", p.Question)
	assert.Equal(t, "alice", p.AuthorID)
	assert.Contains(t, p.Key, "where_")
	assert.Empty(t, p.MessageID)

	optionsPrompt := messenger.LastSent()
	assert.Contains(t, optionsPrompt.Content, addOptionsMarker)
	assert.Contains(t, optionsPrompt.Content, p.Key)
	assert.Contains(t, messenger.Reactions[optionsPrompt.ID], calendarEmoji)

	optionsReply := Context{
		ServerID:  "server",
		ChannelID: "channel",
		AuthorID:  "alice",
		Content:   "Pizza, Sushi, Tacos",
		Channel:   store.Channels[0],
	}

	handled, err = interactive.HandleReply(optionsReply, optionsPrompt)
	require.NoError(t, err)
	assert.True(t, handled)

	require.Len(t, store.Options, 3)
	assert.Equal(t, "Pizza", store.Options[0].Text)
	assert.NotEmpty(t, store.Polls[0].MessageID)
	assert.Len(t, messenger.Reactions[store.Polls[0].MessageID], 3)
}

func TestInteractive_CalendarReactionUsesWeekdays(t *testing.T) {
	deps, store, messenger := newTestDeps()
	interactive := NewInteractive(deps)

	prompt := Context{ServerID: "server", ChannelID: "channel", AuthorID: "alice", Content: "Game days"}
	handled, err := interactive.HandleReply(prompt, &transport.Message{
		ID:        "prompt",
		ChannelID: "channel",
		Content:   "(" + createPollMarker + ")",
	})
	require.NoError(t, err)
	require.True(t, handled)

	optionsPrompt := messenger.LastSent()
	optionsPrompt.ServerID = "server"

	require.NoError(t, interactive.HandleReaction(optionsPrompt, calendarEmoji, "alice"))

	require.NotEmpty(t, store.Options)
	assert.NotEmpty(t, store.Polls[0].MessageID)
}

func TestInteractive_UnrelatedReplyIgnored(t *testing.T) {
	deps, store, _ := newTestDeps()
	interactive := NewInteractive(deps)

	reply := Context{ServerID: "server", ChannelID: "channel", AuthorID: "alice", Content: "just chatting"}

	handled, err := interactive.HandleReply(reply, &transport.Message{ID: "x", Content: "hello there"})
	require.NoError(t, err)
	assert.False(t, handled)
	assert.Empty(t, store.Polls)
}
