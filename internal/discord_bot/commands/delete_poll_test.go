package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletePoll(t *testing.T) {
	deps, store, messenger := newTestDeps()
	p := seedPoll(t, deps, messenger, "dinner", []string{"A", "B"}, nil)

	command := NewDeletePollCommand(deps)

	require.NoError(t, command.Handle(testContext(deps, "author", "!poll_delete dinner", []string{"dinner"})))

	assert.Empty(t, store.Polls)
	assert.Empty(t, store.Options)
	assert.Contains(t, messenger.Deleted, p.MessageID)
}

func TestDeletePoll_OnlyAuthor(t *testing.T) {
	deps, store, messenger := newTestDeps()
	seedPoll(t, deps, messenger, "dinner", []string{"A"}, nil)

	command := NewDeletePollCommand(deps)

	require.NoError(t, command.Handle(testContext(deps, "intruder", "!poll_delete dinner", []string{"dinner"})))

	assert.Len(t, store.Polls, 1)
	assert.Contains(t, messenger.LastSent().Content, "author")
}

func TestDeletePoll_MessageAlreadyGone(t *testing.T) {
	deps, store, messenger := newTestDeps()
	p := seedPoll(t, deps, messenger, "dinner", []string{"A"}, nil)
	messenger.MissingMessages[p.MessageID] = true

	command := NewDeletePollCommand(deps)

	require.NoError(t, command.Handle(testContext(deps, "author", "!poll_delete dinner", []string{"dinner"})))

	assert.Empty(t, store.Polls)
}
