package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poll_me_bot/internal/db/models"
)

func TestEditPoll_AddOptions(t *testing.T) {
	deps, store, messenger := newTestDeps()
	p := seedPoll(t, deps, messenger, "dinner", []string{"A"}, nil)

	command := NewEditPollCommand(deps)
	ctx := testContext(deps, "author", `!poll_edit dinner -add "B" "C"`, []string{"dinner", "-add", `"B"`, `"C"`})

	require.NoError(t, command.Handle(ctx))

	require.Len(t, store.Options, 3)
	assert.Equal(t, "B", store.Options[1].Text)
	assert.Equal(t, 2, store.Options[1].Position)
	assert.Equal(t, 3, store.Options[2].Position)

	assert.Contains(t, messenger.Reactions[p.MessageID], "2⃣")
	assert.Contains(t, messenger.Reactions[p.MessageID], "3⃣")
}

func TestEditPoll_RemoveRenumbersDense(t *testing.T) {
	deps, store, messenger := newTestDeps()
	p := seedPoll(t, deps, messenger, "dinner", []string{"A", "B", "C"}, nil)

	command := NewEditPollCommand(deps)
	ctx := testContext(deps, "author", "!poll_edit dinner -rm 1", []string{"dinner", "-rm", "1"})

	require.NoError(t, command.Handle(ctx))

	require.Len(t, store.Options, 2)
	assert.Equal(t, "B", store.Options[0].Text)
	assert.Equal(t, 1, store.Options[0].Position)
	assert.Equal(t, "C", store.Options[1].Text)
	assert.Equal(t, 2, store.Options[1].Position)

	edited := messenger.Edits[p.MessageID]
	assert.Contains(t, edited, "1 - B")
	assert.Contains(t, edited, "2 - C")
}

func TestEditPoll_RemoveDropsVotes(t *testing.T) {
	deps, store, messenger := newTestDeps()
	p := seedPoll(t, deps, messenger, "dinner", []string{"A", "B"}, nil)

	options, err := deps.Options.GetManyByPoll(p.ID)
	require.NoError(t, err)
	_, err = deps.Votes.Create(models.NewVote(options[0].ID, models.Member("alice")))
	require.NoError(t, err)

	command := NewEditPollCommand(deps)
	ctx := testContext(deps, "author", "!poll_edit dinner -rm 1", []string{"dinner", "-rm", "1"})

	require.NoError(t, command.Handle(ctx))

	assert.Empty(t, store.Votes)
}

func TestEditPoll_LockAndUnlock(t *testing.T) {
	deps, store, messenger := newTestDeps()
	seedPoll(t, deps, messenger, "dinner", []string{"A", "B"}, nil)

	command := NewEditPollCommand(deps)

	require.NoError(t, command.Handle(testContext(deps, "author", "!poll_edit dinner -lock 2", []string{"dinner", "-lock", "2"})))
	assert.True(t, store.Options[1].Locked)

	require.NoError(t, command.Handle(testContext(deps, "author", "!poll_edit dinner -unlock 2", []string{"dinner", "-unlock", "2"})))
	assert.False(t, store.Options[1].Locked)
}

func TestEditPoll_Question(t *testing.T) {
	deps, store, messenger := newTestDeps()
	p := seedPoll(t, deps, messenger, "dinner", []string{"A"}, nil)

	command := NewEditPollCommand(deps)
	ctx := testContext(deps, "author", `!poll_edit dinner "New question?"`, []string{"dinner", `"New question?"`})

	require.NoError(t, command.Handle(ctx))

	assert.Equal(t, "New question?", store.Polls[0].Question)
	assert.Contains(t, messenger.Edits[p.MessageID], "**New question?**")
}

func TestEditPoll_SettingsReplaceToggles(t *testing.T) {
	deps, store, messenger := newTestDeps()
	seedPoll(t, deps, messenger, "dinner", []string{"A"}, func(p *models.Poll) {
		p.OnlyNumbers = true
	})

	command := NewEditPollCommand(deps)
	ctx := testContext(deps, "author", "!poll_edit dinner -m", []string{"dinner", "-m"})

	require.NoError(t, command.Handle(ctx))

	assert.True(t, store.Polls[0].MultipleOptions)
	// Toggles not present in the command are switched off.
	assert.False(t, store.Polls[0].OnlyNumbers)
}

func TestEditPoll_OnlyAuthor(t *testing.T) {
	deps, store, messenger := newTestDeps()
	seedPoll(t, deps, messenger, "dinner", []string{"A"}, nil)

	command := NewEditPollCommand(deps)
	ctx := testContext(deps, "intruder", `!poll_edit dinner "Hijack?"`, []string{"dinner", `"Hijack?"`})

	require.NoError(t, command.Handle(ctx))

	assert.Equal(t, "Question?", store.Polls[0].Question)
	assert.Contains(t, messenger.LastSent().Content, "author")
}

func TestEditPoll_ClosedPollRejected(t *testing.T) {
	deps, store, messenger := newTestDeps()
	seedPoll(t, deps, messenger, "dinner", []string{"A"}, func(p *models.Poll) {
		p.Closed = true
	})

	command := NewEditPollCommand(deps)
	ctx := testContext(deps, "author", `!poll_edit dinner "New?"`, []string{"dinner", `"New?"`})

	require.NoError(t, command.Handle(ctx))

	assert.Equal(t, "Question?", store.Polls[0].Question)
	assert.Contains(t, messenger.LastSent().Content, "closed")
}
