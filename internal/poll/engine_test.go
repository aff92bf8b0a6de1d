package poll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/poll"
	"poll_me_bot/internal/testutil"
)

type engineFixture struct {
	engine  *poll.Engine
	store   *testutil.Store
	poll    *models.Poll
	options []*models.Option
}

func newEngineFixture(t *testing.T, optionCount int) *engineFixture {
	t.Helper()

	store := testutil.NewStore()
	optionRepository := testutil.NewOptionRepository(store)
	voteRepository := testutil.NewVoteRepository(store)

	polls := testutil.NewPollRepository(store)
	p, err := polls.Create(&models.Poll{Key: "poll_key", ServerID: "server", NewOptions: true})
	require.NoError(t, err)

	options := make([]*models.Option, 0, optionCount)
	for i := 1; i <= optionCount; i++ {
		option, err := optionRepository.Create(&models.Option{PollID: p.ID, Position: i, Text: "Option"})
		require.NoError(t, err)
		options = append(options, option)
	}

	return &engineFixture{
		engine:  poll.NewEngine(optionRepository, voteRepository, zap.NewNop().Sugar()),
		store:   store,
		poll:    p,
		options: options,
	}
}

func TestAddVote_SingleChoiceKeepsOneVote(t *testing.T) {
	f := newEngineFixture(t, 3)
	voter := models.Member("alice")

	changed, err := f.engine.AddVote(1, voter, f.options, false)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = f.engine.AddVote(2, voter, f.options, false)
	require.NoError(t, err)
	assert.True(t, changed)

	require.Len(t, f.store.Votes, 1)
	assert.Equal(t, f.options[1].ID, f.store.Votes[0].OptionID)
}

func TestAddVote_MultipleChoiceAccumulates(t *testing.T) {
	f := newEngineFixture(t, 3)
	voter := models.Member("alice")

	for _, position := range []int{1, 2} {
		changed, err := f.engine.AddVote(position, voter, f.options, true)
		require.NoError(t, err)
		assert.True(t, changed)
	}

	assert.Len(t, f.store.Votes, 2)
}

func TestAddVote_RepeatIsNoOp(t *testing.T) {
	f := newEngineFixture(t, 2)
	voter := models.Member("alice")

	_, err := f.engine.AddVote(1, voter, f.options, true)
	require.NoError(t, err)

	changed, err := f.engine.AddVote(1, voter, f.options, true)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, f.store.Votes, 1)
}

func TestAddVote_LockedOptionRejected(t *testing.T) {
	f := newEngineFixture(t, 2)
	f.options[0].Locked = true

	changed, err := f.engine.AddVote(1, models.Member("alice"), f.options, false)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, f.store.Votes)
}

func TestAddVote_OutOfRange(t *testing.T) {
	f := newEngineFixture(t, 2)

	for _, position := range []int{0, 3, -1} {
		changed, err := f.engine.AddVote(position, models.Member("alice"), f.options, false)
		require.NoError(t, err)
		assert.False(t, changed)
	}

	assert.Empty(t, f.store.Votes)
}

func TestAddVote_ExternalAndMemberAreDistinct(t *testing.T) {
	f := newEngineFixture(t, 2)

	_, err := f.engine.AddVote(1, models.Member("alice"), f.options, false)
	require.NoError(t, err)

	changed, err := f.engine.AddVote(1, models.External("Grandma"), f.options, false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, f.store.Votes, 2)
}

func TestRemoveVote(t *testing.T) {
	f := newEngineFixture(t, 2)
	voter := models.Member("alice")

	_, err := f.engine.AddVote(1, voter, f.options, false)
	require.NoError(t, err)

	changed, err := f.engine.RemoveVote(1, voter, f.options)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, f.store.Votes)

	changed, err = f.engine.RemoveVote(1, voter, f.options)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestAddWriteIn(t *testing.T) {
	f := newEngineFixture(t, 2)
	voter := models.Member("alice")

	option, added, err := f.engine.AddWriteIn(f.poll, f.options, "Another option", voter)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 3, option.Position)
	assert.Len(t, f.store.Votes, 1)
}

func TestAddWriteIn_SingleChoiceReplacesVote(t *testing.T) {
	f := newEngineFixture(t, 2)
	voter := models.Member("alice")

	_, err := f.engine.AddVote(1, voter, f.options, false)
	require.NoError(t, err)

	option, added, err := f.engine.AddWriteIn(f.poll, f.options, "Another option", voter)
	require.NoError(t, err)
	assert.True(t, added)

	require.Len(t, f.store.Votes, 1)
	assert.Equal(t, option.ID, f.store.Votes[0].OptionID)
}

func TestAddWriteIn_RequiresNewOptions(t *testing.T) {
	f := newEngineFixture(t, 2)
	f.poll.NewOptions = false

	option, added, err := f.engine.AddWriteIn(f.poll, f.options, "Another option", models.Member("alice"))
	require.NoError(t, err)
	assert.False(t, added)
	assert.Nil(t, option)
}
