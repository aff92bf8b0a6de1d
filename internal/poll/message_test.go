package poll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/poll"
)

func renderFixture() (*models.Poll, []*models.Option, map[int64][]*models.Vote) {
	p := &models.Poll{
		Key:      "dinner",
		AuthorID: "alice",
		Question: "Where to eat?",
	}

	options := []*models.Option{
		{ID: 1, Position: 1, Text: "Pizza"},
		{ID: 2, Position: 2, Text: "Sushi"},
	}

	votes := map[int64][]*models.Vote{
		1: {
			models.NewVote(1, models.Member("bob")),
			models.NewVote(1, models.External("Grandma")),
		},
	}

	return p, options, votes
}

func TestRender_Basic(t *testing.T) {
	p, options, votes := renderFixture()

	rendered := poll.Render(p, options, votes)

	expected := "**Where to eat?** (poll_key: dinner) (author: <@alice>)\n" +
		"1 - Pizza: 2 votes -> <@bob> Grandma\n" +
		"2 - Sushi"
	assert.Equal(t, expected, rendered)
}

func TestRender_Deterministic(t *testing.T) {
	p, options, votes := renderFixture()

	first := poll.Render(p, options, votes)
	second := poll.Render(p, options, votes)

	assert.Equal(t, first, second)
}

func TestRender_OnlyNumbersHidesVoters(t *testing.T) {
	p, options, votes := renderFixture()
	p.OnlyNumbers = true

	rendered := poll.Render(p, options, votes)

	assert.Contains(t, rendered, "1 - Pizza: 2 votes.")
	assert.NotContains(t, rendered, "<@bob>")
}

func TestRender_FeatureLines(t *testing.T) {
	p, options, votes := renderFixture()
	p.MultipleOptions = true
	p.NewOptions = true
	p.AllowExternal = true

	rendered := poll.Render(p, options, votes)

	assert.Contains(t, rendered, "(New options allowed!)")
	assert.Contains(t, rendered, "(Multiple options allowed!)")
	assert.Contains(t, rendered, "(External voters allowed!)")
}

func TestRender_ClosedSuppressesFeatureLines(t *testing.T) {
	p, options, votes := renderFixture()
	p.MultipleOptions = true
	p.Closed = true

	rendered := poll.Render(p, options, votes)

	assert.Contains(t, rendered, "(Closed)")
	assert.NotContains(t, rendered, "(Multiple options allowed!)")
}

func TestRender_LockedSuffix(t *testing.T) {
	p, options, votes := renderFixture()
	options[1].Locked = true

	rendered := poll.Render(p, options, votes)

	assert.Contains(t, rendered, "2 - Sushi (locked)")
}
