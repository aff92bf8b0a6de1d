package poll

import (
	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/db/repositories"

	"go.uber.org/zap"
)

// Engine owns every vote state transition. Options are passed in ordered by
// position; positions are 1-based. Each mutating call reports whether it
// changed anything, so callers can skip re-rendering the poll message.
type Engine struct {
	options repositories.OptionRepository
	votes   repositories.VoteRepository
	logger  *zap.SugaredLogger
}

func NewEngine(options repositories.OptionRepository, votes repositories.VoteRepository, logger *zap.SugaredLogger) *Engine {
	return &Engine{
		options: options,
		votes:   votes,
		logger:  logger,
	}
}

// AddVote casts a vote on the option at the given position. Out-of-range
// positions and locked options are rejected. With multiple options allowed a
// repeated vote is a no-op; without, any previous vote by the same participant
// in this poll is removed first, so at most one vote remains.
func (e *Engine) AddVote(position int, participant models.Participant, options []*models.Option, multipleAllowed bool) (bool, error) {
	if position < 1 || position > len(options) {
		return false, nil
	}

	option := options[position-1]
	if option.Locked {
		return false, nil
	}

	existing, err := e.votes.GetOneByOptionAndParticipant(option.ID, participant)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	if !multipleAllowed {
		if err = e.removePreviousVote(options, participant); err != nil {
			return false, err
		}
	}

	if _, err = e.votes.Create(models.NewVote(option.ID, participant)); err != nil {
		return false, err
	}

	return true, nil
}

// RemoveVote retracts the participant's vote on the option at the given
// position. Removing a vote that does not exist is a no-op.
func (e *Engine) RemoveVote(position int, participant models.Participant, options []*models.Option) (bool, error) {
	if position < 1 || position > len(options) {
		return false, nil
	}

	option := options[position-1]
	if option.Locked {
		return false, nil
	}

	existing, err := e.votes.GetOneByOptionAndParticipant(option.ID, participant)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err = e.votes.Delete(existing); err != nil {
		return false, err
	}

	return true, nil
}

// AddWriteIn appends a new option proposed by a voter and casts their vote for
// it, honoring the same single-choice exclusivity as AddVote. The poll must
// allow new options.
func (e *Engine) AddWriteIn(p *models.Poll, options []*models.Option, text string, participant models.Participant) (*models.Option, bool, error) {
	if !p.NewOptions {
		return nil, false, nil
	}

	if !p.MultipleOptions {
		if err := e.removePreviousVote(options, participant); err != nil {
			return nil, false, err
		}
	}

	option := &models.Option{
		PollID:   p.ID,
		Position: len(options) + 1,
		Text:     text,
	}

	option, err := e.options.Create(option)
	if err != nil {
		return nil, false, err
	}

	if _, err = e.votes.Create(models.NewVote(option.ID, participant)); err != nil {
		return nil, false, err
	}

	return option, true, nil
}

func (e *Engine) removePreviousVote(options []*models.Option, participant models.Participant) error {
	ids := make([]int64, 0, len(options))
	for _, option := range options {
		ids = append(ids, option.ID)
	}

	previous, err := e.votes.GetFirstByOptionsAndParticipant(ids, participant)
	if err != nil {
		return err
	}
	if previous == nil {
		return nil
	}

	return e.votes.Delete(previous)
}
