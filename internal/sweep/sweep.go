package sweep

import (
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"poll_me_bot/configs"
	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/db/repositories"
	"poll_me_bot/internal/poll"
	"poll_me_bot/internal/transport"
)

// Sweeper reconciles the database with what actually still exists on
// Discord: channels and poll messages deleted out-of-band are dropped, and
// closed polls past their retention are cleaned up. Every run takes the
// dispatch lock, so a sweep never interleaves with command handling.
type Sweeper struct {
	channels  repositories.ChannelRepository
	polls     repositories.PollRepository
	options   repositories.OptionRepository
	votes     repositories.VoteRepository
	messenger transport.Messenger
	app       configs.App
	logger    *zap.SugaredLogger
	locker    sync.Locker
}

func NewSweeper(
	channels repositories.ChannelRepository,
	polls repositories.PollRepository,
	options repositories.OptionRepository,
	votes repositories.VoteRepository,
	messenger transport.Messenger,
	app configs.App,
	logger *zap.SugaredLogger,
	locker sync.Locker,
) *Sweeper {
	return &Sweeper{
		channels:  channels,
		polls:     polls,
		options:   options,
		votes:     votes,
		messenger: messenger,
		app:       app,
		logger:    logger,
		locker:    locker,
	}
}

// Schedule registers the periodic sweep on the scheduler.
func (s *Sweeper) Schedule(scheduler *gocron.Scheduler) error {
	_, err := scheduler.Every(s.app.SweepInterval).Do(s.Run)
	return err
}

// Run executes one full sweep.
func (s *Sweeper) Run() {
	s.locker.Lock()
	defer s.locker.Unlock()

	if err := s.CheckMessagesExist(); err != nil {
		s.logger.Errorw("sweep: existence check failed", "error", err)
	}
	if err := s.DeleteOldClosedPolls(); err != nil {
		s.logger.Errorw("sweep: retention cleanup failed", "error", err)
	}
}

// CheckMessagesExist walks every channel and poll and deletes the records
// whose backing Discord artifacts are gone.
func (s *Sweeper) CheckMessagesExist() error {
	channels, err := s.channels.GetMany()
	if err != nil {
		return err
	}

	live := make(map[int64]string, len(channels))

	for _, channel := range channels {
		err := s.messenger.ResolveChannel(channel.DiscordID)
		if errors.Is(err, transport.ErrNotFound) {
			s.logger.Infow("channel vanished, deleting with its polls", "channel_id", channel.DiscordID)
			if err := s.channels.Delete(channel); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		live[channel.ID] = channel.DiscordID
	}

	polls, err := s.polls.GetMany()
	if err != nil {
		return err
	}

	for _, p := range polls {
		discordID, ok := live[p.ChannelID]
		if !ok {
			// Deleted above, together with its channel.
			continue
		}

		if p.MessageID == "" {
			if err := s.polls.Delete(p); err != nil {
				return err
			}
			continue
		}

		_, err := s.messenger.FetchMessage(discordID, p.MessageID)
		if errors.Is(err, transport.ErrNotFound) {
			s.logger.Infow("poll message vanished, deleting poll", "poll_key", p.Key)
			if err := s.polls.Delete(p); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// DeleteOldClosedPolls removes closed polls older than the retention window,
// message included.
func (s *Sweeper) DeleteOldClosedPolls() error {
	cutoff := time.Now().Add(-s.app.ClosedPollRetention)

	expired, err := s.polls.GetManyClosedBefore(cutoff)
	if err != nil {
		return err
	}

	for _, p := range expired {
		channel, err := s.channels.GetOne(p.ChannelID)
		if err != nil {
			return err
		}

		if channel != nil && p.MessageID != "" {
			err = s.messenger.DeleteMessage(channel.DiscordID, p.MessageID)
			if err != nil && !errors.Is(err, transport.ErrNotFound) {
				return err
			}
		}

		s.logger.Infow("closed poll past retention, deleting", "poll_key", p.Key)
		if err := s.polls.Delete(p); err != nil {
			return err
		}
	}

	return nil
}

// RefreshAllPolls re-sends every poll message, bringing each one back to the
// bottom of its channel. Run once at startup, after a potentially long
// downtime.
func (s *Sweeper) RefreshAllPolls() error {
	s.locker.Lock()
	defer s.locker.Unlock()

	polls, err := s.polls.GetMany()
	if err != nil {
		return err
	}

	for _, p := range polls {
		channel, err := s.channels.GetOne(p.ChannelID)
		if err != nil {
			return err
		}
		if channel == nil {
			continue
		}

		if err := s.refreshPoll(p, channel.DiscordID); err != nil {
			s.logger.Warnw("failed to refresh poll", "poll_key", p.Key, "error", err)
		}
	}

	return nil
}

func (s *Sweeper) refreshPoll(p *models.Poll, channelDiscordID string) error {
	if p.MessageID != "" {
		err := s.messenger.DeleteMessage(channelDiscordID, p.MessageID)
		if err != nil && !errors.Is(err, transport.ErrNotFound) {
			return err
		}
	}

	options, err := s.options.GetManyByPoll(p.ID)
	if err != nil {
		return err
	}

	votes := make(map[int64][]*models.Vote, len(options))
	for _, option := range options {
		optionVotes, err := s.votes.GetManyByOption(option.ID)
		if err != nil {
			return err
		}
		votes[option.ID] = optionVotes
	}

	messageID, err := s.messenger.SendMessage(channelDiscordID, poll.Render(p, options, votes))
	if err != nil {
		return err
	}

	p.MessageID = messageID
	if _, err = s.polls.Update(p); err != nil {
		return err
	}

	if !p.Closed {
		for position := 1; position <= len(options) && position <= transport.MaxReactionOptions; position++ {
			if err := s.messenger.AddReaction(channelDiscordID, messageID, transport.NumberEmoji(position)); err != nil {
				s.logger.Warnw("failed to add reaction", "error", err)
				break
			}
		}
	}

	return nil
}
