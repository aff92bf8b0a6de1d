package commands

import (
	"errors"
	"fmt"

	"poll_me_bot/configs"
	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/db/repositories"
	"poll_me_bot/internal/poll"
	"poll_me_bot/internal/transport"

	"go.uber.org/zap"
)

// Context describes one inbound command: where it was sent, by whom, the raw
// text, and the tokens after the verb. Channel is nil when this Discord
// channel has no record yet.
type Context struct {
	ServerID  string
	ChannelID string
	AuthorID  string
	Content   string
	Tokens    []string
	Channel   *models.Channel
}

type Command interface {
	Handle(ctx Context) error
}

// Deps are the collaborators every command draws from; the process entry
// point owns their lifecycle.
type Deps struct {
	Messenger transport.Messenger
	Channels  repositories.ChannelRepository
	Polls     repositories.PollRepository
	Options   repositories.OptionRepository
	Votes     repositories.VoteRepository
	Engine    *poll.Engine
	App       configs.App
	Logger    *zap.SugaredLogger
}

type base struct {
	Deps
}

// replyTemp sends a transient, self-deleting reply.
func (b *base) replyTemp(ctx Context, text string) {
	if _, err := transport.SendTemporary(b.Messenger, ctx.ChannelID, text, b.App.TempMessageTimeout); err != nil {
		b.Logger.Errorw("failed to send temporary message", "error", err)
	}
}

func (b *base) invalidParameters(ctx Context) {
	b.replyTemp(ctx, fmt.Sprintf("Invalid parameters in command: **%s**", ctx.Content))
}

// ensureChannel returns the channel record for the context, creating it on
// first contact.
func (b *base) ensureChannel(ctx Context) (*models.Channel, error) {
	if ctx.Channel != nil {
		return ctx.Channel, nil
	}

	return b.Channels.Create(&models.Channel{
		DiscordID: ctx.ChannelID,
		ServerID:  ctx.ServerID,
	})
}

func (b *base) votesByOption(options []*models.Option) (map[int64][]*models.Vote, error) {
	votes := make(map[int64][]*models.Vote, len(options))

	for _, option := range options {
		optionVotes, err := b.Votes.GetManyByOption(option.ID)
		if err != nil {
			return nil, err
		}
		votes[option.ID] = optionVotes
	}

	return votes, nil
}

func (b *base) renderPoll(p *models.Poll) (string, error) {
	options, err := b.Options.GetManyByPoll(p.ID)
	if err != nil {
		return "", err
	}

	votes, err := b.votesByOption(options)
	if err != nil {
		return "", err
	}

	return poll.Render(p, options, votes), nil
}

// updatePollMessage re-renders the poll into its backing message. When the
// message was deleted from under us the poll record is dropped instead of
// surfacing an error.
func (b *base) updatePollMessage(p *models.Poll, channelDiscordID string) error {
	content, err := b.renderPoll(p)
	if err != nil {
		return err
	}

	err = b.Messenger.EditMessage(channelDiscordID, p.MessageID, content)
	if errors.Is(err, transport.ErrNotFound) {
		b.Logger.Infow("poll message vanished, deleting poll", "poll_key", p.Key)
		return b.Polls.Delete(p)
	}

	return err
}

// deletePoll removes the backing message (tolerating its absence) and then
// the record with its options and votes. The sweep routes through the same
// path.
func (b *base) deletePoll(p *models.Poll, channelDiscordID string) error {
	if p.MessageID != "" {
		if err := b.Messenger.DeleteMessage(channelDiscordID, p.MessageID); err != nil && !errors.Is(err, transport.ErrNotFound) {
			return err
		}
	}

	return b.Polls.Delete(p)
}

// seedReactions adds one numeric reaction per option, nine at most.
func (b *base) seedReactions(channelDiscordID, messageID string, optionCount int) {
	for position := 1; position <= optionCount && position <= transport.MaxReactionOptions; position++ {
		if err := b.Messenger.AddReaction(channelDiscordID, messageID, transport.NumberEmoji(position)); err != nil {
			b.Logger.Warnw("failed to add reaction", "error", err)
			return
		}
	}
}
