package commands

import (
	"errors"

	"poll_me_bot/internal/parser"
	"poll_me_bot/internal/transport"
)

type refreshPollCommand struct {
	base
}

func NewRefreshPollCommand(deps Deps) Command {
	return &refreshPollCommand{base: base{Deps: deps}}
}

// Handle re-sends the poll message at the bottom of the channel, so a poll
// buried by conversation stays reachable.
func (c *refreshPollCommand) Handle(ctx Context) error {
	if ctx.Channel == nil {
		c.replyTemp(ctx, "There's no poll in this channel for you to refresh!")
		return nil
	}

	key, err := parser.ParseKeyOnly(ctx.Tokens)
	if err != nil {
		c.invalidParameters(ctx)
		return nil
	}

	p, err := c.Polls.GetOneByKey(key, ctx.ServerID)
	if err != nil {
		return err
	}
	if p == nil {
		c.replyTemp(ctx, "There's no poll with that key for you to refresh.\nYour command: **"+ctx.Content+"**")
		return nil
	}

	if p.MessageID != "" {
		if err = c.Messenger.DeleteMessage(ctx.ChannelID, p.MessageID); err != nil && !errors.Is(err, transport.ErrNotFound) {
			c.Logger.Warnw("failed to delete stale poll message", "error", err)
		}
	}

	content, err := c.renderPoll(p)
	if err != nil {
		return err
	}

	messageID, err := c.Messenger.SendMessage(ctx.ChannelID, content)
	if err != nil {
		return err
	}

	p.MessageID = messageID
	if _, err = c.Polls.Update(p); err != nil {
		return err
	}

	if !p.Closed {
		options, err := c.Options.GetManyByPoll(p.ID)
		if err != nil {
			return err
		}
		c.seedReactions(ctx.ChannelID, messageID, len(options))
	}

	return nil
}
