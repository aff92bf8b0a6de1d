package commands

import "poll_me_bot/internal/parser"

type deletePollCommand struct {
	base
}

func NewDeletePollCommand(deps Deps) Command {
	return &deletePollCommand{base: base{Deps: deps}}
}

func (c *deletePollCommand) Handle(ctx Context) error {
	if ctx.Channel == nil {
		c.replyTemp(ctx, "There's no poll in this channel for you to delete!")
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
		c.replyTemp(ctx, "There's no poll with that key for you to delete.\nYour command: **"+ctx.Content+"**")
		return nil
	}

	if p.AuthorID != ctx.AuthorID {
		c.replyTemp(ctx, "Only the author of a poll can delete it!")
		return nil
	}

	channel, err := c.Channels.GetOne(p.ChannelID)
	if err != nil {
		return err
	}

	channelDiscordID := ctx.ChannelID
	if channel != nil {
		channelDiscordID = channel.DiscordID
	}

	if err = c.deletePoll(p, channelDiscordID); err != nil {
		return err
	}

	c.Logger.Infow("poll deleted", "poll_key", p.Key)
	return nil
}
