package commands

import (
	"poll_me_bot/internal/parser"
)

type configureChannelCommand struct {
	base
}

func NewConfigureChannelCommand(deps Deps) Command {
	return &configureChannelCommand{base: base{Deps: deps}}
}

// Handle sets the channel's message deletion policy. Administrators only.
func (c *configureChannelCommand) Handle(ctx Context) error {
	admin, err := c.Messenger.IsAdministrator(ctx.ChannelID, ctx.AuthorID)
	if err != nil {
		return err
	}
	if !admin {
		c.replyTemp(ctx, "Only server administrators can configure a channel!")
		return nil
	}

	policy, err := parser.ParseConfigure(ctx.Tokens)
	if err != nil {
		c.invalidParameters(ctx)
		return nil
	}

	channel, err := c.ensureChannel(ctx)
	if err != nil {
		return err
	}

	channel.DeleteCommands = policy == parser.DeleteCommands
	channel.DeleteAll = policy == parser.DeleteAll

	if _, err = c.Channels.Update(channel); err != nil {
		return err
	}

	c.Logger.Infow("channel configured",
		"channel_id", channel.DiscordID,
		"delete_commands", channel.DeleteCommands,
		"delete_all", channel.DeleteAll,
	)
	return nil
}
