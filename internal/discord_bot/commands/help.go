package commands

import (
	"poll_me_bot/internal/transport"
)

const helpText = "**Poll Me Bot command guide**\n" +
	"```\n" +
	"!poll_channel [-ka|-dc|-da]          configure message deletion in this channel\n" +
	"!poll poll_key \"Question\" \"Option\"...  create a poll (-m -o -n -e, -weekly, -weekly_pt, -y)\n" +
	"!poll_edit poll_key ...              edit settings, question or options (-add, -rm, -lock, -unlock)\n" +
	"!vote poll_key 1,2 [-e \"Name\"]       vote on options, or a quoted write-in option\n" +
	"!unvote poll_key 1,2 [-e \"Name\"]     remove votes\n" +
	"!poll_close poll_key 1,2             close the poll keeping only the selected options\n" +
	"!poll_delete poll_key                delete the poll\n" +
	"!poll_refresh poll_key               re-send the poll message\n" +
	"!poll_mention poll_key 1 \"Message\"   send a message to everyone that voted on an option\n" +
	"!help_me_poll                        show the interactive menu\n" +
	"```"

const menuText = "Hello, I'm Poll Me Bot and I'm here to help you make polls! (" + menuMarker + ")\n" +
	"React with the number of what you want to do:\n" +
	"1 - Create a new poll\n" +
	"2 - Show the command guide"

type helpCommand struct {
	base
}

func NewHelpCommand(deps Deps) Command {
	return &helpCommand{base: base{Deps: deps}}
}

// Handle starts the interactive mode: a menu message the user drives with
// number reactions. The menu cleans itself up after a while.
func (c *helpCommand) Handle(ctx Context) error {
	messageID, err := transport.SendTemporary(c.Messenger, ctx.ChannelID, menuText, c.App.InteractiveTimeout)
	if err != nil {
		return err
	}

	for position := 1; position <= 2; position++ {
		if err := c.Messenger.AddReaction(ctx.ChannelID, messageID, transport.NumberEmoji(position)); err != nil {
			c.Logger.Warnw("failed to add menu reaction", "error", err)
			return nil
		}
	}

	return nil
}
