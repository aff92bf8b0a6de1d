package commands

import (
	"fmt"
	"strings"

	"poll_me_bot/internal/parser"
)

type mentionCommand struct {
	base
}

func NewMentionCommand(deps Deps) Command {
	return &mentionCommand{base: base{Deps: deps}}
}

// Handle pings everyone who voted on an option with a message from the
// author. External participants have no account to ping and are left out.
func (c *mentionCommand) Handle(ctx Context) error {
	if ctx.Channel == nil {
		c.replyTemp(ctx, "There's no poll in this channel for you to mention participants of!")
		return nil
	}

	request, err := parser.ParseMention(ctx.Tokens)
	if err != nil {
		c.invalidParameters(ctx)
		return nil
	}

	p, err := c.Polls.GetOneByKey(request.Key, ctx.ServerID)
	if err != nil {
		return err
	}
	if p == nil {
		c.replyTemp(ctx, "There's no poll with that key.\nYour command: **"+ctx.Content+"**")
		return nil
	}

	options, err := c.Options.GetManyByPoll(p.ID)
	if err != nil {
		return err
	}

	if request.Index < 1 || request.Index > len(options) {
		c.invalidParameters(ctx)
		return nil
	}

	votes, err := c.Votes.GetManyByOption(options[request.Index-1].ID)
	if err != nil {
		return err
	}

	mentions := make([]string, 0, len(votes))
	for _, vote := range votes {
		participant := vote.Participant()
		if participant.IsExternal() || participant.MemberID() == ctx.AuthorID {
			continue
		}
		mentions = append(mentions, participant.Mention())
	}

	if len(mentions) == 0 {
		c.replyTemp(ctx, "There's no one to mention on that option.")
		return nil
	}

	text := fmt.Sprintf("<@%s> would like to tell %s: %s.", ctx.AuthorID, strings.Join(mentions, " "), request.Message)

	_, err = c.Messenger.SendMessage(ctx.ChannelID, text)
	return err
}
