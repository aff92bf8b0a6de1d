package commands

import (
	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/parser"
	"poll_me_bot/internal/transport"
)

type voteCommand struct {
	base
	remove bool
}

func NewVoteCommand(deps Deps) Command {
	return &voteCommand{base: base{Deps: deps}}
}

func NewUnvoteCommand(deps Deps) Command {
	return &voteCommand{base: base{Deps: deps}, remove: true}
}

func (c *voteCommand) Handle(ctx Context) error {
	if ctx.Channel == nil {
		c.replyTemp(ctx, "There's no poll in this channel for you to vote on!")
		return nil
	}

	request, err := parser.ParseVote(ctx.Tokens)
	if err != nil {
		c.invalidParameters(ctx)
		return nil
	}

	p, err := c.Polls.GetOneByKey(request.Key, ctx.ServerID)
	if err != nil {
		return err
	}
	if p == nil {
		c.replyTemp(ctx, "There's no poll with that key for you to vote on.\nYour command: **"+ctx.Content+"**")
		return nil
	}

	if p.Closed {
		c.replyTemp(ctx, "Poll *"+p.Key+"* is closed, voting is no longer possible.")
		return nil
	}

	participant := models.Member(ctx.AuthorID)
	if request.External != "" {
		if !p.AllowExternal {
			c.replyTemp(ctx, "Poll *"+p.Key+"* does not allow votes for external people.\nYour command: **"+ctx.Content+"**")
			return nil
		}
		participant = models.External(request.External)
	}

	options, err := c.Options.GetManyByPoll(p.ID)
	if err != nil {
		return err
	}

	changed := false

	if request.WriteIn != "" {
		if c.remove {
			c.invalidParameters(ctx)
			return nil
		}

		option, added, err := c.Engine.AddWriteIn(p, options, request.WriteIn, participant)
		if err != nil {
			return err
		}
		if !added {
			c.replyTemp(ctx, "Poll *"+p.Key+"* does not allow new options.\nYour command: **"+ctx.Content+"**")
			return nil
		}

		changed = true
		if option.Position <= transport.MaxReactionOptions {
			if err := c.Messenger.AddReaction(ctx.ChannelID, p.MessageID, transport.NumberEmoji(option.Position)); err != nil {
				c.Logger.Warnw("failed to add reaction", "error", err)
			}
		}
	}

	for _, index := range request.Indexes {
		var voteChanged bool
		var voteErr error

		if c.remove {
			voteChanged, voteErr = c.Engine.RemoveVote(index, participant, options)
		} else {
			voteChanged, voteErr = c.Engine.AddVote(index, participant, options, p.MultipleOptions)
		}
		if voteErr != nil {
			return voteErr
		}

		changed = changed || voteChanged
	}

	if !changed {
		return nil
	}

	return c.updatePollMessage(p, ctx.ChannelID)
}
