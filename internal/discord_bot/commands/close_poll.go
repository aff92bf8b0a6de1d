package commands

import (
	"errors"
	"fmt"
	"time"

	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/parser"
	"poll_me_bot/internal/transport"
)

type closePollCommand struct {
	base
}

func NewClosePollCommand(deps Deps) Command {
	return &closePollCommand{base: base{Deps: deps}}
}

func (c *closePollCommand) Handle(ctx Context) error {
	if ctx.Channel == nil {
		c.replyTemp(ctx, "There's no poll in this channel for you to close!")
		return nil
	}

	request, err := parser.ParseClose(ctx.Tokens)
	if err != nil {
		c.invalidParameters(ctx)
		return nil
	}

	p, err := c.Polls.GetOneByKey(request.Key, ctx.ServerID)
	if err != nil {
		return err
	}
	if p == nil {
		c.replyTemp(ctx, "There's no poll with that key for you to close.\nYour command: **"+ctx.Content+"**")
		return nil
	}

	if p.AuthorID != ctx.AuthorID {
		c.replyTemp(ctx, "Only the author of a poll can close it!")
		return nil
	}

	if p.Closed {
		return nil
	}

	options, err := c.Options.GetManyByPoll(p.ID)
	if err != nil {
		return err
	}

	// Snapshot the voters before pruning options, the DM fan-out happens in
	// the background.
	ids := make([]int64, 0, len(options))
	for _, option := range options {
		ids = append(ids, option.ID)
	}
	votes, err := c.Votes.GetManyByOptions(ids)
	if err != nil {
		return err
	}
	go c.notifyVoters(p, votes, ctx.ChannelID)

	selected := make(map[int]bool, len(request.Indexes))
	for _, index := range request.Indexes {
		selected[index] = true
	}

	// Only the selected subset survives into the closed poll.
	for _, option := range options {
		if !selected[option.Position] {
			if err = c.Options.Delete(option); err != nil {
				return err
			}
		}
	}

	p.Closed = true
	p.ClosedAt = time.Now()

	if _, err = c.Polls.Update(p); err != nil {
		return err
	}

	if err = c.updatePollMessage(p, ctx.ChannelID); err != nil {
		return err
	}

	if err = c.Messenger.ClearReactions(ctx.ChannelID, p.MessageID); err != nil && !errors.Is(err, transport.ErrNotFound) {
		c.Logger.Warnw("failed to clear reactions", "error", err)
	}

	c.Logger.Infow("poll closed", "poll_key", p.Key)
	return nil
}

// notifyVoters DMs every distinct member that voted, except the author.
// External participants have nowhere to be reached and are skipped, as is
// anyone whose direct messages are blocked.
func (c *closePollCommand) notifyVoters(p *models.Poll, votes []*models.Vote, channelDiscordID string) {
	notified := make(map[string]bool)
	text := fmt.Sprintf("Poll %s was closed, check the results in <#%s>!", p.Key, channelDiscordID)

	for _, vote := range votes {
		participant := vote.Participant()
		if participant.IsExternal() {
			continue
		}

		memberID := participant.MemberID()
		if memberID == p.AuthorID || notified[memberID] {
			continue
		}
		notified[memberID] = true

		if err := c.Messenger.SendDirectMessage(memberID, text); err != nil {
			c.Logger.Debugw("failed to DM voter", "member_id", memberID, "error", err)
		}
	}
}
