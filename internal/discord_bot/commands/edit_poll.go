package commands

import (
	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/parser"
	"poll_me_bot/internal/transport"
)

type editPollCommand struct {
	base
}

func NewEditPollCommand(deps Deps) Command {
	return &editPollCommand{base: base{Deps: deps}}
}

func (c *editPollCommand) Handle(ctx Context) error {
	if ctx.Channel == nil {
		c.replyTemp(ctx, "There's no poll in this channel for you to edit!")
		return nil
	}

	request, err := parser.ParseEdit(ctx.Tokens)
	if err != nil {
		c.invalidParameters(ctx)
		return nil
	}

	p, err := c.Polls.GetOneByKey(request.Key, ctx.ServerID)
	if err != nil {
		return err
	}
	if p == nil {
		c.replyTemp(ctx, "There's no poll with that key for you to edit.\nYour command: **"+ctx.Content+"**")
		return nil
	}

	if p.AuthorID != ctx.AuthorID {
		c.replyTemp(ctx, "Only the author of a poll can edit it!")
		return nil
	}

	if p.Closed {
		c.replyTemp(ctx, "Poll *"+p.Key+"* is closed and can no longer be edited.")
		return nil
	}

	options, err := c.Options.GetManyByPoll(p.ID)
	if err != nil {
		return err
	}

	switch request.Mode {
	case parser.EditAddOptions:
		err = c.addOptions(ctx, p, options, request.Options)
	case parser.EditRemoveOptions:
		err = c.removeOptions(ctx, p, options, request.Indexes)
	case parser.EditLockOptions:
		err = c.setLocked(options, request.Indexes, true)
	case parser.EditUnlockOptions:
		err = c.setLocked(options, request.Indexes, false)
	case parser.EditQuestion:
		p.Question = request.Question
		_, err = c.Polls.Update(p)
	default:
		p.MultipleOptions = request.Toggles.MultipleOptions
		p.OnlyNumbers = request.Toggles.OnlyNumbers
		p.NewOptions = request.Toggles.NewOptions
		p.AllowExternal = request.Toggles.AllowExternal
		_, err = c.Polls.Update(p)
	}
	if err != nil {
		return err
	}

	return c.updatePollMessage(p, ctx.ChannelID)
}

func (c *editPollCommand) addOptions(ctx Context, p *models.Poll, existing []*models.Option, labels []string) error {
	added := make([]*models.Option, 0, len(labels))

	for i, label := range labels {
		added = append(added, &models.Option{
			PollID:   p.ID,
			Position: len(existing) + i + 1,
			Text:     label,
		})
	}

	if err := c.Options.CreateMany(added); err != nil {
		return err
	}

	for position := len(existing) + 1; position <= len(existing)+len(added) && position <= transport.MaxReactionOptions; position++ {
		if err := c.Messenger.AddReaction(ctx.ChannelID, p.MessageID, transport.NumberEmoji(position)); err != nil {
			c.Logger.Warnw("failed to add reaction", "error", err)
			break
		}
	}

	return nil
}

// removeOptions deletes the selected options (votes included) and renumbers
// the survivors so positions stay dense. Indexes arrive unique and in
// decreasing order.
func (c *editPollCommand) removeOptions(ctx Context, p *models.Poll, options []*models.Option, indexes []int) error {
	removed := 0

	for _, index := range indexes {
		if index < 1 || index > len(options) {
			continue
		}

		if err := c.Options.Delete(options[index-1]); err != nil {
			return err
		}

		options = append(options[:index-1], options[index:]...)
		removed++
	}

	if removed == 0 {
		return nil
	}

	for i, option := range options {
		if option.Position != i+1 {
			option.Position = i + 1
			if _, err := c.Options.Update(option); err != nil {
				return err
			}
		}
	}

	// Reactions past the new option count no longer select anything.
	for position := len(options) + 1; position <= len(options)+removed && position <= transport.MaxReactionOptions; position++ {
		if err := c.Messenger.ClearReaction(ctx.ChannelID, p.MessageID, transport.NumberEmoji(position)); err != nil {
			c.Logger.Warnw("failed to clear reaction", "error", err)
			break
		}
	}

	return nil
}

func (c *editPollCommand) setLocked(options []*models.Option, indexes []int, locked bool) error {
	for _, index := range indexes {
		if index < 1 || index > len(options) {
			continue
		}

		option := options[index-1]
		if option.Locked == locked {
			continue
		}

		option.Locked = locked
		if _, err := c.Options.Update(option); err != nil {
			return err
		}
	}

	return nil
}
