package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/parser"
	"poll_me_bot/internal/poll"
	"poll_me_bot/internal/transport"
)

type createPollCommand struct {
	base
}

func NewCreatePollCommand(deps Deps) Command {
	return &createPollCommand{base: base{Deps: deps}}
}

func (c *createPollCommand) Handle(ctx Context) error {
	request, err := parser.ParseCreate(ctx.Tokens)
	if err != nil {
		c.invalidParameters(ctx)
		return nil
	}

	channel, err := c.ensureChannel(ctx)
	if err != nil {
		return err
	}

	if proceed, err := c.resolveKeyCollision(ctx, request); err != nil || !proceed {
		return err
	}

	if proceed, err := c.checkCapacity(ctx); err != nil || !proceed {
		return err
	}

	newPoll := &models.Poll{
		Key:             request.Key,
		ServerID:        ctx.ServerID,
		AuthorID:        ctx.AuthorID,
		Question:        request.Question,
		MultipleOptions: request.Toggles.MultipleOptions,
		OnlyNumbers:     request.Toggles.OnlyNumbers,
		NewOptions:      request.Toggles.NewOptions,
		AllowExternal:   request.Toggles.AllowExternal,
		ChannelID:       channel.ID,
	}

	newPoll, err = c.Polls.Create(newPoll)
	if err != nil {
		return err
	}

	options := buildOptions(newPoll.ID, optionLabels(request, time.Now()))
	if err = c.Options.CreateMany(options); err != nil {
		return err
	}

	go c.announce(ctx, newPoll)

	content, err := c.renderPoll(newPoll)
	if err != nil {
		return err
	}

	messageID, err := c.Messenger.SendMessage(ctx.ChannelID, content)
	if err != nil {
		// Never leave a poll behind that has no message to live in.
		if deleteErr := c.Polls.Delete(newPoll); deleteErr != nil {
			c.Logger.Errorw("failed to delete unsent poll", "error", deleteErr)
		}
		return err
	}

	newPoll.MessageID = messageID
	if _, err = c.Polls.Update(newPoll); err != nil {
		return err
	}

	c.seedReactions(ctx.ChannelID, messageID, len(options))

	c.Logger.Infow("poll created", "poll_key", newPoll.Key, "server_id", newPoll.ServerID)
	return nil
}

// resolveKeyCollision applies the collision policy: a key already used by the
// same author requires the -y confirmation, which deletes the previous poll;
// someone else's key is always rejected.
func (c *createPollCommand) resolveKeyCollision(ctx Context, request *parser.CreateRequest) (bool, error) {
	existing, err := c.Polls.GetOneByKey(request.Key, ctx.ServerID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return true, nil
	}

	if existing.AuthorID != ctx.AuthorID {
		c.replyTemp(ctx, "A poll with that key already exists and you cannot replace it because you are not its author!")
		return false, nil
	}

	if !request.Toggles.Confirm {
		c.replyTemp(ctx, fmt.Sprintf(
			"A poll with that key already exists, add **-y** to your command to confirm the deletion of the previous poll.\nYour command: **%s**",
			ctx.Content,
		))
		return false, nil
	}

	existingChannel, err := c.Channels.GetOne(existing.ChannelID)
	if err != nil {
		return false, err
	}

	channelDiscordID := ctx.ChannelID
	if existingChannel != nil {
		channelDiscordID = existingChannel.DiscordID
	}

	return true, c.deletePoll(existing, channelDiscordID)
}

func (c *createPollCommand) checkCapacity(ctx Context) (bool, error) {
	count, err := c.Polls.CountByServer(ctx.ServerID)
	if err != nil {
		return false, err
	}
	if count < c.App.PollLimitPerServer {
		return true, nil
	}

	own, err := c.Polls.GetManyByAuthor(ctx.ServerID, ctx.AuthorID)
	if err != nil {
		return false, err
	}

	var message strings.Builder
	message.WriteString("The server you're in has reached its poll limit, creating another poll is not possible. ")

	if len(own) == 0 {
		message.WriteString("Ask the authors of other polls to delete them.")
	} else {
		message.WriteString("Delete one of your polls before continuing.\nList of your polls in this server:")
		for _, p := range own {
			fmt.Fprintf(&message, "\n%s - !poll_delete %s", p.Key, p.Key)
		}
	}

	fmt.Fprintf(&message, "\nYour command: **%s**", ctx.Content)

	c.replyTemp(ctx, message.String())
	return false, nil
}

// announce sends a direct message to every server member except the bot and
// the author. Blocked direct messages are skipped, not fatal.
func (c *createPollCommand) announce(ctx Context, newPoll *models.Poll) {
	members, err := c.Messenger.ServerMembers(ctx.ServerID)
	if err != nil {
		c.Logger.Warnw("failed to list server members", "error", err)
		return
	}

	text := fmt.Sprintf("A new poll (%s) has been created in <#%s>!", newPoll.Key, ctx.ChannelID)

	for _, member := range members {
		if member.IsBot || member.ID == newPoll.AuthorID {
			continue
		}
		if err := c.Messenger.SendDirectMessage(member.ID, text); err != nil && !errors.Is(err, transport.ErrNotFound) {
			c.Logger.Debugw("failed to DM member", "member_id", member.ID, "error", err)
		}
	}
}

// optionLabels expands the request into option texts: weekday options first
// when requested, then the explicit ones, falling back to Yes/No.
func optionLabels(request *parser.CreateRequest, now time.Time) []string {
	labels := make([]string, 0)

	if request.Weekly {
		start := now
		end := poll.EndOfWeek(start)

		if request.WeeklyHasRange {
			start = poll.DateGivenDay(start, request.WeeklyRange.Start)
			if request.WeeklyRange.HasEnd {
				end = poll.DateGivenDay(start, request.WeeklyRange.End)
			} else {
				end = poll.EndOfWeek(start)
			}
		}

		labels = append(labels, poll.WeeklyOptions(start, end, request.WeeklyPortuguese)...)
	}

	labels = append(labels, request.Options...)

	if len(labels) == 0 {
		labels = []string{"Yes", "No"}
	}

	return labels
}

func buildOptions(pollID int64, labels []string) []*models.Option {
	options := make([]*models.Option, 0, len(labels))

	for i, label := range labels {
		options = append(options, &models.Option{
			PollID:   pollID,
			Position: i + 1,
			Text:     label,
		})
	}

	return options
}
