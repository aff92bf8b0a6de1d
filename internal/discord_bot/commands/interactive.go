package commands

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/poll"
	"poll_me_bot/internal/transport"
)

// Markers embedded in the bot's own prompt messages; they are how a reply or
// reaction is traced back to the step of the interactive flow it belongs to.
const (
	menuMarker       = "key:menu"
	createPollMarker = "key:create_poll"
	addOptionsMarker = "key:add_options"

	calendarEmoji = "📆"
)

var pollKeyPattern = regexp.MustCompile(`poll_key: ([^)]+)\)`)

// Interactive drives the reply-and-react poll creation flow started by
// !help_me_poll. It shares the command collaborators but is not a Command:
// the dispatcher feeds it replies and reactions rather than verbs.
type Interactive struct {
	base
}

func NewInteractive(deps Deps) *Interactive {
	return &Interactive{base: base{Deps: deps}}
}

// HandleReply processes a user reply to one of the bot's messages. It reports
// whether the referenced message was an interactive prompt.
func (i *Interactive) HandleReply(ctx Context, referenced *transport.Message) (bool, error) {
	switch {
	case strings.Contains(referenced.Content, createPollMarker):
		return true, i.createFromReply(ctx)
	case strings.Contains(referenced.Content, addOptionsMarker):
		key, ok := extractPollKey(referenced.Content)
		if !ok {
			return true, nil
		}
		return true, i.finishWithOptions(ctx, key, splitOptions(ctx.Content))
	}

	return false, nil
}

// HandleReaction processes a reaction on one of the bot's non-poll messages.
// The dispatcher resolves the message and fills in its server before calling.
func (i *Interactive) HandleReaction(msg *transport.Message, emoji, userID string) error {
	if strings.Contains(msg.Content, menuMarker) {
		switch transport.EmojiNumber(emoji) {
		case 1:
			prompt := "Reply to this message with the question for your poll. (" + createPollMarker + ")"
			_, err := transport.SendTemporary(i.Messenger, msg.ChannelID, prompt, i.App.InteractiveTimeout)
			return err
		case 2:
			_, err := transport.SendTemporary(i.Messenger, msg.ChannelID, helpText, i.App.InteractiveTimeout)
			return err
		}
		return nil
	}

	if strings.Contains(msg.Content, addOptionsMarker) && emoji == calendarEmoji {
		key, ok := extractPollKey(msg.Content)
		if !ok {
			return nil
		}

		now := time.Now()
		ctx := Context{ServerID: msg.ServerID, ChannelID: msg.ChannelID}
		return i.finishWithOptions(ctx, key, poll.WeeklyOptions(now, poll.EndOfWeek(now), false))
	}

	return nil
}

// createFromReply records the poll with the reply text as its question and
// asks for options next. The key is derived from the question, suffixed so
// repeated runs never collide.
func (i *Interactive) createFromReply(ctx Context) error {
	question := strings.TrimSpace(ctx.Content)
	if question == "" {
		return nil
	}

	channel, err := i.ensureChannel(ctx)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s_%s", strings.ToLower(strings.Fields(question)[0]), uuid.NewString()[:8])

	newPoll := &models.Poll{
		Key:       key,
		ServerID:  ctx.ServerID,
		AuthorID:  ctx.AuthorID,
		Question:  question,
		ChannelID: channel.ID,
	}

	if _, err = i.Polls.Create(newPoll); err != nil {
		return err
	}

	prompt := fmt.Sprintf(
		"Reply to this message with the options for your poll, separated by commas, or react with %s to use the days of the week. (%s) (poll_key: %s)",
		calendarEmoji, addOptionsMarker, key,
	)

	messageID, err := transport.SendTemporary(i.Messenger, ctx.ChannelID, prompt, i.App.InteractiveTimeout)
	if err != nil {
		return err
	}

	return i.Messenger.AddReaction(ctx.ChannelID, messageID, calendarEmoji)
}

// finishWithOptions attaches the options to the pending poll and publishes
// its message.
func (i *Interactive) finishWithOptions(ctx Context, key string, labels []string) error {
	p, err := i.Polls.GetOneByKey(key, ctx.ServerID)
	if err != nil {
		return err
	}
	if p == nil || p.MessageID != "" {
		return nil
	}

	if len(labels) == 0 {
		labels = []string{"Yes", "No"}
	}

	if err = i.Options.CreateMany(buildOptions(p.ID, labels)); err != nil {
		return err
	}

	content, err := i.renderPoll(p)
	if err != nil {
		return err
	}

	messageID, err := i.Messenger.SendMessage(ctx.ChannelID, content)
	if err != nil {
		return err
	}

	p.MessageID = messageID
	if _, err = i.Polls.Update(p); err != nil {
		return err
	}

	i.seedReactions(ctx.ChannelID, messageID, len(labels))

	i.Logger.Infow("poll created interactively", "poll_key", p.Key)
	return nil
}

func extractPollKey(content string) (string, bool) {
	match := pollKeyPattern.FindStringSubmatch(content)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

func splitOptions(content string) []string {
	parts := strings.Split(content, ",")
	labels := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}

	return labels
}
