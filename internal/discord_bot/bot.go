package discord_bot

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/discord_bot/commands"
	"poll_me_bot/internal/parser"
	"poll_me_bot/internal/transport"
)

type eventKind int

const (
	eventMessage eventKind = iota
	eventReactionAdd
	eventReactionRemove
)

type event struct {
	kind    eventKind
	message *transport.Message

	serverID  string
	channelID string
	messageID string
	userID    string
	emoji     string
}

// Bot routes Discord gateway events to command handlers. Gateway callbacks
// only enqueue; a single loop consumes the queue, so commands, reaction votes
// and interactive steps never run concurrently with each other. The sweep
// shares the same lock through Locker.
type Bot struct {
	deps        commands.Deps
	handlers    map[string]commands.Command
	interactive *commands.Interactive
	reactions   *commands.Reactions

	botID  string
	events chan event
	done   chan struct{}
	mu     sync.Mutex
}

func NewBot(deps commands.Deps) *Bot {
	return &Bot{
		deps: deps,
		handlers: map[string]commands.Command{
			"!poll_channel": commands.NewConfigureChannelCommand(deps),
			"!poll":         commands.NewCreatePollCommand(deps),
			"!poll_edit":    commands.NewEditPollCommand(deps),
			"!poll_close":   commands.NewClosePollCommand(deps),
			"!poll_delete":  commands.NewDeletePollCommand(deps),
			"!poll_refresh": commands.NewRefreshPollCommand(deps),
			"!poll_mention": commands.NewMentionCommand(deps),
			"!vote":         commands.NewVoteCommand(deps),
			"!unvote":       commands.NewUnvoteCommand(deps),
			"!help_me_poll": commands.NewHelpCommand(deps),
		},
		interactive: commands.NewInteractive(deps),
		reactions:   commands.NewReactions(deps),
		events:      make(chan event, 256),
		done:        make(chan struct{}),
	}
}

// Bind registers the gateway callbacks on the session. Call after the session
// is open so the bot's own user is known.
func (b *Bot) Bind(session *discordgo.Session) {
	b.botID = session.State.User.ID

	session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot || m.Author.ID == b.botID {
			return
		}

		message := &transport.Message{
			ID:        m.ID,
			ChannelID: m.ChannelID,
			ServerID:  m.GuildID,
			AuthorID:  m.Author.ID,
			Content:   m.Content,
		}
		if m.MessageReference != nil {
			message.ReplyToID = m.MessageReference.MessageID
		}

		b.enqueue(event{kind: eventMessage, message: message})
	})

	session.AddHandler(func(_ *discordgo.Session, r *discordgo.MessageReactionAdd) {
		if r.UserID == b.botID {
			return
		}
		b.enqueue(event{
			kind:      eventReactionAdd,
			serverID:  r.GuildID,
			channelID: r.ChannelID,
			messageID: r.MessageID,
			userID:    r.UserID,
			emoji:     r.Emoji.Name,
		})
	})

	session.AddHandler(func(_ *discordgo.Session, r *discordgo.MessageReactionRemove) {
		if r.UserID == b.botID {
			return
		}
		b.enqueue(event{
			kind:      eventReactionRemove,
			serverID:  r.GuildID,
			channelID: r.ChannelID,
			messageID: r.MessageID,
			userID:    r.UserID,
			emoji:     r.Emoji.Name,
		})
	})
}

// enqueue hands an event to the dispatch loop. Events arriving after Close
// are dropped, so a gateway callback firing during shutdown cannot send on a
// dead queue.
func (b *Bot) enqueue(ev event) {
	select {
	case b.events <- ev:
	case <-b.done:
	}
}

// Run consumes the event queue until Close is called. Meant to run on its own
// goroutine.
func (b *Bot) Run() {
	for {
		select {
		case <-b.done:
			return
		case ev := <-b.events:
			b.mu.Lock()
			b.dispatch(ev)
			b.mu.Unlock()
		}
	}
}

func (b *Bot) Close() {
	close(b.done)
}

// Locker exposes the dispatch lock, so the periodic sweep can serialize with
// command handling.
func (b *Bot) Locker() sync.Locker {
	return &b.mu
}

func (b *Bot) dispatch(ev event) {
	var err error

	switch ev.kind {
	case eventMessage:
		err = b.handleMessage(ev.message)
	case eventReactionAdd:
		err = b.handleReaction(ev, true)
	case eventReactionRemove:
		err = b.handleReaction(ev, false)
	}

	if err != nil {
		b.deps.Logger.Errorw("failed to handle event", "error", err)
	}
}

func (b *Bot) handleMessage(message *transport.Message) error {
	channel, err := b.deps.Channels.GetOneByDiscordID(message.ChannelID)
	if err != nil {
		return err
	}

	ctx := commands.Context{
		ServerID:  message.ServerID,
		ChannelID: message.ChannelID,
		AuthorID:  message.AuthorID,
		Content:   message.Content,
		Channel:   channel,
	}

	processed := false

	switch {
	case message.ReplyToID != "":
		processed, err = b.handleReply(ctx, message)
	case strings.HasPrefix(message.Content, "!"):
		processed = true
		err = b.handleCommand(ctx)
	}
	if err != nil {
		return err
	}

	return b.applyDeletePolicy(channel, message, processed)
}

// handleReply routes replies to the bot's own messages into the interactive
// flow. Replies to anything else are ordinary chatter.
func (b *Bot) handleReply(ctx commands.Context, message *transport.Message) (bool, error) {
	referenced, err := b.deps.Messenger.FetchMessage(message.ChannelID, message.ReplyToID)
	if errors.Is(err, transport.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if referenced.AuthorID != b.botID {
		return false, nil
	}

	return b.interactive.HandleReply(ctx, referenced)
}

func (b *Bot) handleCommand(ctx commands.Context) error {
	tokens, err := parser.Tokenize(ctx.Content)
	if err != nil {
		b.replyInvalid(ctx)
		return nil
	}
	if len(tokens) == 0 {
		return nil
	}

	command, ok := b.handlers[tokens[0]]
	if !ok {
		return nil
	}

	ctx.Tokens = tokens[1:]
	return command.Handle(ctx)
}

// applyDeletePolicy enforces the channel's configured cleanup: delete_all
// removes every user message, delete_commands only the ones the bot acted on.
func (b *Bot) applyDeletePolicy(channel *models.Channel, message *transport.Message, processed bool) error {
	if channel == nil {
		return nil
	}
	if !channel.DeleteAll && !(channel.DeleteCommands && processed) {
		return nil
	}

	err := b.deps.Messenger.DeleteMessage(message.ChannelID, message.ID)
	if errors.Is(err, transport.ErrNotFound) {
		return nil
	}
	return err
}

func (b *Bot) handleReaction(ev event, added bool) error {
	wasPoll, err := b.reactions.Handle(ev.channelID, ev.messageID, ev.userID, ev.emoji, added)
	if err != nil || wasPoll || !added {
		return err
	}

	// Not a poll message; it may be one of the bot's interactive prompts.
	message, err := b.deps.Messenger.FetchMessage(ev.channelID, ev.messageID)
	if errors.Is(err, transport.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if message.AuthorID != b.botID {
		return nil
	}

	message.ServerID = ev.serverID
	return b.interactive.HandleReaction(message, ev.emoji, ev.userID)
}

func (b *Bot) replyInvalid(ctx commands.Context) {
	text := fmt.Sprintf("Invalid parameters in command: **%s**", ctx.Content)
	if _, err := transport.SendTemporary(b.deps.Messenger, ctx.ChannelID, text, b.deps.App.TempMessageTimeout); err != nil {
		b.deps.Logger.Errorw("failed to send temporary message", "error", err)
	}
}
