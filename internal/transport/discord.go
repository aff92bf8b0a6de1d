package transport

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

type discordMessenger struct {
	session *discordgo.Session
}

func NewDiscordMessenger(session *discordgo.Session) Messenger {
	return &discordMessenger{session: session}
}

func (m *discordMessenger) SendMessage(channelID, content string) (string, error) {
	message, err := m.session.ChannelMessageSend(channelID, content)
	if err != nil {
		return "", asNotFound(err)
	}

	return message.ID, nil
}

func (m *discordMessenger) EditMessage(channelID, messageID, content string) error {
	_, err := m.session.ChannelMessageEdit(channelID, messageID, content)
	return asNotFound(err)
}

func (m *discordMessenger) DeleteMessage(channelID, messageID string) error {
	return asNotFound(m.session.ChannelMessageDelete(channelID, messageID))
}

func (m *discordMessenger) FetchMessage(channelID, messageID string) (*Message, error) {
	message, err := m.session.ChannelMessage(channelID, messageID)
	if err != nil {
		return nil, asNotFound(err)
	}

	result := &Message{
		ID:        message.ID,
		ChannelID: message.ChannelID,
		Content:   message.Content,
	}
	if message.Author != nil {
		result.AuthorID = message.Author.ID
	}
	if message.MessageReference != nil {
		result.ReplyToID = message.MessageReference.MessageID
	}

	return result, nil
}

func (m *discordMessenger) AddReaction(channelID, messageID, emoji string) error {
	return asNotFound(m.session.MessageReactionAdd(channelID, messageID, emoji))
}

func (m *discordMessenger) RemoveOwnReaction(channelID, messageID, emoji string) error {
	return asNotFound(m.session.MessageReactionRemove(channelID, messageID, emoji, "@me"))
}

func (m *discordMessenger) ClearReaction(channelID, messageID, emoji string) error {
	return asNotFound(m.session.MessageReactionsRemoveEmoji(channelID, messageID, emoji))
}

func (m *discordMessenger) ClearReactions(channelID, messageID string) error {
	return asNotFound(m.session.MessageReactionsRemoveAll(channelID, messageID))
}

func (m *discordMessenger) SendDirectMessage(userID, content string) error {
	channel, err := m.session.UserChannelCreate(userID)
	if err != nil {
		return asNotFound(err)
	}

	_, err = m.session.ChannelMessageSend(channel.ID, content)
	return asNotFound(err)
}

func (m *discordMessenger) ResolveChannel(channelID string) error {
	_, err := m.session.Channel(channelID)
	return asNotFound(err)
}

func (m *discordMessenger) ServerMembers(serverID string) ([]Member, error) {
	members, err := m.session.GuildMembers(serverID, "", 1000)
	if err != nil {
		return nil, asNotFound(err)
	}

	result := make([]Member, 0, len(members))
	for _, member := range members {
		if member.User == nil {
			continue
		}
		result = append(result, Member{ID: member.User.ID, IsBot: member.User.Bot})
	}

	return result, nil
}

func (m *discordMessenger) IsAdministrator(channelID, userID string) (bool, error) {
	permissions, err := m.session.UserChannelPermissions(userID, channelID)
	if err != nil {
		return false, asNotFound(err)
	}

	return permissions&discordgo.PermissionAdministrator != 0, nil
}

func asNotFound(err error) error {
	var restErr *discordgo.RESTError

	if errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	return err
}
