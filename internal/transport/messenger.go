package transport

import "errors"

// ErrNotFound is the distinguished "the backing Discord artifact is gone"
// signal. Callers treat it as an expected race, not a failure.
var ErrNotFound = errors.New("not found")

type Message struct {
	ID        string
	ChannelID string
	ServerID  string
	AuthorID  string
	Content   string
	ReplyToID string
}

type Member struct {
	ID    string
	IsBot bool
}

// Messenger is the narrow surface of the chat platform the bot needs. All
// methods may block on network I/O.
type Messenger interface {
	SendMessage(channelID, content string) (string, error)
	EditMessage(channelID, messageID, content string) error
	DeleteMessage(channelID, messageID string) error
	FetchMessage(channelID, messageID string) (*Message, error)

	AddReaction(channelID, messageID, emoji string) error
	RemoveOwnReaction(channelID, messageID, emoji string) error
	ClearReaction(channelID, messageID, emoji string) error
	ClearReactions(channelID, messageID string) error

	SendDirectMessage(userID, content string) error
	ResolveChannel(channelID string) error
	ServerMembers(serverID string) ([]Member, error)
	IsAdministrator(channelID, userID string) (bool, error)
}
