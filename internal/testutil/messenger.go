package testutil

import (
	"fmt"

	"poll_me_bot/internal/transport"
)

// FakeMessenger records every outgoing call and serves message fetches from
// what was sent. Entries in MissingMessages and MissingChannels answer with
// transport.ErrNotFound, simulating out-of-band deletion.
type FakeMessenger struct {
	Sent      map[string]*transport.Message
	SentOrder []string
	Deleted   []string
	Edits     map[string]string
	Reactions map[string][]string
	DMs       map[string][]string

	MissingMessages map[string]bool
	MissingChannels map[string]bool
	Members         []transport.Member
	Admins          map[string]bool

	nextID int
}

func NewFakeMessenger() *FakeMessenger {
	return &FakeMessenger{
		Sent:            make(map[string]*transport.Message),
		Edits:           make(map[string]string),
		Reactions:       make(map[string][]string),
		DMs:             make(map[string][]string),
		MissingMessages: make(map[string]bool),
		MissingChannels: make(map[string]bool),
		Admins:          make(map[string]bool),
	}
}

func (f *FakeMessenger) SendMessage(channelID, content string) (string, error) {
	f.nextID++
	id := fmt.Sprintf("msg-%d", f.nextID)

	f.Sent[id] = &transport.Message{
		ID:        id,
		ChannelID: channelID,
		Content:   content,
	}
	f.SentOrder = append(f.SentOrder, id)
	return id, nil
}

func (f *FakeMessenger) EditMessage(channelID, messageID, content string) error {
	if f.MissingMessages[messageID] {
		return transport.ErrNotFound
	}

	f.Edits[messageID] = content
	if message, ok := f.Sent[messageID]; ok {
		message.Content = content
	}
	return nil
}

func (f *FakeMessenger) DeleteMessage(channelID, messageID string) error {
	if f.MissingMessages[messageID] {
		return transport.ErrNotFound
	}

	f.Deleted = append(f.Deleted, messageID)
	f.MissingMessages[messageID] = true
	return nil
}

func (f *FakeMessenger) FetchMessage(channelID, messageID string) (*transport.Message, error) {
	if f.MissingMessages[messageID] {
		return nil, transport.ErrNotFound
	}
	if message, ok := f.Sent[messageID]; ok {
		return message, nil
	}
	return nil, transport.ErrNotFound
}

func (f *FakeMessenger) AddReaction(channelID, messageID, emoji string) error {
	f.Reactions[messageID] = append(f.Reactions[messageID], emoji)
	return nil
}

func (f *FakeMessenger) RemoveOwnReaction(channelID, messageID, emoji string) error {
	return nil
}

func (f *FakeMessenger) ClearReaction(channelID, messageID, emoji string) error {
	kept := f.Reactions[messageID][:0]
	for _, existing := range f.Reactions[messageID] {
		if existing != emoji {
			kept = append(kept, existing)
		}
	}
	f.Reactions[messageID] = kept
	return nil
}

func (f *FakeMessenger) ClearReactions(channelID, messageID string) error {
	delete(f.Reactions, messageID)
	return nil
}

func (f *FakeMessenger) SendDirectMessage(userID, content string) error {
	f.DMs[userID] = append(f.DMs[userID], content)
	return nil
}

func (f *FakeMessenger) ResolveChannel(channelID string) error {
	if f.MissingChannels[channelID] {
		return transport.ErrNotFound
	}
	return nil
}

func (f *FakeMessenger) ServerMembers(serverID string) ([]transport.Member, error) {
	return f.Members, nil
}

func (f *FakeMessenger) IsAdministrator(channelID, userID string) (bool, error) {
	return f.Admins[userID], nil
}

// LastSent returns the most recently sent message, or nil.
func (f *FakeMessenger) LastSent() *transport.Message {
	if len(f.SentOrder) == 0 {
		return nil
	}
	return f.Sent[f.SentOrder[len(f.SentOrder)-1]]
}
