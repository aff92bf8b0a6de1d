package models

import "time"

// Poll is one poll. Key is chosen by the author and is unique only together
// with ServerID, so the same key may exist on different servers.
type Poll struct {
	ID              int64     `json:"id" pg:",pk"`
	Key             string    `json:"poll_key" pg:"poll_key,notnull,unique:poll_key_server"`
	ServerID        string    `json:"server_id" pg:",notnull,unique:poll_key_server"`
	AuthorID        string    `json:"author_id" pg:",notnull"`
	Question        string    `json:"question"`
	MultipleOptions bool      `json:"multiple_options" pg:",use_zero"`
	OnlyNumbers     bool      `json:"only_numbers" pg:",use_zero"`
	NewOptions      bool      `json:"new_options" pg:",use_zero"`
	AllowExternal   bool      `json:"allow_external" pg:",use_zero"`
	Closed          bool      `json:"closed" pg:",use_zero"`
	ClosedAt        time.Time `json:"closed_at"`
	CreatedAt       time.Time `json:"created_at" pg:"default:now()"`
	ChannelID       int64     `json:"channel_id" pg:",notnull"`
	MessageID       string    `json:"message_id"`

	Options []*Option `json:"options" pg:"rel:has-many"`
}
