package models

// Channel mirrors one Discord channel that was configured or hosted a poll.
type Channel struct {
	ID             int64  `json:"id" pg:",pk"`
	DiscordID      string `json:"discord_id" pg:",notnull,unique"`
	ServerID       string `json:"server_id"`
	DeleteCommands bool   `json:"delete_commands" pg:",use_zero"`
	DeleteAll      bool   `json:"delete_all" pg:",use_zero"`

	Polls []*Poll `json:"polls" pg:"rel:has-many"`
}
