package models

// Option is one selectable choice within a poll. Position is 1-based and
// dense: it is both the display order and the number voters use to pick it.
type Option struct {
	ID       int64  `json:"id" pg:",pk"`
	PollID   int64  `json:"poll_id" pg:",notnull"`
	Position int    `json:"position" pg:",notnull"`
	Text     string `json:"text"`
	Locked   bool   `json:"locked" pg:",use_zero"`

	Votes []*Vote `json:"votes" pg:"rel:has-many"`
}
