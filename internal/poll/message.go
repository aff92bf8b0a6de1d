package poll

import (
	"fmt"
	"strings"

	"poll_me_bot/internal/db/models"
)

// Render produces the display text for a poll message. It is a pure function
// of its inputs: the sweep and the live-edit path both rely on identical
// inputs always producing identical text.
func Render(p *models.Poll, options []*models.Option, votesByOption map[int64][]*models.Vote) string {
	var message strings.Builder

	fmt.Fprintf(&message, "**%s** (poll_key: %s) (author: <@%s>)", p.Question, p.Key, p.AuthorID)

	if p.Closed {
		message.WriteString(" (Closed)")
	}

	for _, option := range options {
		fmt.Fprintf(&message, "\n%d - %s", option.Position, option.Text)

		votes := votesByOption[option.ID]

		if len(votes) > 0 {
			fmt.Fprintf(&message, ": %d votes", len(votes))

			if p.OnlyNumbers {
				message.WriteString(".")
			} else {
				message.WriteString(" ->")

				for _, vote := range votes {
					message.WriteString(" " + vote.Participant().Mention())
				}
			}
		}

		if option.Locked {
			message.WriteString(" (locked)")
		}
	}

	if !p.Closed {
		if p.NewOptions {
			message.WriteString("\n(New options allowed!)")
		}
		if p.MultipleOptions {
			message.WriteString("\n(Multiple options allowed!)")
		}
		if p.AllowExternal {
			message.WriteString("\n(External voters allowed!)")
		}
	}

	return message.String()
}
