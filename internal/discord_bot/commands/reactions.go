package commands

import (
	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/transport"
)

// Reactions maps number reactions on poll messages to votes. Like
// Interactive it shares the command collaborators without being a Command.
type Reactions struct {
	base
}

func NewReactions(deps Deps) *Reactions {
	return &Reactions{base: base{Deps: deps}}
}

// Handle applies one reaction event. It reports whether the message was a
// poll message at all; when it was not, the dispatcher may still route the
// reaction to the interactive flow.
func (r *Reactions) Handle(channelID, messageID, userID, emoji string, added bool) (bool, error) {
	p, err := r.Polls.GetOneByMessageID(messageID)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}

	if p.Closed {
		return true, nil
	}

	position := transport.EmojiNumber(emoji)
	if position == 0 {
		return true, nil
	}

	options, err := r.Options.GetManyByPoll(p.ID)
	if err != nil {
		return true, err
	}

	participant := models.Member(userID)

	var changed bool
	if added {
		changed, err = r.Engine.AddVote(position, participant, options, p.MultipleOptions)
	} else {
		changed, err = r.Engine.RemoveVote(position, participant, options)
	}
	if err != nil {
		return true, err
	}

	if !changed {
		return true, nil
	}

	return true, r.updatePollMessage(p, channelID)
}
