package models

import "time"

// Vote is one (option, participant) pair. MemberID and ExternalName are
// mutually exclusive, never both set.
type Vote struct {
	ID           int64     `json:"id" pg:",pk"`
	OptionID     int64     `json:"option_id" pg:",notnull"`
	MemberID     string    `json:"member_id"`
	ExternalName string    `json:"external_name"`
	CreatedAt    time.Time `json:"created_at" pg:"default:now()"`
}

func NewVote(optionID int64, participant Participant) *Vote {
	return &Vote{
		OptionID:     optionID,
		MemberID:     participant.MemberID(),
		ExternalName: participant.ExternalName(),
	}
}

func (v *Vote) Participant() Participant {
	if v.ExternalName != "" {
		return External(v.ExternalName)
	}
	return Member(v.MemberID)
}
