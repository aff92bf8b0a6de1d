package models

// Participant identifies a voter: either a Discord member (by id) or an
// external person known only by a free-text name. Exactly one side is set.
type Participant struct {
	memberID     string
	externalName string
}

func Member(id string) Participant {
	return Participant{memberID: id}
}

func External(name string) Participant {
	return Participant{externalName: name}
}

func (p Participant) IsExternal() bool {
	return p.externalName != ""
}

func (p Participant) MemberID() string {
	return p.memberID
}

func (p Participant) ExternalName() string {
	return p.externalName
}

func (p Participant) IsZero() bool {
	return p.memberID == "" && p.externalName == ""
}

// Mention is the display form used in rendered poll messages.
func (p Participant) Mention() string {
	if p.IsExternal() {
		return p.externalName
	}
	return "<@" + p.memberID + ">"
}
