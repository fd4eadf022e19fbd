package models

const (
	DebateStatusActive = "active"
	DebateStatusEnded  = "ended"
)

// Finish vote values recorded per (debate, participant).
const (
	FinishWant = "want"
	FinishNo   = "no"
)

// Debate is a turn-based exchange between exactly two users. Turn is
// display state: it names who is expected to speak next, it does not
// gate posting.
type Debate struct {
	ID        string `json:"debateId"`
	UserA     string `json:"userA"`
	UserB     string `json:"userB"`
	Topic     string `json:"topic"`
	Status    string `json:"status"`
	Turn      string `json:"turn"`
	Winner    string `json:"winner,omitempty"`
	CreatedAt int64  `json:"createdAt"`
	EndedAt   int64  `json:"endedAt,omitempty"`
}

// Other returns the participant opposite to user.
func (d *Debate) Other(user string) string {
	if user == d.UserA {
		return d.UserB
	}
	return d.UserA
}

// HasParticipant reports whether user is one of the two parties.
func (d *Debate) HasParticipant(user string) bool {
	return user == d.UserA || user == d.UserB
}

// Message is one immutable entry in a debate's history log.
type Message struct {
	From string `json:"from"`
	Text string `json:"text"`
	Ts   int64  `json:"ts"`
}

// DebateListing is a debate plus the latest message, as shown in a
// user's debate list.
type DebateListing struct {
	Debate
	LastMessage *Message `json:"lastMessage"`
}
