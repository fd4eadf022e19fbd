package models

// Invitation is a pending debate request. It only exists between
// creation and accept/reject and is listed for the recipient only.
type Invitation struct {
	ID        string `json:"invitationId"`
	FromUser  string `json:"fromUser"`
	ToUser    string `json:"toUser"`
	Topic     string `json:"topic"`
	CreatedAt int64  `json:"createdAt"`
}
