package models

// Claim is one statement in a user's append-only claim log. The owner
// is implied by the log the claim lives in.
type Claim struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Ts   int64  `json:"ts"`
}

// Opponent is one flattened match candidate: a claim by someone else.
type Opponent struct {
	Opponent string `json:"opponent"`
	ClaimID  string `json:"claimId"`
	Text     string `json:"text"`
}
