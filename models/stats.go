package models

// Stats holds a user's monotonically increasing win/loss counters.
type Stats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Score is the leaderboard value derived from the counters. The
// leaderboard is always overwritten with this, never incremented.
func (s Stats) Score() int {
	return s.Wins - s.Losses
}

// LeaderboardEntry is one ranked row of the global leaderboard.
type LeaderboardEntry struct {
	User  string `json:"user"`
	Score int    `json:"score"`
}

// UserContext aggregates everything known about one user in a single
// read-only document.
type UserContext struct {
	User        string             `json:"user"`
	Profile     User               `json:"profile"`
	Claims      []Claim            `json:"claims"`
	Debates     []DebateListing    `json:"debates"`
	Stats       Stats              `json:"stats"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Invitations []Invitation       `json:"invitations"`
}
