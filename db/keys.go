package db

// Redis key layout. Every arena entity lives under exactly one of these
// keys; the id embedded in the key is the owning user or debate.
const (
	LeaderboardKey   = "leaderboard"    // ZSET, score = wins - losses
	InactiveUsersKey = "users:inactive" // SET of ids awaiting activation
)

func ClaimsKey(user string) string { return "claims:" + user }

func DebatesKey(user string) string { return "debates:" + user }

func DebateKey(id string) string { return "debate:" + id }

func HistoryKey(id string) string { return "history:" + id }

func SummaryKey(id string) string { return "summary:" + id }

func StatsKey(user string) string { return "stats:" + user }

func InboxKey(user string) string { return "inbox:" + user }

func InvitationKey(id string) string { return "invitation:" + id }

func InvitationsKey(user string) string { return "invitations:" + user }

// FinishKey holds one participant's ephemeral finish vote. It expires
// on its own, separately from the debate record.
func FinishKey(debateID, user string) string {
	return "finish:" + debateID + ":" + user
}
