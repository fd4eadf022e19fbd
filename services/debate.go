package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"debatearena/db"
	"debatearena/models"
	"debatearena/store"

	"github.com/redis/go-redis/v9"
)

// A finish vote is only honored within this window.
const finishVoteTTL = time.Hour

// FinishResult is the outcome of one finish call. Either the debate
// ended (with or without a winner) or this caller is the first voter
// and the other side's confirmation is awaited.
type FinishResult struct {
	Ended                bool
	Winner               string
	AwaitingConfirmation bool
}

// DebateService runs the active → ended state machine: message posting
// with turn flipping, and the two-phase mutual-agreement finish.
type DebateService struct {
	rdb   *redis.Client
	inbox *store.Inbox
}

func NewDebateService(rdb *redis.Client, inbox *store.Inbox) *DebateService {
	return &DebateService{rdb: rdb, inbox: inbox}
}

// Get loads one debate or store.ErrNotFound.
func (s *DebateService) Get(ctx context.Context, id string) (*models.Debate, error) {
	data, err := s.rdb.HGetAll(ctx, db.DebateKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch debate: %w", err)
	}
	if data["userA"] == "" {
		return nil, fmt.Errorf("debate %s: %w", id, store.ErrNotFound)
	}
	debate := debateFromHash(id, data)
	return &debate, nil
}

// ListForUser returns the user's debates with their latest message.
func (s *DebateService) ListForUser(ctx context.Context, user string) ([]models.DebateListing, error) {
	ids, err := s.rdb.LRange(ctx, db.DebatesKey(user), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list debates: %w", err)
	}
	listings := make([]models.DebateListing, 0, len(ids))
	for _, id := range ids {
		data, err := s.rdb.HGetAll(ctx, db.DebateKey(id)).Result()
		if err != nil {
			return nil, fmt.Errorf("list debates: %w", err)
		}
		if data["userA"] == "" {
			continue
		}
		listing := models.DebateListing{Debate: debateFromHash(id, data)}
		lastRaw, err := s.rdb.LRange(ctx, db.HistoryKey(id), -1, -1).Result()
		if err != nil {
			return nil, fmt.Errorf("list debates: %w", err)
		}
		if len(lastRaw) > 0 {
			var last models.Message
			if err := json.Unmarshal([]byte(lastRaw[0]), &last); err == nil {
				listing.LastMessage = &last
			}
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// PostMessage appends to an active debate and flips the turn to the
// other participant. Turn is not enforced on the sender.
func (s *DebateService) PostMessage(ctx context.Context, debateID, from, text string) error {
	if from == "" || text == "" {
		return fmt.Errorf("from and text are required: %w", ErrValidation)
	}
	debate, err := s.Get(ctx, debateID)
	if err != nil {
		return err
	}
	if debate.Status != models.DebateStatusActive {
		return fmt.Errorf("debate %s has ended: %w", debateID, ErrForbidden)
	}
	if !debate.HasParticipant(from) {
		return fmt.Errorf("%s is not a participant of debate %s: %w", from, debateID, ErrForbidden)
	}

	msg := models.Message{From: from, Text: text, Ts: time.Now().UnixMilli()}
	raw, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	other := debate.Other(from)
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, db.HistoryKey(debateID), raw)
		pipe.HSet(ctx, db.DebateKey(debateID), "turn", other)
		return nil
	})
	if err != nil {
		return fmt.Errorf("post message: %w", err)
	}

	s.inbox.Push(ctx, other, fmt.Sprintf(
		"💬 New message in debate «%s» (id: %s) from %s: %s",
		debate.Topic, debateID, from, text))
	return nil
}

// History returns the ordered message log. An unknown debate id yields
// an empty log, not an error.
func (s *DebateService) History(ctx context.Context, debateID string) ([]models.Message, error) {
	raw, err := s.rdb.LRange(ctx, db.HistoryKey(debateID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	messages := make([]models.Message, 0, len(raw))
	for _, item := range raw {
		var m models.Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// Finish records the caller's vote and resolves the rendezvous when
// both votes are in. The whole decision runs under WATCH on the debate,
// both votes, the history and both stats hashes: two racing finish
// calls serialize, and a message posted mid-tally aborts and retries
// the computation. The outcome is the same whichever participant's
// call arrives second.
func (s *DebateService) Finish(ctx context.Context, debateID, user string, wantWinner bool) (*FinishResult, error) {
	if user == "" {
		return nil, fmt.Errorf("user is required: %w", ErrValidation)
	}
	// Learn the participants first; everything is revalidated inside
	// the transaction.
	pre, err := s.Get(ctx, debateID)
	if err != nil {
		return nil, err
	}
	if !pre.HasParticipant(user) {
		return nil, fmt.Errorf("%s is not a participant of debate %s: %w", user, debateID, ErrForbidden)
	}

	var res FinishResult
	var notify func()

	txf := func(tx *redis.Tx) error {
		data, err := tx.HGetAll(ctx, db.DebateKey(debateID)).Result()
		if err != nil {
			return err
		}
		if data["userA"] == "" {
			return fmt.Errorf("debate %s: %w", debateID, store.ErrNotFound)
		}
		debate := debateFromHash(debateID, data)
		if debate.Status != models.DebateStatusActive {
			return fmt.Errorf("debate %s has ended: %w", debateID, ErrForbidden)
		}
		other := debate.Other(user)

		otherVote, err := tx.Get(ctx, db.FinishKey(debateID, other)).Result()
		if err == redis.Nil {
			otherVote = ""
		} else if err != nil {
			return err
		}

		vote := models.FinishWant
		if !wantWinner {
			vote = models.FinishNo
		}
		now := time.Now().UnixMilli()

		switch {
		case !wantWinner || otherVote == models.FinishNo:
			// Either side declining ends the debate with no winner.
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, db.FinishKey(debateID, user), vote, finishVoteTTL)
				pipe.HSet(ctx, db.DebateKey(debateID),
					"status", models.DebateStatusEnded,
					"endedAt", now)
				return nil
			})
			if err != nil {
				return err
			}
			res = FinishResult{Ended: true}
			notify = func() {
				s.inbox.Push(ctx, other, fmt.Sprintf(
					"🏁 %s ended the debate «%s» (id: %s). No winner was declared.",
					user, debate.Topic, debateID))
			}

		case otherVote == models.FinishWant:
			// Second vote in: settle.
			history, err := historyFromTx(ctx, tx, debateID)
			if err != nil {
				return err
			}
			winner, loser := ComputeWinner(history, debate.UserA, debate.UserB)
			winnerStats, err := readStats(ctx, tx, winner)
			if err != nil {
				return err
			}
			loserStats, err := readStats(ctx, tx, loser)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, db.FinishKey(debateID, user), vote, finishVoteTTL)
				pipe.HSet(ctx, db.DebateKey(debateID),
					"status", models.DebateStatusEnded,
					"winner", winner,
					"endedAt", now)
				queueSettlement(ctx, pipe, winner, loser, winnerStats, loserStats)
				return nil
			})
			if err != nil {
				return err
			}
			res = FinishResult{Ended: true, Winner: winner}
			notify = func() {
				s.inbox.Push(ctx, other, fmt.Sprintf(
					"🏆 The debate «%s» (id: %s) has ended. Winner: %s.",
					debate.Topic, debateID, winner))
			}

		default:
			// First vote: stay active and wait for the other side.
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, db.FinishKey(debateID, user), vote, finishVoteTTL)
				return nil
			})
			if err != nil {
				return err
			}
			res = FinishResult{AwaitingConfirmation: true}
			notify = func() {
				s.inbox.Push(ctx, other, fmt.Sprintf(
					"✅ %s proposed to finish the debate (id: %s) and declare a winner. Call finish to agree.",
					user, debateID))
			}
		}
		return nil
	}

	watchKeys := []string{
		db.DebateKey(debateID),
		db.FinishKey(debateID, pre.UserA),
		db.FinishKey(debateID, pre.UserB),
		db.HistoryKey(debateID),
		db.StatsKey(pre.UserA),
		db.StatsKey(pre.UserB),
	}
	if err := watchRetry(ctx, s.rdb, txf, watchKeys...); err != nil {
		return nil, err
	}
	if notify != nil {
		notify()
	}
	return &res, nil
}

// Summary returns the debate's summary text, empty when unset.
func (s *DebateService) Summary(ctx context.Context, debateID string) (string, error) {
	text, err := s.rdb.Get(ctx, db.SummaryKey(debateID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("fetch summary: %w", err)
	}
	return text, nil
}

func (s *DebateService) SetSummary(ctx context.Context, debateID, text string) error {
	if err := s.rdb.Set(ctx, db.SummaryKey(debateID), text, 0).Err(); err != nil {
		return fmt.Errorf("store summary: %w", err)
	}
	return nil
}

func historyFromTx(ctx context.Context, tx *redis.Tx, debateID string) ([]models.Message, error) {
	raw, err := tx.LRange(ctx, db.HistoryKey(debateID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	messages := make([]models.Message, 0, len(raw))
	for _, item := range raw {
		var m models.Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func debateFromHash(id string, data map[string]string) models.Debate {
	createdAt, _ := strconv.ParseInt(data["createdAt"], 10, 64)
	endedAt, _ := strconv.ParseInt(data["endedAt"], 10, 64)
	return models.Debate{
		ID:        id,
		UserA:     data["userA"],
		UserB:     data["userB"],
		Topic:     data["topic"],
		Status:    data["status"],
		Turn:      data["turn"],
		Winner:    data["winner"],
		CreatedAt: createdAt,
		EndedAt:   endedAt,
	}
}
