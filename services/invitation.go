package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"debatearena/db"
	"debatearena/models"
	"debatearena/store"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Pending invitations expire on their own; the recipient's pending list
// is pruned lazily on read.
const invitationTTL = 7 * 24 * time.Hour

// Optimistic transactions retry this many times before giving up.
const txRetries = 5

// InvitationService runs the pending → accepted | rejected state
// machine. Accept and reject are terminal: the invitation record is
// deleted, so a second resolve attempt finds nothing.
type InvitationService struct {
	rdb      *redis.Client
	profiles Profiles
	inbox    *store.Inbox
}

func NewInvitationService(rdb *redis.Client, profiles Profiles, inbox *store.Inbox) *InvitationService {
	return &InvitationService{rdb: rdb, profiles: profiles, inbox: inbox}
}

// Create opens an invitation from fromUser to toUser. Both profiles
// must exist, self-invitations are rejected and banned users may not
// invite.
func (s *InvitationService) Create(ctx context.Context, fromUser, toUser, topic string) (string, error) {
	if fromUser == "" || toUser == "" || topic == "" {
		return "", fmt.Errorf("fromUser, toUser and topic are required: %w", ErrValidation)
	}
	if fromUser == toUser {
		return "", fmt.Errorf("cannot invite yourself: %w", ErrValidation)
	}
	sender, err := s.profiles.Get(ctx, fromUser)
	if err != nil {
		return "", err
	}
	if sender.Status == models.UserStatusBanned {
		return "", fmt.Errorf("user %s is banned: %w", fromUser, ErrForbidden)
	}
	ok, err := s.profiles.Exists(ctx, toUser)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("user %s: %w", toUser, store.ErrNotFound)
	}

	id := uuid.NewString()
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, db.InvitationKey(id),
			"fromUser", fromUser,
			"toUser", toUser,
			"topic", topic,
			"createdAt", time.Now().UnixMilli())
		pipe.Expire(ctx, db.InvitationKey(id), invitationTTL)
		pipe.RPush(ctx, db.InvitationsKey(toUser), id)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("create invitation: %w", err)
	}

	s.inbox.Push(ctx, toUser, fmt.Sprintf(
		"📩 You have a new debate invitation from %s on «%s». Invitation id: %s",
		fromUser, topic, id))
	return id, nil
}

// ListPending returns the recipient's open invitations. Ids whose
// record expired or was resolved elsewhere are dropped from the list.
func (s *InvitationService) ListPending(ctx context.Context, user string) ([]models.Invitation, error) {
	ids, err := s.rdb.LRange(ctx, db.InvitationsKey(user), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	invitations := make([]models.Invitation, 0, len(ids))
	for _, id := range ids {
		data, err := s.rdb.HGetAll(ctx, db.InvitationKey(id)).Result()
		if err != nil {
			return nil, fmt.Errorf("list invitations: %w", err)
		}
		if data["fromUser"] == "" {
			// Stale entry, prune it.
			s.rdb.LRem(ctx, db.InvitationsKey(user), 0, id)
			continue
		}
		invitations = append(invitations, invitationFromHash(id, data))
	}
	return invitations, nil
}

// Accept turns the invitation into an active debate. The debate is
// created, registered under both participants and the invitation
// removed in a single MULTI/EXEC, so a racing resolve of the same id
// cannot produce two debates. The inviter moves first.
func (s *InvitationService) Accept(ctx context.Context, id string) (string, error) {
	var debateID string
	var inv models.Invitation

	txf := func(tx *redis.Tx) error {
		data, err := tx.HGetAll(ctx, db.InvitationKey(id)).Result()
		if err != nil {
			return err
		}
		if data["fromUser"] == "" {
			return fmt.Errorf("invitation %s: %w", id, store.ErrNotFound)
		}
		inv = invitationFromHash(id, data)
		debateID = uuid.NewString()

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, db.DebateKey(debateID),
				"userA", inv.FromUser,
				"userB", inv.ToUser,
				"topic", inv.Topic,
				"status", models.DebateStatusActive,
				"turn", inv.FromUser,
				"createdAt", time.Now().UnixMilli())
			pipe.RPush(ctx, db.DebatesKey(inv.FromUser), debateID)
			pipe.RPush(ctx, db.DebatesKey(inv.ToUser), debateID)
			pipe.Del(ctx, db.InvitationKey(id))
			pipe.LRem(ctx, db.InvitationsKey(inv.ToUser), 0, id)
			return nil
		})
		return err
	}

	if err := watchRetry(ctx, s.rdb, txf, db.InvitationKey(id)); err != nil {
		return "", err
	}

	s.inbox.Push(ctx, inv.FromUser, fmt.Sprintf(
		"✅ %s accepted your invitation! The debate on «%s» has begun. Debate id: %s",
		inv.ToUser, inv.Topic, debateID))
	return debateID, nil
}

// Reject removes the invitation with no successor.
func (s *InvitationService) Reject(ctx context.Context, id string) error {
	var inv models.Invitation

	txf := func(tx *redis.Tx) error {
		data, err := tx.HGetAll(ctx, db.InvitationKey(id)).Result()
		if err != nil {
			return err
		}
		if data["fromUser"] == "" {
			return fmt.Errorf("invitation %s: %w", id, store.ErrNotFound)
		}
		inv = invitationFromHash(id, data)

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, db.InvitationKey(id))
			pipe.LRem(ctx, db.InvitationsKey(inv.ToUser), 0, id)
			return nil
		})
		return err
	}

	if err := watchRetry(ctx, s.rdb, txf, db.InvitationKey(id)); err != nil {
		return err
	}

	s.inbox.Push(ctx, inv.FromUser, fmt.Sprintf(
		"❌ %s rejected your debate invitation on «%s».",
		inv.ToUser, inv.Topic))
	return nil
}

// RemoveAllFor wipes everything invitation-related for one user: the
// pending list with its records, and any invitations the user sent.
// Sent invitations carry no index, so those are found by scanning.
func (s *InvitationService) RemoveAllFor(ctx context.Context, user string) error {
	ids, err := s.rdb.LRange(ctx, db.InvitationsKey(user), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("purge invitations: %w", err)
	}
	for _, id := range ids {
		if err := s.rdb.Del(ctx, db.InvitationKey(id)).Err(); err != nil {
			return fmt.Errorf("purge invitations: %w", err)
		}
	}
	if err := s.rdb.Del(ctx, db.InvitationsKey(user)).Err(); err != nil {
		return fmt.Errorf("purge invitations: %w", err)
	}

	iter := s.rdb.Scan(ctx, 0, "invitation:*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := s.rdb.HGetAll(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("purge invitations: %w", err)
		}
		if data["fromUser"] != user {
			continue
		}
		id := key[len("invitation:"):]
		if _, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.LRem(ctx, db.InvitationsKey(data["toUser"]), 0, id)
			return nil
		}); err != nil {
			return fmt.Errorf("purge invitations: %w", err)
		}
	}
	return iter.Err()
}

// watchRetry runs an optimistic transaction, retrying on WATCH
// conflicts.
func watchRetry(ctx context.Context, rdb *redis.Client, txf func(tx *redis.Tx) error, keys ...string) error {
	var err error
	for i := 0; i < txRetries; i++ {
		err = rdb.Watch(ctx, txf, keys...)
		if err != redis.TxFailedErr {
			return err
		}
	}
	return err
}

func invitationFromHash(id string, data map[string]string) models.Invitation {
	createdAt, _ := strconv.ParseInt(data["createdAt"], 10, 64)
	return models.Invitation{
		ID:        id,
		FromUser:  data["fromUser"],
		ToUser:    data["toUser"],
		Topic:     data["topic"],
		CreatedAt: createdAt,
	}
}
