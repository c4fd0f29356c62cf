package repositories

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"match-lab/domain"
	apperrors "match-lab/errors"
)

// MatchRepository persists match records and a per-user index for history
// lookups. Status changes go through domain.Match.Transition so terminal
// matches stay frozen.
type MatchRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMatchRepository(db *badger.DB, log *slog.Logger) *MatchRepository {
	return &MatchRepository{db: db, log: log}
}

func (m *MatchRepository) SaveMatch(match domain.Match) error {
	value, err := encodeMatch(match)
	if err != nil {
		return fmt.Errorf("encode match: %w", err)
	}
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(matchKey(match.ID), value); err != nil {
			return err
		}
		for _, userID := range match.Participants {
			if err := txn.Set(matchUserKey(userID, match.ID), []byte(match.ID)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (m *MatchRepository) FindMatchByID(id string) (domain.Match, error) {
	var match domain.Match
	err := m.db.View(func(txn *badger.Txn) error {
		found, err := getMatch(txn, id)
		if err != nil {
			return err
		}
		match = found
		return nil
	})
	return match, err
}

// FindMatchesByUser resolves the user's index keys into match records,
// newest first.
func (m *MatchRepository) FindMatchesByUser(userID string) ([]domain.Match, error) {
	var matches []domain.Match
	err := m.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(matchUserPrefix + userID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			matchID, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			match, err := getMatch(txn, string(matchID))
			if err != nil {
				// Index keys may briefly outlive a purged record.
				if errors.Is(err, apperrors.ErrMatchNotFound) {
					continue
				}
				return err
			}
			matches = append(matches, match)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan matches for user %s: %w", userID, err)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return matches, nil
}

// UpdateStatus applies a validated status transition and returns the updated
// record.
func (m *MatchRepository) UpdateStatus(id string, to domain.MatchStatus) (domain.Match, error) {
	var updated domain.Match
	err := m.db.Update(func(txn *badger.Txn) error {
		match, err := getMatch(txn, id)
		if err != nil {
			return err
		}
		if err := match.Transition(to); err != nil {
			return err
		}
		value, err := encodeMatch(match)
		if err != nil {
			return err
		}
		if err := txn.Set(matchKey(id), value); err != nil {
			return err
		}
		updated = match
		return nil
	})
	return updated, err
}

// FindRecentMatches lists up to limit match records, newest first. Used by
// the operator tooling.
func (m *MatchRepository) FindRecentMatches(limit int) ([]domain.Match, error) {
	var matches []domain.Match
	err := m.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(matchPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				match, err := decodeMatch(value)
				if err != nil {
					return err
				}
				matches = append(matches, match)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan matches: %w", err)
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (m *MatchRepository) FindPendingOlderThan(cutoff time.Time) ([]domain.Match, error) {
	var stale []domain.Match
	err := m.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(matchPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				match, err := decodeMatch(value)
				if err != nil {
					return err
				}
				if match.Status == domain.MatchPending && match.CreatedAt.Before(cutoff) {
					stale = append(stale, match)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan pending matches: %w", err)
	}
	return stale, nil
}

func getMatch(txn *badger.Txn, id string) (domain.Match, error) {
	item, err := txn.Get(matchKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Match{}, apperrors.ErrMatchNotFound
	}
	if err != nil {
		return domain.Match{}, err
	}
	var match domain.Match
	err = item.Value(func(value []byte) error {
		decoded, err := decodeMatch(value)
		if err != nil {
			return err
		}
		match = decoded
		return nil
	})
	return match, err
}
