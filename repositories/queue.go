package repositories

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"match-lab/domain"
	apperrors "match-lab/errors"
)

// QueueRepository is the durable waiting queue. Each waiting user owns
// exactly one entry key plus an index key for O(1) lookup by user. Enqueue is
// idempotent per user: a second enqueue replaces the previous entry and
// restarts the wait.
type QueueRepository struct {
	db             *badger.DB
	log            *slog.Logger
	priorityWeight int64
}

func NewQueueRepository(db *badger.DB, log *slog.Logger, priorityWeight int64) *QueueRepository {
	return &QueueRepository{db: db, log: log, priorityWeight: priorityWeight}
}

func (q *QueueRepository) Enqueue(entry domain.QueueEntry) error {
	value, err := encodeQueueEntry(entry)
	if err != nil {
		return fmt.Errorf("encode queue entry: %w", err)
	}

	return q.db.Update(func(txn *badger.Txn) error {
		if err := removeQueueEntry(txn, entry.UserID); err != nil && !errors.Is(err, apperrors.ErrEntryNotFound) {
			return err
		}
		entryKey := queueEntryKey(entry, q.priorityWeight)
		if err := txn.Set(entryKey, value); err != nil {
			return err
		}
		return txn.Set(queueUserKey(entry.UserID), entryKey)
	})
}

// RemoveUser deletes the user's entry and index key. It reports false without
// error when the user was not waiting, so cancellation is idempotent.
func (q *QueueRepository) RemoveUser(userID string) (bool, error) {
	removed := false
	err := q.db.Update(func(txn *badger.Txn) error {
		err := removeQueueEntry(txn, userID)
		if errors.Is(err, apperrors.ErrEntryNotFound) {
			return nil
		}
		if err == nil {
			removed = true
		}
		return err
	})
	return removed, err
}

// Peek returns up to n entries in serving order.
func (q *QueueRepository) Peek(n int) ([]domain.QueueEntry, error) {
	return q.scan(n)
}

// Snapshot returns every waiting entry in serving order. Drains operate on
// this copy; commits later detect entries that vanished in the meantime.
func (q *QueueRepository) Snapshot() ([]domain.QueueEntry, error) {
	return q.scan(0)
}

func (q *QueueRepository) scan(limit int) ([]domain.QueueEntry, error) {
	var entries []domain.QueueEntry
	err := q.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(queuePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(entries) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				entry, err := decodeQueueEntry(value)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan queue: %w", err)
	}
	return entries, nil
}

func (q *QueueRepository) Size() (int, error) {
	count := 0
	err := q.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(queuePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count queue: %w", err)
	}
	return count, nil
}

// Position returns the user's 1-based place in serving order, 0 when absent.
func (q *QueueRepository) Position(userID string) (int, error) {
	position := 0
	err := q.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		suffix := []byte(":" + userID)
		prefix := []byte(queuePrefix)
		index := 0
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			index++
			if bytes.HasSuffix(it.Item().Key(), suffix) {
				position = index
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan queue: %w", err)
	}
	return position, nil
}

// CommitMatch removes every participant's queue entry and persists the match
// record in one Badger transaction. If any participant already left the
// queue the transaction is rolled back with ErrRaceLost and no state changes
// at all, which closes the read-then-delete race against cancels and
// disconnect cleanup.
func (q *QueueRepository) CommitMatch(match domain.Match) error {
	value, err := encodeMatch(match)
	if err != nil {
		return fmt.Errorf("encode match: %w", err)
	}

	return q.db.Update(func(txn *badger.Txn) error {
		for _, userID := range match.Participants {
			if err := removeQueueEntry(txn, userID); err != nil {
				if errors.Is(err, apperrors.ErrEntryNotFound) {
					return fmt.Errorf("%w: %s", apperrors.ErrRaceLost, userID)
				}
				return err
			}
		}
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

// removeQueueEntry deletes the entry and index keys inside an open
// transaction. Returns ErrEntryNotFound when the user is not waiting.
func removeQueueEntry(txn *badger.Txn, userID string) error {
	indexKey := queueUserKey(userID)
	item, err := txn.Get(indexKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return apperrors.ErrEntryNotFound
	}
	if err != nil {
		return err
	}

	entryKey, err := item.ValueCopy(nil)
	if err != nil {
		return err
	}
	if err := txn.Delete(entryKey); err != nil {
		return err
	}
	return txn.Delete(indexKey)
}
