package repositories

import (
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// PresenceRepository tracks which users are online through TTL'd keys. A
// crashed process simply stops refreshing and its users age out of the set.
type PresenceRepository struct {
	db *badger.DB
}

func NewPresenceRepository(db *badger.DB) *PresenceRepository {
	return &PresenceRepository{db: db}
}

func (p *PresenceRepository) SetOnline(userID string, ttl time.Duration) error {
	return p.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(presenceKey(userID), []byte(time.Now().UTC().Format(time.RFC3339))).
			WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

func (p *PresenceRepository) SetOffline(userID string) error {
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(presenceKey(userID))
	})
}

func (p *PresenceRepository) OnlineUsers() ([]string, error) {
	var users []string
	err := p.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(presencePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			users = append(users, strings.TrimPrefix(key, presencePrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan presence: %w", err)
	}
	return users, nil
}
