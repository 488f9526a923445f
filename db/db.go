package db

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"dbchat/models"
)

// DB is the embedded audit store. It keeps a record of guard decisions and
// executed queries; it never stores conversation turns, which stay entirely
// request-scoped.
type DB struct {
	badgerDB *badger.DB
}

func New(dbPath string) (*DB, error) {
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Disable badger logging for cleaner output

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{badgerDB: badgerDB}, nil
}

// NewInMemory opens a throwaway in-memory store, used in tests.
func NewInMemory() (*DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{badgerDB: badgerDB}, nil
}

func (d *DB) Close() error {
	return d.badgerDB.Close()
}

func (d *DB) StoreQueryRecord(record models.QueryRecord) error {
	return d.badgerDB.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("query:%d:%s", time.Now().UnixNano(), record.ID))

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}

		return txn.Set(key, data)
	})
}

// ListQueryRecords returns up to limit audit records, newest first.
func (d *DB) ListQueryRecords(limit int) ([]models.QueryRecord, error) {
	var records []models.QueryRecord

	err := d.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte("query:")
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var record models.QueryRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}
