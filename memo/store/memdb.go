package store

import (
	memdb "github.com/hashicorp/go-memdb"

	"github.com/lazyworks/memoseq/shared/helper"
)

const (
	memdbTable = "result"
	memdbIndex = "id"
)

type record struct {
	Key   string
	Value any
}

var _ Store[string, any] = &MemDB[any]{}

// MemDB keeps results in a go-memdb table keyed by the string form of the
// key, one row per entry, with transactional insert semantics. Heavier
// than Map; useful when results should be inspectable through memdb
// transactions alongside other tables.
type MemDB[V any] struct {
	db *memdb.MemDB
}

func NewMemDB[V any]() (*MemDB[V], error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memdbTable: {
				Name: memdbTable,
				Indexes: map[string]*memdb.IndexSchema{
					memdbIndex: {
						Name:    memdbIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, err
	}
	return &MemDB[V]{db: db}, nil
}

func (m *MemDB[V]) Get(key string) (V, bool, error) {
	var zero V

	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(memdbTable, memdbIndex, key)
	if err != nil || raw == nil {
		return zero, false, err
	}

	rec, err := helper.GetTypedValueOf[record](func() (any, error) {
		return raw, nil
	})
	if err != nil {
		return zero, false, err
	}
	val, err := helper.GetTypedValueOf[V](func() (any, error) {
		return rec.Value, nil
	})
	if err != nil {
		return zero, false, err
	}
	return val, true, nil
}

func (m *MemDB[V]) Set(key string, value V) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(memdbTable, record{Key: key, Value: value}); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// Len is unknown for memdb without a full table scan.
func (m *MemDB[V]) Len() int {
	return -1
}
