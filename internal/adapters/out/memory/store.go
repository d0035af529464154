// Package memory provides an in-process order record store backed by
// github.com/hashicorp/go-memdb, selected with STORE_DRIVER=memory.
//
// Write transactions are serialized by memdb itself, so a unit of work that has
// called Begin owns the store until Commit or Rollback. Read-only access outside a
// unit of work sees the last committed snapshot.
package memory

import (
	"time"

	"pizzeria/internal/core/domain/model/order"

	"github.com/hashicorp/go-memdb"
	"github.com/shopspring/decimal"
)

const (
	ordersTable = "orders"

	indexID             = "id"
	indexStatus         = "status"
	indexStatusCustomer = "status_customer"
)

// orderRecord is the stored form of an order. Records are never mutated after
// insertion; updates insert a replacement.
type orderRecord struct {
	ID         string
	CustomerID string
	Status     int
	Amount     decimal.Decimal
	PreparedBy string
	CreatedAt  time.Time
	Items      []order.LineItem
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			ordersTable: {
				Name: ordersTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexStatus: {
						Name:    indexStatus,
						Indexer: &memdb.IntFieldIndex{Field: "Status"},
					},
					indexStatusCustomer: {
						Name: indexStatusCustomer,
						Indexer: &memdb.CompoundIndex{
							Indexes: []memdb.Indexer{
								&memdb.IntFieldIndex{Field: "Status"},
								&memdb.StringFieldIndex{Field: "CustomerID"},
							},
						},
					},
				},
			},
		},
	}
}

// Store holds the order table. It is safe for concurrent use.
type Store struct {
	db *memdb.MemDB
}

func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Len returns the number of stored orders.
func (s *Store) Len() (int, error) {
	it, err := s.db.Txn(false).Get(ordersTable, indexID)
	if err != nil {
		return 0, err
	}
	n := 0
	for raw := it.Next(); raw != nil; raw = it.Next() {
		n++
	}
	return n, nil
}
