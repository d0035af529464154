package memory

import (
	"context"
	"errors"

	"pizzeria/internal/core/ports"

	"github.com/hashicorp/go-memdb"
)

var ErrNoTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over a shared Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork wraps a memdb write transaction. Begin blocks while another unit of work
// holds the write transaction.
type UnitOfWork struct {
	store *Store
	txn   *memdb.Txn
}

// Begin is a no-op when a transaction is already active.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.txn != nil {
		return nil
	}
	uow.txn = uow.store.db.Txn(true)
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.txn == nil {
		return ErrNoTransaction
	}
	uow.txn.Commit()
	uow.txn = nil
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.txn == nil {
		return ErrNoTransaction
	}
	uow.txn.Abort()
	uow.txn = nil
	return nil
}

// OrderRepository returns a repository bound to the active transaction, or a read-only
// repository over the last committed state when none is active.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	if uow.txn != nil {
		return &OrderRepository{txn: uow.txn, writable: true}
	}
	return &OrderRepository{txn: uow.store.db.Txn(false)}
}
