package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/hashicorp/go-memdb"
)

var ErrReadOnly = errors.New("repository is read-only outside a transaction")

// OrderRepository implements ports.OrderRepository on a memdb transaction.
type OrderRepository struct {
	txn      *memdb.Txn
	writable bool
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.writable {
		return ErrReadOnly
	}
	if aggregate.IsPersisted() {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s is already persisted", aggregate.ID()))
	}
	if err := aggregate.AssignID(kernel.NewUUID()); err != nil {
		return err
	}
	return r.insert(aggregate)
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	existing, err := r.txn.First(ordersTable, indexID, aggregate.ID().String())
	if err != nil {
		return err
	}
	if existing == nil {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	return r.insert(aggregate)
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	raw, err := r.txn.First(ordersTable, indexID, id.String())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return toDomain(raw.(*orderRecord))
}

func (r *OrderRepository) GetAllByStatusAndCustomer(
	_ context.Context,
	status order.Status,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	it, err := r.txn.Get(ordersTable, indexStatusCustomer, int(status), customerID.String())
	if err != nil {
		return nil, err
	}
	return collect(it)
}

func (r *OrderRepository) GetFirstInPlacedStatus(ctx context.Context) (*order.Order, error) {
	placed, err := r.GetAllInStatus(ctx, order.Placed)
	if err != nil {
		return nil, err
	}
	if len(placed) == 0 {
		return nil, errs.NewObjectNotFoundError("status", order.Placed)
	}
	return placed[0], nil
}

func (r *OrderRepository) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	it, err := r.txn.Get(ordersTable, indexStatus, int(status))
	if err != nil {
		return nil, err
	}
	return collect(it)
}

func (r *OrderRepository) insert(aggregate *order.Order) error {
	if !r.writable {
		return ErrReadOnly
	}
	return r.txn.Insert(ordersTable, toRecord(aggregate))
}

// collect materializes the iterator oldest first, ties broken by id.
func collect(it memdb.ResultIterator) ([]*order.Order, error) {
	var records []*orderRecord
	for raw := it.Next(); raw != nil; raw = it.Next() {
		records = append(records, raw.(*orderRecord))
	}
	slices.SortFunc(records, func(a, b *orderRecord) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	orders := make([]*order.Order, 0, len(records))
	for _, rec := range records {
		o, err := toDomain(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func toRecord(o *order.Order) *orderRecord {
	rec := &orderRecord{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Status:     int(o.Status()),
		Amount:     o.Amount(),
		CreatedAt:  o.CreatedAt(),
		Items:      o.Items(),
	}
	if o.PreparedBy() != nil {
		rec.PreparedBy = o.PreparedBy().String()
	}
	return rec
}

func toDomain(rec *orderRecord) (*order.Order, error) {
	id, err := kernel.UUIDFromString(rec.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromString(rec.CustomerID)
	if err != nil {
		return nil, err
	}
	var preparedBy *kernel.UUID
	if rec.PreparedBy != "" {
		staff, err := kernel.UUIDFromString(rec.PreparedBy)
		if err != nil {
			return nil, err
		}
		preparedBy = &staff
	}
	return order.RestoreOrder(id, customerID, rec.Items, order.Status(rec.Status), rec.Amount, preparedBy, rec.CreatedAt)
}
