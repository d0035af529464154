// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The composite indexes serve the per-customer status lookups and the oldest-first
// kitchen queue.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_status_customer,priority:2"`
	Status     int             `gorm:"not null;index:idx_orders_status_customer,priority:1;index:idx_orders_status_created,priority:1"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	PreparedBy *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt  time.Time       `gorm:"not null;index:idx_orders_status_created,priority:2"`
	Items      []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one pizza of an order. Position keeps the order in which items were
// added; rows are only ever inserted.
type LineItemDTO struct {
	OrderID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position int             `gorm:"primaryKey;autoIncrement:false"`
	PizzaID  uuid.UUID       `gorm:"type:uuid;not null"`
	Name     string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Toppings pq.StringArray  `gorm:"type:text[];not null;default:'{}'"`
}

func (LineItemDTO) TableName() string {
	return "order_items"
}

// Migrate creates or updates the order tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&OrderDTO{}, &LineItemDTO{})
}

func fromDomain(o *order.Order) OrderDTO {
	var preparedBy *uuid.UUID
	if id := o.PreparedBy(); id != nil {
		raw := id.Bytes()
		preparedBy = &raw
	}

	items := o.Items()
	dto := OrderDTO{
		ID:         o.ID().Bytes(),
		CustomerID: o.CustomerID().Bytes(),
		Status:     int(o.Status()),
		Amount:     o.Amount(),
		PreparedBy: preparedBy,
		CreatedAt:  o.CreatedAt(),
		Items:      make([]LineItemDTO, 0, len(items)),
	}
	for pos, item := range items {
		toppings := item.Toppings()
		if toppings == nil {
			toppings = []string{}
		}
		dto.Items = append(dto.Items, LineItemDTO{
			OrderID:  dto.ID,
			Position: pos,
			PizzaID:  item.PizzaID().Bytes(),
			Name:     item.Name(),
			Price:    item.Price(),
			Toppings: toppings,
		})
	}
	return dto
}

// toDomain rebuilds the aggregate with RestoreOrder. dto.Items must be sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var preparedBy *kernel.UUID
	if dto.PreparedBy != nil {
		staff, staffErr := kernel.UUIDFromBytes((*dto.PreparedBy)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		preparedBy = &staff
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		pizzaID, idErr := kernel.UUIDFromBytes(itemDTO.PizzaID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewLineItem(pizzaID, itemDTO.Name, itemDTO.Price, itemDTO.Toppings...)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, items, order.Status(dto.Status), dto.Amount, preparedBy, dto.CreatedAt)
}
