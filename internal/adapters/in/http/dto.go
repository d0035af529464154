package http

import (
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/order"
)

// AddItemRequest is one pizza chosen from the menu. Price is a decimal string such as "12.50".
type AddItemRequest struct {
	PizzaID  string   `json:"pizza_id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Toppings []string `json:"toppings"`
}

type LineItemResponse struct {
	PizzaID  string   `json:"pizza_id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Toppings []string `json:"toppings"`
}

type OrderResponse struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	Status     string             `json:"status"`
	Items      []LineItemResponse `json:"items"`
	Amount     string             `json:"amount"`
	PreparedBy *string            `json:"prepared_by,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

type ReceiptResponse struct {
	Order           OrderResponse `json:"order"`
	Base            string        `json:"base"`
	PineappleRebate string        `json:"pineapple_rebate"`
	BundleRebate    string        `json:"bundle_rebate"`
	Total           string        `json:"total"`
}

type PreparationResponse struct {
	OrderID    string             `json:"order_id"`
	CustomerID string             `json:"customer_id"`
	Items      []LineItemResponse `json:"items"`
	CreatedAt  time.Time          `json:"created_at"`
}

type QueueEntryResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// OverviewEntryResponse is one order in preparation and the staff member on it.
type OverviewEntryResponse struct {
	StaffID    string    `json:"staff_id"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func toItemsResponse(items []order.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, item := range items {
		toppings := item.Toppings()
		if toppings == nil {
			toppings = []string{}
		}
		out[i] = LineItemResponse{
			PizzaID:  item.PizzaID().String(),
			Name:     item.Name(),
			Price:    item.Price().StringFixed(2),
			Toppings: toppings,
		}
	}
	return out
}

func toOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Status:     o.Status().String(),
		Items:      toItemsResponse(o.Items()),
		Amount:     o.Amount().StringFixed(2),
		CreatedAt:  o.CreatedAt(),
	}
	if staff := o.PreparedBy(); staff != nil {
		id := staff.String()
		resp.PreparedBy = &id
	}
	return resp
}

func toReceiptResponse(r commands.Receipt) ReceiptResponse {
	return ReceiptResponse{
		Order:           toOrderResponse(r.Order),
		Base:            r.Quote.Base.StringFixed(2),
		PineappleRebate: r.Quote.PineappleRebate.StringFixed(2),
		BundleRebate:    r.Quote.BundleRebate.StringFixed(2),
		Total:           r.Quote.Total.StringFixed(2),
	}
}

func toPreparationResponse(p queries.GetCurrentPreparationQueryResponse) PreparationResponse {
	return PreparationResponse{
		OrderID:    p.OrderID.String(),
		CustomerID: p.CustomerID.String(),
		Items:      toItemsResponse(p.Items),
		CreatedAt:  p.CreatedAt,
	}
}

func toQueueResponse(queue []queries.GetPlacedOrdersQueryResponse) []QueueEntryResponse {
	out := make([]QueueEntryResponse, len(queue))
	for i, entry := range queue {
		out[i] = QueueEntryResponse{
			ID:         entry.ID.String(),
			CustomerID: entry.CustomerID.String(),
			ItemCount:  entry.ItemCount,
			CreatedAt:  entry.CreatedAt,
		}
	}
	return out
}

func toOverviewResponse(overview []queries.GetKitchenOverviewQueryResponse) []OverviewEntryResponse {
	out := make([]OverviewEntryResponse, len(overview))
	for i, entry := range overview {
		out[i] = OverviewEntryResponse{
			StaffID:    entry.StaffID.String(),
			OrderID:    entry.OrderID.String(),
			CustomerID: entry.CustomerID.String(),
			ItemCount:  entry.ItemCount,
			CreatedAt:  entry.CreatedAt,
		}
	}
	return out
}
