// Package order provides the Order aggregate of the pizzeria: a customer's cart that is
// confirmed, prepared by kitchen staff and finally served with a computed amount.
//
// The package includes:
//   - Order: the aggregate root holding identity, owner, line items and lifecycle
//   - LineItem: an immutable priced pizza with its toppings
//   - Status: the state machine enforcing Draft -> Placed -> Ongoing -> Served
//
// Key business rules:
//   - Line items can be added only while the order is a Draft
//   - An empty Draft cannot be placed
//   - Only an Ongoing order has a preparer, and it keeps it once Served
//   - The amount is set exactly once, when the order is served
//   - Transitions never go backwards or skip a state; Served is final
//
// Uniqueness of Draft and Placed orders per customer spans several aggregates and is
// enforced by the application layer, not here.
package order
