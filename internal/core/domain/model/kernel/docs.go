// Package kernel holds the shared value objects of the pizzeria domain model.
//
// UUID identifies orders, customers, staff members and catalog pizzas. Its zero value
// is invalid: an order that has not been persisted yet carries the zero UUID until the
// order record store assigns one.
package kernel
