// Package services provides domain services of the pizzeria: business rules that operate
// on several domain values at once and do not belong to a single aggregate.
//
// The package includes:
//   - PricingEngine: computes the served amount of an order from its line items,
//     applying the pineapple rebate and the every-third-pizza-free rebate
package services
