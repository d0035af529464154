// Package customer models the pizzeria user as supplied by the identity collaborator.
//
// The core never creates, stores or authenticates users; it receives a Customer with
// every call that acts on behalf of someone and trusts it. The same type represents
// kitchen staff, distinguished by the PIZZA_MAKER role.
package customer
