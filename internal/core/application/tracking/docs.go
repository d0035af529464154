// Package tracking holds the process-wide, in-memory state shared by the order
// lifecycle handlers: the index of orders currently being prepared and the
// per-customer locks serializing cart operations.
//
// Nothing here is persisted or authoritative. The order repository remains the source
// of truth and the tracker is reconciled against it lazily and periodically.
package tracking
