// Package order contains the workflow subject of the whole system: the Order
// aggregate, its line items, the date-stamped folio identifier, and payment
// attempts recorded against an order.
//
// An Order is created by checkout in its process's initial state and is only
// ever advanced, never deleted. The current-state pointer is moved exclusively
// through the transition executor; this package enforces the structural
// invariants (state belongs to the order's process, money is non-negative)
// while the executor owns the audit trail.
package order
