// Package services provides domain services that orchestrate business
// operations spanning multiple aggregates of the order workflow.
//
// The package includes:
//   - FolioGenerator: produces candidate folios for newly created orders
//
// Domain services hold logic that does not naturally belong to a single
// aggregate root, following Domain-Driven Design principles.
package services
