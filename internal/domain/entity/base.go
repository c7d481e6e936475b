// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Base holds the bookkeeping fields every persisted object shares.
type Base struct {
	ID         int64     // Database id, zero until the object is saved.
	Deleted    bool      // Soft-delete flag. Deleted objects stay in the database.
	Created    time.Time // Set once on insert.
	LastUpdate time.Time // Set on every write that changed the object.
}

// GetBase gives generic code access to the embedded bookkeeping fields.
func (b *Base) GetBase() *Base {
	return b
}

// Object is implemented by every entity that embeds Base.
type Object interface {
	GetBase() *Base
}

// IDPtr returns a pointer to a copy of id, or nil for zero.
func IDPtr(id int64) *int64 {
	if id == 0 {
		return nil
	}

	return &id
}
