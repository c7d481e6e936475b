package entity

import (
	"time"

	"projectforge/internal/domain/candh"
)

// EntityOpType is the operation a history master records.
type EntityOpType string

const (
	EntityOpInsert        EntityOpType = "Insert"
	EntityOpUpdate        EntityOpType = "Update"
	EntityOpDelete        EntityOpType = "Delete"
	EntityOpUndelete      EntityOpType = "Undelete"
	EntityOpMarkAsDeleted EntityOpType = "MarkAsDeleted"
)

// PropertyOpType is the operation on a single property.
type PropertyOpType = candh.OpType

// HistoryMaster is one recorded operation on one entity.
type HistoryMaster struct {
	ID           int64
	EntityName   string
	EntityID     int64
	EntityOpType EntityOpType
	ModifiedBy   string // User id as decimal string, or "anon".
	ModifiedAt   time.Time
	Attributes   []HistoryAttr
	DiffEntries  []DiffEntry // Attributes folded for display.
}

// HistoryAttr is one stored property value of a master. Rows written by older
// versions store new value, old value and op type as three rows suffixed with
// ":nv", ":ov" and ":op".
type HistoryAttr struct {
	ID                int64
	MasterID          int64
	PropertyName      string
	PropertyTypeClass string
	Value             *string
	OldValue          *string
	OpType            PropertyOpType
}

// DiffEntry is the display form of one property change.
type DiffEntry struct {
	PropertyName string
	PropertyType string
	NewValue     *string
	OldValue     *string
	OpType       PropertyOpType
}

// AttrFromDiff converts a diff produced while copying into a storable attribute.
func AttrFromDiff(d candh.Diff) HistoryAttr {
	return HistoryAttr{
		PropertyName:      d.Property,
		PropertyTypeClass: d.Type,
		Value:             d.NewValue,
		OldValue:          d.OldValue,
		OpType:            d.Op,
	}
}

// DisplayHistoryEntry is one flattened row for history views and exports.
type DisplayHistoryEntry struct {
	MasterID       int64
	EntityName     string
	EntityID       int64
	EntityOpType   EntityOpType
	ModifiedAt     time.Time
	ModifiedBy     string
	ModifiedByName string
	PropertyName   string
	PropertyType   string
	OldValue       string
	NewValue       string
	OpType         PropertyOpType
}
