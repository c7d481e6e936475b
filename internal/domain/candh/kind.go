// Package candh copies the values of a transient object onto its persisted
// counterpart and records every historized property change on the way.
//
// Entities describe their properties once through a Descriptor table. Each
// property carries a Kind resolved when the table is built; Copy switches on it
// instead of asking a chain of handlers.
package candh

// Kind selects the handler used for a property.
type Kind int

const (
	KindUnsupported Kind = iota
	KindScalar
	KindString
	KindEnum
	KindDate
	KindTimestamp
	KindDecimal
	KindCollection
	KindEntity
)

var kindNames = map[Kind]string{
	KindUnsupported: "unsupported",
	KindScalar:      "scalar",
	KindString:      "string",
	KindEnum:        "enum",
	KindDate:        "date",
	KindTimestamp:   "timestamp",
	KindDecimal:     "decimal",
	KindCollection:  "collection",
	KindEntity:      "entity",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Status is the outcome of a copy.
type Status int

const (
	// StatusNone means source and destination were already equal.
	StatusNone Status = iota
	// StatusMinor means only properties excluded from history changed.
	StatusMinor
	// StatusMajor means at least one historized property changed.
	StatusMajor
)

func (s Status) String() string {
	switch s {
	case StatusMinor:
		return "MINOR"
	case StatusMajor:
		return "MAJOR"
	default:
		return "NONE"
	}
}

// Combine returns the stronger of both states.
func (s Status) Combine(other Status) Status {
	return max(s, other)
}

// OpType is the per-property operation of a diff.
type OpType string

const (
	OpInsert    OpType = "Insert"
	OpUpdate    OpType = "Update"
	OpDelete    OpType = "Delete"
	OpUndefined OpType = "Undefined"
)

// ParseOpType accepts the names written by current and legacy history rows.
func ParseOpType(s string) OpType {
	switch s {
	case "Insert", "INSERT":
		return OpInsert
	case "Update", "UPDATE":
		return OpUpdate
	case "Delete", "DELETE":
		return OpDelete
	default:
		return OpUndefined
	}
}

// Diff is one changed property.
type Diff struct {
	Property string
	Type     string
	OldValue *string
	NewValue *string
	Op       OpType
}

func opFor(oldValue, newValue *string) OpType {
	switch {
	case oldValue == nil && newValue != nil:
		return OpInsert
	case oldValue != nil && newValue == nil:
		return OpDelete
	default:
		return OpUpdate
	}
}
