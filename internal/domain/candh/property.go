package candh

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Property describes one copyable field of an entity type.
type Property struct {
	Name       string
	TypeName   string
	Kind       Kind
	NoHistory  bool
	AutoUpdate bool

	// value returns the comparable form of the field for the value kinds and
	// for references. present is false for nil pointers.
	value func(obj any) (canon any, present bool)
	// assign copies the field from src to dest.
	assign func(src, dest any)
	// detach resets a member taken over from a submitted owned collection.
	detach func(member any)

	coll   collectionOps
	nested nestedOps
}

type scalar interface {
	~int | ~int16 | ~int32 | ~int64 | ~float64 | ~bool
}

// Option adjusts a property while the table is built.
type Option func(*Property)

// NoHistory copies the property but keeps it out of the history.
func NoHistory() Option {
	return func(p *Property) { p.NoHistory = true }
}

// AutoUpdate lets Copy recurse into matched members or the referenced entity
// instead of comparing identity only.
func AutoUpdate() Option {
	return func(p *Property) { p.AutoUpdate = true }
}

// Detach resets the members Copy adds to an owned collection, typically their
// id and bookkeeping fields, so that they are stored as new rows.
func Detach[E any](reset func(*E)) Option {
	return func(p *Property) {
		p.detach = func(member any) { reset(member.(*E)) }
	}
}

// Descriptor is the property table of one entity type.
type Descriptor struct {
	EntityName string
	ID         func(obj any) int64
	Properties []Property
}

// NewDescriptor builds the table of entity type T.
func NewDescriptor[T any](entityName string, id func(*T) int64, props ...Property) *Descriptor {
	return &Descriptor{
		EntityName: entityName,
		ID:         func(obj any) int64 { return id(obj.(*T)) },
		Properties: props,
	}
}

// Property looks a property up by name.
func (d *Descriptor) Property(name string) (*Property, bool) {
	for i := range d.Properties {
		if d.Properties[i].Name == name {
			return &d.Properties[i], true
		}
	}

	return nil, false
}

// DetachMembers resets all members of the owned collections of obj, as
// required before obj is inserted.
func (d *Descriptor) DetachMembers(obj any) {
	for i := range d.Properties {
		p := &d.Properties[i]
		if p.coll != nil && p.detach != nil {
			p.coll.detachAll(p, obj)
		}
	}
}

// HistorizedNames lists the properties that produce history entries.
func (d *Descriptor) HistorizedNames() []string {
	names := make([]string, 0, len(d.Properties))
	for _, p := range d.Properties {
		if !p.NoHistory {
			names = append(names, p.Name)
		}
	}

	return names
}

func build(name, typeName string, kind Kind, opts []Option) Property {
	p := Property{Name: name, TypeName: typeName, Kind: kind}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

func deref[V any](v *V) (any, bool) {
	if v == nil {
		return nil, false
	}

	return *v, true
}

// String is a non-nullable text field.
func String[T any](name string, get func(*T) string, set func(*T, string), opts ...Option) Property {
	p := build(name, "string", KindString, opts)
	p.value = func(obj any) (any, bool) { return get(obj.(*T)), true }
	p.assign = func(src, dest any) { set(dest.(*T), get(src.(*T))) }

	return p
}

// OptString is a nullable text field.
func OptString[T any](name string, get func(*T) *string, set func(*T, *string), opts ...Option) Property {
	p := build(name, "string", KindString, opts)
	p.value = func(obj any) (any, bool) { return deref(get(obj.(*T))) }
	p.assign = func(src, dest any) { set(dest.(*T), clonePtr(get(src.(*T)))) }

	return p
}

// Scalar is a comparable value such as a number or a flag.
func Scalar[T any, V scalar](name, typeName string, get func(*T) V, set func(*T, V), opts ...Option) Property {
	p := build(name, typeName, KindScalar, opts)
	p.value = func(obj any) (any, bool) { return get(obj.(*T)), true }
	p.assign = func(src, dest any) { set(dest.(*T), get(src.(*T))) }

	return p
}

// OptScalar is a nullable comparable value.
func OptScalar[T any, V scalar](name, typeName string, get func(*T) *V, set func(*T, *V), opts ...Option) Property {
	p := build(name, typeName, KindScalar, opts)
	p.value = func(obj any) (any, bool) { return deref(get(obj.(*T))) }
	p.assign = func(src, dest any) { set(dest.(*T), clonePtr(get(src.(*T)))) }

	return p
}

// Enum is a string-backed enumeration.
func Enum[T any, E ~string](name, typeName string, get func(*T) E, set func(*T, E), opts ...Option) Property {
	p := build(name, typeName, KindEnum, opts)
	p.value = func(obj any) (any, bool) {
		v := get(obj.(*T))
		if v == "" {
			return nil, false
		}

		return string(v), true
	}
	p.assign = func(src, dest any) { set(dest.(*T), get(src.(*T))) }

	return p
}

// Date is a calendar day; the time of day is ignored.
func Date[T any](name string, get func(*T) time.Time, set func(*T, time.Time), opts ...Option) Property {
	p := build(name, "date", KindDate, opts)
	p.value = func(obj any) (any, bool) {
		v := get(obj.(*T))
		if v.IsZero() {
			return nil, false
		}

		return v, true
	}
	p.assign = func(src, dest any) { set(dest.(*T), get(src.(*T))) }

	return p
}

// OptDate is a nullable calendar day.
func OptDate[T any](name string, get func(*T) *time.Time, set func(*T, *time.Time), opts ...Option) Property {
	p := build(name, "date", KindDate, opts)
	p.value = func(obj any) (any, bool) { return deref(get(obj.(*T))) }
	p.assign = func(src, dest any) { set(dest.(*T), clonePtr(get(src.(*T)))) }

	return p
}

// OptTimestamp is a nullable point in time compared with millisecond precision.
func OptTimestamp[T any](name string, get func(*T) *time.Time, set func(*T, *time.Time), opts ...Option) Property {
	p := build(name, "timestamp", KindTimestamp, opts)
	p.value = func(obj any) (any, bool) { return deref(get(obj.(*T))) }
	p.assign = func(src, dest any) { set(dest.(*T), clonePtr(get(src.(*T)))) }

	return p
}

// Decimal is compared by value, so 0.19000 equals 0.19.
func Decimal[T any](name string, get func(*T) decimal.Decimal, set func(*T, decimal.Decimal), opts ...Option) Property {
	p := build(name, "decimal", KindDecimal, opts)
	p.value = func(obj any) (any, bool) { return get(obj.(*T)), true }
	p.assign = func(src, dest any) { set(dest.(*T), get(src.(*T))) }

	return p
}

// OptDecimal is a nullable decimal.
func OptDecimal[T any](name string, get func(*T) *decimal.Decimal, set func(*T, *decimal.Decimal), opts ...Option) Property {
	p := build(name, "decimal", KindDecimal, opts)
	p.value = func(obj any) (any, bool) { return deref(get(obj.(*T))) }
	p.assign = func(src, dest any) { set(dest.(*T), clonePtr(get(src.(*T)))) }

	return p
}

// Ref is a reference to another entity held by id. Only the identity is compared.
func Ref[T any](name, typeName string, get func(*T) *int64, set func(*T, *int64), opts ...Option) Property {
	p := build(name, typeName, KindEntity, opts)
	p.value = func(obj any) (any, bool) { return deref(get(obj.(*T))) }
	p.assign = func(src, dest any) { set(dest.(*T), clonePtr(get(src.(*T)))) }

	return p
}

// Nested is an entity embedded by pointer. With AutoUpdate and equal ids the
// nested object is copied property by property.
func Nested[T, E any](name, typeName string, get func(*T) *E, set func(*T, *E), elem *Descriptor, opts ...Option) Property {
	p := build(name, typeName, KindEntity, opts)
	p.value = func(obj any) (any, bool) {
		e := get(obj.(*T))
		if e == nil {
			return nil, false
		}

		return elem.ID(e), true
	}
	p.assign = func(src, dest any) { set(dest.(*T), get(src.(*T))) }
	p.nested = nestedOps{
		elem: elem,
		get: func(obj any) (any, bool) {
			e := get(obj.(*T))

			return e, e != nil
		},
	}

	return p
}

// Refs is a to-many association held as ids.
func Refs[T any](name, typeName string, get func(*T) []int64, set func(*T, []int64), opts ...Option) Property {
	p := build(name, typeName, KindCollection, opts)
	p.coll = &idCollection[T]{get: get, set: set}

	return p
}

// Children is an owned to-many association. Members are matched by key.
func Children[T, E any](name, typeName string, get func(*T) []*E, set func(*T, []*E), key func(*E) string, elem *Descriptor, opts ...Option) Property {
	p := build(name, typeName, KindCollection, opts)
	p.coll = &childCollection[T, E]{get: get, set: set, key: key, elem: elem}

	return p
}

// Unsupported registers a field Copy cannot compare. It is logged and skipped.
func Unsupported(name, typeName string, opts ...Option) Property {
	return build(name, typeName, KindUnsupported, opts)
}

func clonePtr[V any](v *V) *V {
	if v == nil {
		return nil
	}
	c := *v

	return &c
}

// IDKey is the member key of id collections.
func IDKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
