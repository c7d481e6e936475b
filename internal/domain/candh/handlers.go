package candh

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

// pair reads the canonical values of both sides and asserts them to V.
// ok is false when a present value has an unexpected type.
func pair[V any](p *Property, src, dest any) (s, d V, sPresent, dPresent, ok bool) {
	if p.value == nil {
		return s, d, false, false, false
	}
	sv, sPresent := p.value(src)
	dv, dPresent := p.value(dest)
	if sPresent {
		if s, ok = sv.(V); !ok {
			return s, d, sPresent, dPresent, false
		}
	}
	if dPresent {
		if d, ok = dv.(V); !ok {
			return s, d, sPresent, dPresent, false
		}
	}

	return s, d, sPresent, dPresent, true
}

func formatted[V any](v V, present bool, format func(V) string) *string {
	if !present {
		return nil
	}
	str := format(v)

	return &str
}

func copyScalar(c *Context, desc *Descriptor, p *Property, src, dest any) {
	if p.value == nil {
		c.unsupported(desc.EntityName, p, "no accessor")

		return
	}
	sv, sPresent := p.value(src)
	dv, dPresent := p.value(dest)
	if sPresent == dPresent && (!sPresent || sv == dv) {
		return
	}
	p.assign(src, dest)
	c.record(p, formatted(dv, dPresent, formatAny), formatted(sv, sPresent, formatAny))
}

// copyString treats nil and the empty string as equal.
func copyString(c *Context, desc *Descriptor, p *Property, src, dest any) {
	s, d, sPresent, dPresent, ok := pair[string](p, src, dest)
	if !ok {
		c.unsupported(desc.EntityName, p, "value is not a string")

		return
	}
	if s == d {
		return
	}
	p.assign(src, dest)
	c.record(p, formatted(d, dPresent, identity), formatted(s, sPresent, identity))
}

func copyEnum(c *Context, desc *Descriptor, p *Property, src, dest any) {
	s, d, sPresent, dPresent, ok := pair[string](p, src, dest)
	if !ok {
		c.unsupported(desc.EntityName, p, "enum value is not a string")

		return
	}
	if sPresent == dPresent && s == d {
		return
	}
	p.assign(src, dest)
	c.record(p, formatted(d, dPresent, identity), formatted(s, sPresent, identity))
}

func copyTime(c *Context, desc *Descriptor, p *Property, src, dest any) {
	s, d, sPresent, dPresent, ok := pair[time.Time](p, src, dest)
	if !ok {
		c.unsupported(desc.EntityName, p, "value is not a time")

		return
	}
	format := FormatTimestamp
	equal := func(a, b time.Time) bool {
		return a.Truncate(time.Millisecond).Equal(b.Truncate(time.Millisecond))
	}
	if p.Kind == KindDate {
		format = FormatDate
		equal = sameDay
	}
	if sPresent == dPresent && (!sPresent || equal(s, d)) {
		return
	}
	p.assign(src, dest)
	c.record(p, formatted(d, dPresent, format), formatted(s, sPresent, format))
}

func copyDecimal(c *Context, desc *Descriptor, p *Property, src, dest any) {
	s, d, sPresent, dPresent, ok := pair[decimal.Decimal](p, src, dest)
	if !ok {
		c.unsupported(desc.EntityName, p, "value is not a decimal")

		return
	}
	if sPresent == dPresent && (!sPresent || s.Equal(d)) {
		return
	}
	p.assign(src, dest)
	c.record(p, formatted(d, dPresent, FormatDecimal), formatted(s, sPresent, FormatDecimal))
}

// copyEntity compares references by identity. Nested entities flagged with
// AutoUpdate are copied recursively while both sides share the same id.
func copyEntity(c *Context, desc *Descriptor, p *Property, src, dest any) {
	if p.AutoUpdate && p.nested.elem != nil {
		se, sOK := p.nested.get(src)
		de, dOK := p.nested.get(dest)
		if sOK && dOK && p.nested.elem.ID(se) == p.nested.elem.ID(de) {
			c.markNested(Copy(c, p.nested.elem, se, de))

			return
		}
	}
	s, d, sPresent, dPresent, ok := pair[int64](p, src, dest)
	if !ok {
		c.unsupported(desc.EntityName, p, "reference id is not an int64")

		return
	}
	if sPresent == dPresent && s == d {
		return
	}
	p.assign(src, dest)
	c.record(p, formatted(d, dPresent, IDKey), formatted(s, sPresent, IDKey))
}

func copyCollection(c *Context, desc *Descriptor, p *Property, src, dest any) {
	if p.coll == nil {
		c.unsupported(desc.EntityName, p, "no collection accessor")

		return
	}
	p.coll.copy(c, p, src, dest)
}

type collectionOps interface {
	copy(c *Context, p *Property, src, dest any)
	detachAll(p *Property, obj any)
}

type nestedOps struct {
	elem *Descriptor
	get  func(obj any) (any, bool)
}

type idCollection[T any] struct {
	get func(*T) []int64
	set func(*T, []int64)
}

func (o *idCollection[T]) copy(c *Context, p *Property, src, dest any) {
	s := o.get(src.(*T))
	d := o.get(dest.(*T))
	result, changed := reconcile(s, d, IDKey, nil, nil)
	if !changed {
		return
	}
	o.set(dest.(*T), result)
	c.record(p, joinKeys(d, IDKey), joinKeys(result, IDKey))
}

func (o *idCollection[T]) detachAll(*Property, any) {}

type childCollection[T, E any] struct {
	get  func(*T) []*E
	set  func(*T, []*E)
	key  func(*E) string
	elem *Descriptor
}

func (o *childCollection[T, E]) copy(c *Context, p *Property, src, dest any) {
	s := o.get(src.(*T))
	d := o.get(dest.(*T))
	var matched func(se, de *E)
	if p.AutoUpdate && o.elem != nil {
		matched = func(se, de *E) {
			c.markNested(Copy(c, o.elem, se, de))
		}
	}
	var added func(se *E)
	if p.detach != nil {
		added = func(se *E) { p.detach(se) }
	}
	result, changed := reconcile(s, d, o.key, matched, added)
	if !changed {
		return
	}
	o.set(dest.(*T), result)
	c.record(p, joinKeys(d, o.key), joinKeys(result, o.key))
}

func (o *childCollection[T, E]) detachAll(p *Property, obj any) {
	for _, e := range o.get(obj.(*T)) {
		p.detach(e)
	}
}

// reconcile makes dest contain exactly the members of src. Members present on
// both sides keep the destination instance. Members only in src are passed to
// added before they join dest. Null and empty are the same.
func reconcile[E any](src, dest []E, key func(E) string, matched func(s, d E), added func(s E)) ([]E, bool) {
	if len(src) == 0 && len(dest) == 0 {
		return dest, false
	}
	if len(src) == 0 {
		return nil, true
	}
	srcByKey := make(map[string]E, len(src))
	for _, e := range src {
		srcByKey[key(e)] = e
	}
	kept := make(map[string]struct{}, len(dest))
	result := make([]E, 0, len(src))
	changed := false
	for _, e := range dest {
		k := key(e)
		se, ok := srcByKey[k]
		if !ok {
			changed = true

			continue
		}
		if _, dup := kept[k]; dup {
			changed = true

			continue
		}
		kept[k] = struct{}{}
		if matched != nil {
			matched(se, e)
		}
		result = append(result, e)
	}
	for _, e := range src {
		k := key(e)
		if _, ok := kept[k]; ok {
			continue
		}
		kept[k] = struct{}{}
		if added != nil {
			added(e)
		}
		result = append(result, e)
		changed = true
	}

	return result, changed
}

func joinKeys[E any](members []E, key func(E) string) *string {
	if len(members) == 0 {
		return nil
	}
	keys := make([]string, 0, len(members))
	for _, m := range members {
		keys = append(keys, key(m))
	}
	SortKeys(keys)
	joined := strings.Join(keys, ",")

	return &joined
}

// SortKeys orders member keys numerically when all are integers.
func SortKeys(keys []string) {
	numeric := true
	for _, k := range keys {
		if _, err := strconv.ParseInt(k, 10, 64); err != nil {
			numeric = false

			break
		}
	}
	if !numeric {
		slices.Sort(keys)

		return
	}
	slices.SortFunc(keys, func(a, b string) int {
		x, _ := strconv.ParseInt(a, 10, 64)
		y, _ := strconv.ParseInt(b, 10, 64)

		return cmp.Compare(x, y)
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

func identity(s string) string { return s }

func formatAny(v any) string { return fmt.Sprint(v) }

// FormatDate renders a day as written to history rows.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTimestamp renders a point in time in UTC with milliseconds, e.g.
// 2023-02-10 13:34:25:184.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()

	return fmt.Sprintf("%s:%03d", t.Format(timestampLayout), t.Nanosecond()/int(time.Millisecond))
}

// FormatDecimal renders the canonical form without trailing zeros.
func FormatDecimal(d decimal.Decimal) string {
	return d.String()
}
