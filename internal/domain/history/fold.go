package history

import (
	"slices"
	"strings"

	"projectforge/internal/domain/candh"
	"projectforge/internal/domain/entity"
)

const (
	suffixNew = ":nv"
	suffixOld = ":ov"
	suffixOp  = ":op"
)

// IsLegacyName reports whether an attribute row uses the split legacy format.
func IsLegacyName(propertyName string) bool {
	return strings.HasSuffix(propertyName, suffixNew) ||
		strings.HasSuffix(propertyName, suffixOld) ||
		strings.HasSuffix(propertyName, suffixOp)
}

// FoldLegacy turns the attributes of one master into diff entries. Legacy
// "prop:nv", "prop:ov" and "prop:op" rows are merged into one entry per
// property. The result is sorted by property name.
func FoldLegacy(attrs []entity.HistoryAttr) []entity.DiffEntry {
	byName := make(map[string]*entity.DiffEntry, len(attrs))
	order := make([]string, 0, len(attrs))
	entry := func(name string) *entity.DiffEntry {
		if e, ok := byName[name]; ok {
			return e
		}
		e := &entity.DiffEntry{PropertyName: name, OpType: candh.OpUndefined}
		byName[name] = e
		order = append(order, name)

		return e
	}

	for _, attr := range attrs {
		name, suffix := splitLegacy(attr.PropertyName)
		e := entry(name)
		switch suffix {
		case suffixNew:
			e.NewValue = attr.Value
			e.PropertyType = CurrentName(attr.PropertyTypeClass)
		case suffixOld:
			e.OldValue = attr.Value
			if e.PropertyType == "" {
				e.PropertyType = CurrentName(attr.PropertyTypeClass)
			}
		case suffixOp:
			if attr.Value != nil {
				e.OpType = candh.ParseOpType(*attr.Value)
			}
		default:
			e.NewValue = attr.Value
			e.OldValue = attr.OldValue
			e.OpType = attr.OpType
			e.PropertyType = CurrentName(attr.PropertyTypeClass)
		}
	}

	slices.Sort(order)
	result := make([]entity.DiffEntry, 0, len(order))
	for _, name := range order {
		result = append(result, *byName[name])
	}

	return result
}

func splitLegacy(propertyName string) (string, string) {
	for _, suffix := range []string{suffixNew, suffixOld, suffixOp} {
		if name, ok := strings.CutSuffix(propertyName, suffix); ok {
			return name, suffix
		}
	}

	return propertyName, ""
}
