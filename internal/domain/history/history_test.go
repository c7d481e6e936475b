package history

import (
	"testing"

	"projectforge/internal/domain/candh"
	"projectforge/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFoldLegacy_MergesTriples(t *testing.T) {
	attrs := []entity.HistoryAttr{
		{PropertyName: "timeZoneString:op", Value: strPtr("Insert")},
		{PropertyName: "assignedGroups:nv", PropertyTypeClass: "org.projectforge.framework.persistence.user.entities.GroupDO[]", Value: strPtr("1100452,1100063,1826459,33")},
		{PropertyName: "locale:nv", PropertyTypeClass: "java.lang.String", Value: strPtr("de_DE")},
		{PropertyName: "assignedGroups:op", Value: strPtr("Update")},
		{PropertyName: "locale:ov", PropertyTypeClass: "java.lang.String", Value: strPtr("")},
		{PropertyName: "assignedGroups:ov"},
		{PropertyName: "locale:op", Value: strPtr("Update")},
		{PropertyName: "timeZoneString:nv", PropertyTypeClass: "java.lang.String", Value: strPtr("Europe/Berlin")},
	}

	entries := FoldLegacy(attrs)

	require.Len(t, entries, 3)

	assert.Equal(t, "assignedGroups", entries[0].PropertyName)
	assert.Equal(t, "Group", entries[0].PropertyType)
	assert.Equal(t, "1100452,1100063,1826459,33", *entries[0].NewValue)
	assert.Nil(t, entries[0].OldValue)
	assert.Equal(t, candh.OpUpdate, entries[0].OpType)

	assert.Equal(t, "locale", entries[1].PropertyName)
	assert.Equal(t, "string", entries[1].PropertyType)
	assert.Equal(t, "de_DE", *entries[1].NewValue)
	assert.Equal(t, "", *entries[1].OldValue)
	assert.Equal(t, candh.OpUpdate, entries[1].OpType)

	assert.Equal(t, "timeZoneString", entries[2].PropertyName)
	assert.Equal(t, "Europe/Berlin", *entries[2].NewValue)
	assert.Nil(t, entries[2].OldValue)
	assert.Equal(t, candh.OpInsert, entries[2].OpType)
}

func TestFoldLegacy_NativeRowsMapOneToOne(t *testing.T) {
	attrs := []entity.HistoryAttr{
		{PropertyName: "firstname", PropertyTypeClass: "string", Value: strPtr("Horst"), OpType: candh.OpInsert},
		{PropertyName: "email", PropertyTypeClass: "string", Value: strPtr("b@x.com"), OldValue: strPtr("a@x.com"), OpType: candh.OpUpdate},
	}

	entries := FoldLegacy(attrs)

	require.Len(t, entries, 2)
	assert.Equal(t, entity.DiffEntry{
		PropertyName: "email", PropertyType: "string",
		NewValue: strPtr("b@x.com"), OldValue: strPtr("a@x.com"), OpType: candh.OpUpdate,
	}, entries[0])
	assert.Equal(t, "firstname", entries[1].PropertyName)
	assert.Nil(t, entries[1].OldValue)
}

func TestFoldLegacy_Empty(t *testing.T) {
	assert.Empty(t, FoldLegacy(nil))
}

func TestIsLegacyName(t *testing.T) {
	assert.True(t, IsLegacyName("locale:nv"))
	assert.True(t, IsLegacyName("locale:op"))
	assert.False(t, IsLegacyName("locale"))
}

func TestCurrentName(t *testing.T) {
	assert.Equal(t, "User", CurrentName("org.projectforge.user.PFUserDO"))
	assert.Equal(t, "OrderStatus", CurrentName("de.micromata.fibu.AuftragsStatus"))
	assert.Equal(t, "Order", CurrentName("Order"))
	assert.Equal(t, "unknown.Class", CurrentName("unknown.Class"))
}

func TestIsRemoved(t *testing.T) {
	assert.True(t, IsRemoved("org.projectforge.plugins.skillmatrix.SkillDO"))
	assert.False(t, IsRemoved("User"))
}

func TestStoredNames(t *testing.T) {
	names := StoredNames("User")

	assert.Equal(t, "User", names[0])
	assert.Contains(t, names, "org.projectforge.user.PFUserDO")
	assert.Contains(t, names, "de.micromata.projectforge.user.PFUserDO")
	assert.NotContains(t, names, "org.projectforge.business.fibu.AuftragDO")
}
