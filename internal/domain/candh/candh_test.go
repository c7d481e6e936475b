package candh

import (
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID     int64
	Number int
	Title  string
}

type testAddress struct {
	ID   int64
	City string
}

type testRecord struct {
	ID       int64
	Name     string
	Email    *string
	Age      int
	Secret   string
	Status   string
	Born     time.Time
	Seen     *time.Time
	Rate     decimal.Decimal
	OwnerID  *int64
	Tags     []int64
	Items    []*testItem
	Address  *testAddress
	Settings map[string]string
}

var itemDescriptor = NewDescriptor("Item", func(i *testItem) int64 { return i.ID },
	String("title", func(i *testItem) string { return i.Title }, func(i *testItem, v string) { i.Title = v }),
)

var addressDescriptor = NewDescriptor("Address", func(a *testAddress) int64 { return a.ID },
	String("city", func(a *testAddress) string { return a.City }, func(a *testAddress, v string) { a.City = v }),
)

func recordDescriptor(autoUpdate bool) *Descriptor {
	var opts []Option
	if autoUpdate {
		opts = append(opts, AutoUpdate())
	}

	itemOpts := append([]Option{Detach(func(i *testItem) { i.ID = 0 })}, opts...)

	return NewDescriptor("Record", func(r *testRecord) int64 { return r.ID },
		String("name", func(r *testRecord) string { return r.Name }, func(r *testRecord, v string) { r.Name = v }),
		OptString("email", func(r *testRecord) *string { return r.Email }, func(r *testRecord, v *string) { r.Email = v }),
		Scalar("age", "int", func(r *testRecord) int { return r.Age }, func(r *testRecord, v int) { r.Age = v }),
		String("secret", func(r *testRecord) string { return r.Secret }, func(r *testRecord, v string) { r.Secret = v }, NoHistory()),
		Enum("status", "RecordStatus", func(r *testRecord) string { return r.Status }, func(r *testRecord, v string) { r.Status = v }),
		Date("born", func(r *testRecord) time.Time { return r.Born }, func(r *testRecord, v time.Time) { r.Born = v }),
		OptTimestamp("seen", func(r *testRecord) *time.Time { return r.Seen }, func(r *testRecord, v *time.Time) { r.Seen = v }),
		Decimal("rate", func(r *testRecord) decimal.Decimal { return r.Rate }, func(r *testRecord, v decimal.Decimal) { r.Rate = v }),
		Ref("owner", "User", func(r *testRecord) *int64 { return r.OwnerID }, func(r *testRecord, v *int64) { r.OwnerID = v }),
		Refs("tags", "Tag", func(r *testRecord) []int64 { return r.Tags }, func(r *testRecord, v []int64) { r.Tags = v }),
		Children("items", "Item",
			func(r *testRecord) []*testItem { return r.Items },
			func(r *testRecord, v []*testItem) { r.Items = v },
			func(i *testItem) string { return strconv.Itoa(i.Number) },
			itemDescriptor, itemOpts...),
		Nested("address", "Address",
			func(r *testRecord) *testAddress { return r.Address },
			func(r *testRecord, v *testAddress) { r.Address = v },
			addressDescriptor, opts...),
		Unsupported("settings", "map"),
	)
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestCopy_ScalarChangeProducesOneDiff(t *testing.T) {
	src := &testRecord{ID: 1, Age: 42}
	dest := &testRecord{ID: 1, Age: 41}

	c := CopyValues(nil, recordDescriptor(false), src, dest)

	assert.Equal(t, StatusMajor, c.Status())
	assert.Equal(t, 42, dest.Age)
	changes := c.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, "Record", changes[0].EntityName)
	assert.Equal(t, int64(1), changes[0].EntityID)
	require.Len(t, changes[0].Diffs, 1)
	diff := changes[0].Diffs[0]
	assert.Equal(t, "age", diff.Property)
	assert.Equal(t, "41", *diff.OldValue)
	assert.Equal(t, "42", *diff.NewValue)
	assert.Equal(t, OpUpdate, diff.Op)
}

func TestCopy_NoChange(t *testing.T) {
	born := time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC)
	src := &testRecord{ID: 1, Name: "Kai", Age: 3, Born: born, Rate: decimal.RequireFromString("1.5"), Tags: []int64{1, 2}}
	dest := &testRecord{ID: 1, Name: "Kai", Age: 3, Born: born, Rate: decimal.RequireFromString("1.5"), Tags: []int64{2, 1}}

	c := CopyValues(nil, recordDescriptor(false), src, dest)

	assert.Equal(t, StatusNone, c.Status())
	assert.Empty(t, c.Changes())
}

func TestCopy_Idempotent(t *testing.T) {
	desc := recordDescriptor(true)
	src := &testRecord{
		ID: 1, Name: "Kai", Email: strPtr("kai@example.com"), Status: "ACTIVE",
		Rate: decimal.RequireFromString("3.25"), OwnerID: int64Ptr(7), Tags: []int64{3, 1},
		Items: []*testItem{{ID: 10, Number: 1, Title: "a"}},
	}
	dest := &testRecord{ID: 1}

	first := CopyValues(nil, desc, src, dest)
	require.Equal(t, StatusMajor, first.Status())

	second := CopyValues(nil, desc, src, dest)
	assert.Equal(t, StatusNone, second.Status())
	assert.Empty(t, second.Changes())
}

func TestCopy_NilStringEqualsEmpty(t *testing.T) {
	src := &testRecord{ID: 1, Email: strPtr("")}
	dest := &testRecord{ID: 1}

	c := CopyValues(nil, recordDescriptor(false), src, dest)

	assert.Equal(t, StatusNone, c.Status())
}

func TestCopy_StringInsertAndDelete(t *testing.T) {
	src := &testRecord{ID: 1, Email: strPtr("b@x.com")}
	dest := &testRecord{ID: 1}

	c := CopyValues(nil, recordDescriptor(false), src, dest)
	diffs := c.Changes()[0].Diffs
	require.Len(t, diffs, 1)
	assert.Nil(t, diffs[0].OldValue)
	assert.Equal(t, OpInsert, diffs[0].Op)
	assert.Equal(t, "b@x.com", *dest.Email)

	c = CopyValues(nil, recordDescriptor(false), &testRecord{ID: 1}, dest)
	diffs = c.Changes()[0].Diffs
	require.Len(t, diffs, 1)
	assert.Nil(t, diffs[0].NewValue)
	assert.Equal(t, OpDelete, diffs[0].Op)
	assert.Nil(t, dest.Email)
}

func TestCopy_DecimalComparedByValue(t *testing.T) {
	src := &testRecord{ID: 1, Rate: decimal.RequireFromString("0.19000")}
	dest := &testRecord{ID: 1, Rate: decimal.RequireFromString("0.19")}

	c := CopyValues(nil, recordDescriptor(false), src, dest)

	assert.Equal(t, StatusNone, c.Status())
	assert.Equal(t, "0.19", dest.Rate.String())

	src.Rate = decimal.RequireFromString("0.070")
	c = CopyValues(nil, recordDescriptor(false), src, dest)
	diff := c.Changes()[0].Diffs[0]
	assert.Equal(t, "0.19", *diff.OldValue)
	assert.Equal(t, "0.07", *diff.NewValue)
}

func TestCopy_DateIgnoresTimeOfDay(t *testing.T) {
	src := &testRecord{ID: 1, Born: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)}
	dest := &testRecord{ID: 1, Born: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}

	c := CopyValues(nil, recordDescriptor(false), src, dest)
	assert.Equal(t, StatusNone, c.Status())

	src.Born = time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	c = CopyValues(nil, recordDescriptor(false), src, dest)
	diff := c.Changes()[0].Diffs[0]
	assert.Equal(t, "2024-03-01", *diff.OldValue)
	assert.Equal(t, "2024-03-02", *diff.NewValue)
}

func TestCopy_TimestampMillisecondPrecision(t *testing.T) {
	base := time.Date(2023, 2, 10, 13, 34, 25, 184_000_000, time.UTC)
	withMicros := base.Add(300 * time.Microsecond)
	src := &testRecord{ID: 1, Seen: &withMicros}
	dest := &testRecord{ID: 1, Seen: &base}

	c := CopyValues(nil, recordDescriptor(false), src, dest)
	assert.Equal(t, StatusNone, c.Status())

	later := base.Add(time.Second)
	src.Seen = &later
	c = CopyValues(nil, recordDescriptor(false), src, dest)
	diff := c.Changes()[0].Diffs[0]
	assert.Equal(t, "2023-02-10 13:34:25:184", *diff.OldValue)
	assert.Equal(t, "2023-02-10 13:34:26:184", *diff.NewValue)
}

func TestCopy_CollectionReplacesMembers(t *testing.T) {
	src := &testRecord{ID: 1, Tags: []int64{2, 3, 4}}
	dest := &testRecord{ID: 1, Tags: []int64{1, 2, 3}}

	c := CopyValues(nil, recordDescriptor(false), src, dest)

	assert.Equal(t, StatusMajor, c.Status())
	assert.Equal(t, []int64{2, 3, 4}, dest.Tags)
	diffs := c.Changes()[0].Diffs
	require.Len(t, diffs, 1)
	assert.Equal(t, "tags", diffs[0].Property)
	assert.Equal(t, "1,2,3", *diffs[0].OldValue)
	assert.Equal(t, "2,3,4", *diffs[0].NewValue)
}

func TestCopy_CollectionNullEqualsEmpty(t *testing.T) {
	src := &testRecord{ID: 1, Tags: []int64{}}
	dest := &testRecord{ID: 1}

	c := CopyValues(nil, recordDescriptor(false), src, dest)

	assert.Equal(t, StatusNone, c.Status())
}

func TestCopy_EmptySourceClearsCollection(t *testing.T) {
	src := &testRecord{ID: 1}
	dest := &testRecord{ID: 1, Tags: []int64{5, 10}}

	c := CopyValues(nil, recordDescriptor(false), src, dest)

	assert.Nil(t, dest.Tags)
	diff := c.Changes()[0].Diffs[0]
	assert.Equal(t, "5,10", *diff.OldValue)
	assert.Nil(t, diff.NewValue)
	assert.Equal(t, OpDelete, diff.Op)
}

func TestCopy_AutoUpdateRecursesIntoMatchedMembers(t *testing.T) {
	kept := &testItem{ID: 10, Number: 1, Title: "old"}
	src := &testRecord{ID: 1, Items: []*testItem{{ID: 10, Number: 1, Title: "new"}}}
	dest := &testRecord{ID: 1, Items: []*testItem{kept}}

	c := CopyValues(nil, recordDescriptor(true), src, dest)

	assert.Equal(t, StatusMajor, c.Status())
	require.Len(t, dest.Items, 1)
	assert.Same(t, kept, dest.Items[0])
	assert.Equal(t, "new", kept.Title)
	changes := c.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, "Item", changes[0].EntityName)
	assert.Equal(t, int64(10), changes[0].EntityID)
}

func TestCopy_AddedMembersAreDetached(t *testing.T) {
	kept := &testItem{ID: 10, Number: 1, Title: "kept"}
	src := &testRecord{ID: 1, Items: []*testItem{
		{ID: 10, Number: 1, Title: "kept"},
		{ID: 77, Number: 2, Title: "taken from elsewhere"},
	}}
	dest := &testRecord{ID: 1, Items: []*testItem{kept}}

	c := CopyValues(nil, recordDescriptor(true), src, dest)

	assert.Equal(t, StatusMajor, c.Status())
	require.Len(t, dest.Items, 2)
	assert.Same(t, kept, dest.Items[0])
	assert.Equal(t, int64(10), dest.Items[0].ID)
	assert.Zero(t, dest.Items[1].ID)
	assert.Equal(t, "taken from elsewhere", dest.Items[1].Title)
	assert.Equal(t, "1,2", *c.Changes()[0].Diffs[0].NewValue)
}

func TestDescriptor_DetachMembers(t *testing.T) {
	rec := &testRecord{ID: 1, Tags: []int64{3}, Items: []*testItem{{ID: 5, Number: 1}, {ID: 6, Number: 2}}}

	recordDescriptor(false).DetachMembers(rec)

	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, []int64{3}, rec.Tags)
	for _, item := range rec.Items {
		assert.Zero(t, item.ID)
	}
}

func TestCopy_WithoutAutoUpdateMembersKeepIdentity(t *testing.T) {
	kept := &testItem{ID: 10, Number: 1, Title: "old"}
	src := &testRecord{ID: 1, Items: []*testItem{{ID: 10, Number: 1, Title: "new"}}}
	dest := &testRecord{ID: 1, Items: []*testItem{kept}}

	c := CopyValues(nil, recordDescriptor(false), src, dest)

	assert.Equal(t, StatusNone, c.Status())
	assert.Equal(t, "old", kept.Title)
}

func TestCopy_NestedEntity(t *testing.T) {
	addr := &testAddress{ID: 3, City: "Kassel"}
	src := &testRecord{ID: 1, Address: &testAddress{ID: 3, City: "Berlin"}}
	dest := &testRecord{ID: 1, Address: addr}

	c := CopyValues(nil, recordDescriptor(true), src, dest)
	assert.Equal(t, "Berlin", addr.City)
	assert.Same(t, addr, dest.Address)
	require.Len(t, c.Changes(), 1)
	assert.Equal(t, "Address", c.Changes()[0].EntityName)

	other := &testAddress{ID: 4, City: "Bonn"}
	src.Address = other
	c = CopyValues(nil, recordDescriptor(true), src, dest)
	assert.Same(t, other, dest.Address)
	diff := c.Changes()[0].Diffs[0]
	assert.Equal(t, "address", diff.Property)
	assert.Equal(t, "3", *diff.OldValue)
	assert.Equal(t, "4", *diff.NewValue)
}

func TestCopy_ReferenceComparedByIdentity(t *testing.T) {
	src := &testRecord{ID: 1, OwnerID: int64Ptr(8)}
	dest := &testRecord{ID: 1, OwnerID: int64Ptr(8)}

	c := CopyValues(nil, recordDescriptor(false), src, dest)
	assert.Equal(t, StatusNone, c.Status())

	src.OwnerID = int64Ptr(9)
	c = CopyValues(nil, recordDescriptor(false), src, dest)
	assert.Equal(t, int64(9), *dest.OwnerID)
	assert.Equal(t, "owner", c.Changes()[0].Diffs[0].Property)
}

func TestCopy_NoHistoryIsMinor(t *testing.T) {
	src := &testRecord{ID: 1, Secret: "new-hash"}
	dest := &testRecord{ID: 1, Secret: "old-hash"}

	c := CopyValues(nil, recordDescriptor(false), src, dest)

	assert.Equal(t, StatusMinor, c.Status())
	assert.Equal(t, "new-hash", dest.Secret)
	assert.Empty(t, c.Changes())
}

func TestCopy_UnsupportedIsSkipped(t *testing.T) {
	src := &testRecord{ID: 1, Settings: map[string]string{"a": "b"}}
	dest := &testRecord{ID: 1}

	c := CopyValues(nil, recordDescriptor(false), src, dest)

	assert.Equal(t, StatusNone, c.Status())
	assert.Nil(t, dest.Settings)
}

func TestCopy_NilArguments(t *testing.T) {
	c := NewContext(nil)

	assert.Equal(t, StatusNone, Copy(c, recordDescriptor(false), nil, &testRecord{}))
	assert.Empty(t, c.Changes())
}

func TestSortKeys(t *testing.T) {
	keys := []string{"10", "9", "100"}
	SortKeys(keys)
	assert.Equal(t, []string{"9", "10", "100"}, keys)

	keys = []string{"b", "10", "a"}
	SortKeys(keys)
	assert.Equal(t, []string{"10", "a", "b"}, keys)

	keys = []string{"9223372036854775807", "1", "-9223372036854775808", "-1"}
	SortKeys(keys)
	assert.Equal(t, []string{"-9223372036854775808", "-1", "1", "9223372036854775807"}, keys)
}

func TestDescriptor_HistorizedNames(t *testing.T) {
	names := recordDescriptor(false).HistorizedNames()

	assert.Contains(t, names, "name")
	assert.NotContains(t, names, "secret")
}
