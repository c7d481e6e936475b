package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type row struct {
	ID     int64
	Name   string
	Amount decimal.Decimal
	Note   *string
}

type fakeBackend struct {
	rows  []*row
	calls []int
	err   error
}

func (b *fakeBackend) FetchBlock(_ context.Context, _ *Filter, offset, limit int) ([]*row, error) {
	b.calls = append(b.calls, offset)
	if b.err != nil {
		return nil, b.err
	}
	if offset >= len(b.rows) {
		return nil, nil
	}
	end := min(offset+limit, len(b.rows))

	return b.rows[offset:end], nil
}

type fakeHistory struct {
	ids []int64
}

func (h *fakeHistory) FindEntityIDs(context.Context, HistoryFilter) ([]int64, error) {
	return h.ids, nil
}

type fakeAccess struct {
	restricted bool
	denyID     int64
}

func (a *fakeAccess) IsRestricted(context.Context) bool            { return a.restricted }
func (a *fakeAccess) HasSelectAccess(context.Context, string) bool { return true }
func (a *fakeAccess) HasItemSelectAccess(_ context.Context, _ string, item any) bool {
	return item.(*row).ID != a.denyID
}

func rows(n int) []*row {
	result := make([]*row, 0, n)
	for i := 1; i <= n; i++ {
		result = append(result, &row{ID: int64(i), Name: "row", Amount: decimal.NewFromInt(int64(i))})
	}

	return result
}

func newTestEngine(backend Backend[row]) *Engine[row] {
	e := NewEngine[row]("Row", backend, func(r *row) int64 { return r.ID }, Options{BlockSize: 10}, nil, nil)
	e.Accessors = Accessors[row]{
		"id":     func(r *row) any { return r.ID },
		"name":   func(r *row) any { return r.Name },
		"amount": func(r *row) any { return r.Amount },
		"note":   func(r *row) any { return r.Note },
	}

	return e
}

func TestEngine_IteratesBlocksUntilShortBlock(t *testing.T) {
	backend := &fakeBackend{rows: rows(25)}
	e := newTestEngine(backend)

	list, err := e.GetList(context.Background(), Filter{})

	require.NoError(t, err)
	assert.Len(t, list, 25)
	assert.Equal(t, []int{0, 10, 20}, backend.calls)
}

func TestEngine_FullLastBlockFetchesOneMore(t *testing.T) {
	backend := &fakeBackend{rows: rows(20)}
	e := newTestEngine(backend)

	list, err := e.GetList(context.Background(), Filter{})

	require.NoError(t, err)
	assert.Len(t, list, 20)
	assert.Equal(t, []int{0, 10, 20}, backend.calls)
}

func TestEngine_MaxRowsStopsEarly(t *testing.T) {
	backend := &fakeBackend{rows: rows(50)}
	e := newTestEngine(backend)

	list, err := e.GetList(context.Background(), Filter{MaxRows: 12})

	require.NoError(t, err)
	assert.Len(t, list, 12)
	assert.Equal(t, []int{0, 10}, backend.calls)
}

func TestEngine_Predicates(t *testing.T) {
	backend := &fakeBackend{rows: rows(30)}
	e := newTestEngine(backend)

	list, err := e.GetList(context.Background(), Filter{},
		func(r *row) bool { return r.ID%2 == 0 },
		In(func(r *row) int64 { return r.ID }, 2, 3, 4, 5))

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	assert.Equal(t, int64(4), list[1].ID)
}

func TestEngine_Dedup(t *testing.T) {
	data := rows(3)
	data = append(data, &row{ID: 2, Name: "dup"})
	e := newTestEngine(&fakeBackend{rows: data})

	list, err := e.GetList(context.Background(), Filter{})

	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestEngine_HistoryIDSetIntersection(t *testing.T) {
	e := newTestEngine(&fakeBackend{rows: rows(15)})
	e.History = &fakeHistory{ids: []int64{3, 14, 99}}
	userID := int64(7)

	list, err := e.GetList(context.Background(), Filter{ModifiedByUserID: &userID})

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(14), list[1].ID)
}

func TestEngine_AccessChecks(t *testing.T) {
	e := newTestEngine(&fakeBackend{rows: rows(5)})
	e.Access = &fakeAccess{restricted: true}

	list, err := e.GetList(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	e.Access = &fakeAccess{denyID: 3}
	list, err = e.GetList(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

func TestEngine_BackendErrorYieldsEmptyList(t *testing.T) {
	e := newTestEngine(&fakeBackend{err: errors.New("connection refused")})

	list, err := e.GetList(context.Background(), Filter{SearchString: "x"})

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestEngine_CancelledContext(t *testing.T) {
	e := newTestEngine(&fakeBackend{rows: rows(5)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.GetList(ctx, Filter{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_ResultFiltersAndAfterLoad(t *testing.T) {
	e := newTestEngine(&fakeBackend{rows: rows(5)})
	e.ResultFilters = []ResultFilter[row]{
		func(accepted []*row, _ *row) bool { return len(accepted) < 2 },
	}
	loaded := 0
	e.AfterLoad = func(context.Context, *row) { loaded++ }

	list, err := e.GetList(context.Background(), Filter{})

	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, 2, loaded)
}

func TestEngine_DefaultSort(t *testing.T) {
	e := newTestEngine(&fakeBackend{rows: rows(3)})
	e.DefaultSort = []SortProperty{{Property: "amount", Descending: true}}

	list, err := e.GetList(context.Background(), Filter{})

	require.NoError(t, err)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, int64(1), list[2].ID)
}

func TestEngine_SlowQueryStillReturns(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := func() time.Time {
		clock = clock.Add(3 * time.Second)

		return clock
	}
	e := NewEngine[row]("Row", &fakeBackend{rows: rows(2)}, func(r *row) int64 { return r.ID }, Options{}, nil, now)

	list, err := e.GetList(context.Background(), Filter{})

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSort_CollationAndNilLast(t *testing.T) {
	note := "x"
	items := []*row{
		{ID: 1, Name: "Zebra"},
		{ID: 2, Name: "äpfel", Note: &note},
		{ID: 3, Name: "Apfel"},
		{ID: 4, Name: "birne"},
	}
	accessors := Accessors[row]{
		"name": func(r *row) any { return r.Name },
		"note": func(r *row) any { return r.Note },
	}

	Sort(items, []SortProperty{{Property: "name"}}, accessors, language.German, nil)
	names := []string{items[0].Name, items[1].Name, items[2].Name, items[3].Name}
	assert.Equal(t, []string{"Apfel", "äpfel", "birne", "Zebra"}, names)

	Sort(items, []SortProperty{{Property: "note"}}, accessors, language.German, nil)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestSort_UnknownPropertyIgnored(t *testing.T) {
	items := rows(3)

	Sort(items, []SortProperty{{Property: "missing", Descending: true}}, Accessors[row]{}, language.German, nil)

	assert.Equal(t, int64(1), items[0].ID)
}

func TestLike(t *testing.T) {
	get := func(r *row) string { return r.Name }

	assert.True(t, Like(get, "ber")(&row{Name: "Hubert"}))
	assert.True(t, Like(get, "hu*")(&row{Name: "Hubert"}))
	assert.False(t, Like(get, "ber*")(&row{Name: "Hubert"}))
	assert.True(t, Like(get, "")(&row{Name: "x"}))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%abc%", LikePattern("abc"))
	assert.Equal(t, "ab%", LikePattern("ab*"))
	assert.Equal(t, `%50\%%`, LikePattern("50%"))
	assert.Equal(t, "", LikePattern("  "))
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, []SortProperty{{Property: "name"}, {Property: "created", Descending: true}}, ParseSort("name, -created,"))
}
