package cache

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"projectforge/internal/domain/entity"
	mockRepo "projectforge/internal/mocks/repository"
	"projectforge/internal/testutil"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTTL = time.Hour

type orderCacheFixtures struct {
	cache    *OrderCache
	clock    *testutil.StubClock
	orders   *mockRepo.MockOrderRepository
	invoices *mockRepo.MockInvoiceRepository
}

func createTestOrderCache(t *testing.T) orderCacheFixtures {
	clock := testutil.FixedClock()
	orders := mockRepo.NewMockOrderRepository(t)
	invoices := mockRepo.NewMockInvoiceRepository(t)

	return orderCacheFixtures{
		cache:    NewOrderCache(orders, invoices, testTTL, clock, testutil.DiscardLogger()),
		clock:    clock,
		orders:   orders,
		invoices: invoices,
	}
}

func position(id int64, number int, status entity.OrderPositionStatus, net string) *entity.OrderPosition {
	return &entity.OrderPosition{
		Base:   entity.Base{ID: id},
		Number: number,
		Title:  "pos",
		Status: status,
		NetSum: decimal.RequireFromString(net),
	}
}

func completedOrder() *entity.Order {
	return &entity.Order{
		Base:   entity.Base{ID: 1},
		Number: 4711,
		Title:  "Support",
		Status: entity.OrderStatusInProgress,
		Positions: []*entity.OrderPosition{
			position(11, 1, entity.OrderPositionStatusCompleted, "1000"),
			position(12, 2, entity.OrderPositionStatusOpen, "500"),
			position(13, 3, entity.OrderPositionStatusRejected, "200"),
		},
	}
}

func TestOrderCache_GetOrderInfo_Sums(t *testing.T) {
	fx := createTestOrderCache(t)
	ctx := context.Background()

	fx.orders.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{completedOrder()}, nil).Once()
	fx.invoices.EXPECT().SumNetByOrderPosition(mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{11: decimal.RequireFromString("400")}, nil).Once()

	info, ok := fx.cache.GetOrderInfo(ctx, 1)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("1500").Equal(info.NetSum))
	assert.True(t, decimal.RequireFromString("400").Equal(info.InvoicedSum))
	assert.True(t, decimal.RequireFromString("1100").Equal(info.NotYetInvoicedSum))
	assert.True(t, info.ToBeInvoiced)
	require.Len(t, info.Positions, 3)

	pos, ok := fx.cache.GetOrderPositionInfo(ctx, 11)
	require.True(t, ok)
	assert.True(t, pos.ToBeInvoiced)
	pos, ok = fx.cache.GetOrderPositionInfo(ctx, 12)
	require.True(t, ok)
	assert.False(t, pos.ToBeInvoiced, "open positions are not invoiced yet")
	pos, ok = fx.cache.GetOrderPositionInfo(ctx, 13)
	require.True(t, ok)
	assert.False(t, pos.ToBeInvoiced, "rejected positions are never invoiced")

	assert.Equal(t, 1, fx.cache.ToBeInvoicedCount(ctx))
}

func TestOrderCache_FullyInvoiced(t *testing.T) {
	fx := createTestOrderCache(t)
	ctx := context.Background()

	order := completedOrder()
	order.Status = entity.OrderStatusCompleted
	fx.orders.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{order}, nil).Once()
	fx.invoices.EXPECT().SumNetByOrderPosition(mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{
			11: decimal.RequireFromString("1000"),
			12: decimal.RequireFromString("600"),
		}, nil).Once()

	info, ok := fx.cache.GetOrderInfo(ctx, 1)
	require.True(t, ok)
	assert.False(t, info.ToBeInvoiced)
	assert.True(t, decimal.Zero.Equal(info.NotYetInvoicedSum), "never negative")
	assert.Equal(t, 0, fx.cache.ToBeInvoicedCount(ctx))
}

func TestOrderCache_TTL(t *testing.T) {
	fx := createTestOrderCache(t)
	ctx := context.Background()

	fx.orders.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{completedOrder()}, nil).Twice()
	fx.invoices.EXPECT().SumNetByOrderPosition(mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{}, nil).Twice()

	assert.True(t, fx.cache.IsExpired())
	_, _ = fx.cache.GetOrderInfo(ctx, 1)
	first := fx.cache.Generation()
	assert.False(t, fx.cache.IsExpired())
	assert.WithinDuration(t, fx.clock.Now(), fx.cache.LastRefresh(), 0)

	fx.clock.Advance(testTTL - time.Second)
	_, _ = fx.cache.GetOrderInfo(ctx, 1)
	assert.Equal(t, first, fx.cache.Generation(), "still fresh")

	fx.clock.Advance(time.Second)
	assert.True(t, fx.cache.IsExpired())
	_, _ = fx.cache.GetOrderInfo(ctx, 1)
	assert.Greater(t, fx.cache.Generation(), first)
}

func TestOrderCache_SetExpired(t *testing.T) {
	fx := createTestOrderCache(t)
	ctx := context.Background()

	fx.orders.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{}, nil).Twice()
	fx.invoices.EXPECT().SumNetByOrderPosition(mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{}, nil).Twice()

	require.NoError(t, fx.cache.CheckRefresh(ctx))
	require.NoError(t, fx.cache.CheckRefresh(ctx))
	fx.cache.SetExpired()
	assert.True(t, fx.cache.IsExpired())
	require.NoError(t, fx.cache.CheckRefresh(ctx))
}

func TestOrderCache_RefreshError(t *testing.T) {
	fx := createTestOrderCache(t)
	ctx := context.Background()

	fx.orders.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("db down")).Twice()

	err := fx.cache.CheckRefresh(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.True(t, fx.cache.IsExpired(), "a failed refresh is retried")

	// Readers retry, fail again and see the empty snapshot.
	_, ok := fx.cache.GetOrderInfo(ctx, 1)
	assert.False(t, ok)
}

func TestOrderCache_SetExpiredOrder(t *testing.T) {
	fx := createTestOrderCache(t)
	ctx := context.Background()

	fx.orders.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{completedOrder()}, nil).Once()
	fx.invoices.EXPECT().SumNetByOrderPosition(mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{}, nil).Once()
	require.NoError(t, fx.cache.CheckRefresh(ctx))
	before := fx.cache.Generation()

	updated := completedOrder()
	updated.Title = "Support 2024"
	fx.orders.EXPECT().FindByID(mock.Anything, int64(1)).Return(updated, nil).Once()
	fx.invoices.EXPECT().SumNetByOrderPosition(mock.Anything, []int64{1}).
		Return(map[int64]decimal.Decimal{11: decimal.RequireFromString("1000")}, nil).Once()

	fx.cache.SetExpiredOrder(ctx, 1)

	assert.Greater(t, fx.cache.Generation(), before)
	assert.False(t, fx.cache.IsExpired(), "partial updates keep the cache fresh")
	info, ok := fx.cache.GetOrderInfo(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "Support 2024", info.Title)
	assert.False(t, info.ToBeInvoiced)
}

func TestOrderCache_SetExpiredOrder_Deleted(t *testing.T) {
	fx := createTestOrderCache(t)
	ctx := context.Background()

	fx.orders.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{completedOrder()}, nil).Once()
	fx.invoices.EXPECT().SumNetByOrderPosition(mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{}, nil)
	require.NoError(t, fx.cache.CheckRefresh(ctx))

	deleted := completedOrder()
	deleted.Deleted = true
	fx.orders.EXPECT().FindByID(mock.Anything, int64(1)).Return(deleted, nil).Once()

	fx.cache.SetExpiredOrder(ctx, 1)

	_, ok := fx.cache.GetOrderInfo(ctx, 1)
	assert.False(t, ok)
	_, ok = fx.cache.GetOrderPositionInfo(ctx, 11)
	assert.False(t, ok)
}

func TestOrderCache_SetExpiredOrder_LoadError(t *testing.T) {
	fx := createTestOrderCache(t)
	ctx := context.Background()

	fx.orders.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{completedOrder()}, nil).Once()
	fx.invoices.EXPECT().SumNetByOrderPosition(mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{}, nil)
	require.NoError(t, fx.cache.CheckRefresh(ctx))

	fx.orders.EXPECT().FindByID(mock.Anything, int64(1)).Return(nil, errors.New("timeout")).Once()

	fx.cache.SetExpiredOrder(ctx, 1)

	assert.True(t, fx.cache.IsExpired())
}

func TestOrderCache_ConcurrentFirstLoad(t *testing.T) {
	fx := createTestOrderCache(t)
	ctx := context.Background()

	// Once: all readers share one rebuild.
	fx.orders.EXPECT().FindAll(mock.Anything).
		RunAndReturn(func(context.Context) ([]*entity.Order, error) {
			time.Sleep(20 * time.Millisecond)

			return []*entity.Order{completedOrder()}, nil
		}).Once()
	fx.invoices.EXPECT().SumNetByOrderPosition(mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{}, nil).Once()

	var wg sync.WaitGroup
	found := make([]bool, 16)
	for i := range found {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, found[i] = fx.cache.GetOrderInfo(ctx, 1)
		}(i)
	}
	wg.Wait()

	for i, ok := range found {
		assert.True(t, ok, "reader %d", i)
	}
}

func TestOrderCache_ReadersKeepOldGenerationDuringRefresh(t *testing.T) {
	fx := createTestOrderCache(t)
	ctx := context.Background()

	fx.orders.EXPECT().FindAll(mock.Anything).Return([]*entity.Order{completedOrder()}, nil).Once()
	fx.invoices.EXPECT().SumNetByOrderPosition(mock.Anything, mock.Anything).
		Return(map[int64]decimal.Decimal{}, nil).Twice()
	require.NoError(t, fx.cache.CheckRefresh(ctx))
	old := fx.cache.Generation()

	started := make(chan struct{})
	release := make(chan struct{})
	renamed := completedOrder()
	renamed.Title = "renamed"
	fx.orders.EXPECT().FindAll(mock.Anything).
		RunAndReturn(func(context.Context) ([]*entity.Order, error) {
			close(started)
			<-release

			return []*entity.Order{renamed}, nil
		}).Once()

	fx.cache.SetExpired()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = fx.cache.CheckRefresh(ctx)
	}()
	<-started

	info, ok := fx.cache.GetOrderInfo(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "Support", info.Title)
	assert.Equal(t, old, fx.cache.Generation())

	close(release)
	<-done

	info, ok = fx.cache.GetOrderInfo(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "renamed", info.Title)
	assert.Greater(t, fx.cache.Generation(), old)
}

type userGroupCacheFixtures struct {
	cache  *UserGroupCache
	users  *mockRepo.MockUserRepository
	groups *mockRepo.MockGroupRepository
}

func createTestUserGroupCache(t *testing.T) userGroupCacheFixtures {
	users := mockRepo.NewMockUserRepository(t)
	groups := mockRepo.NewMockGroupRepository(t)

	return userGroupCacheFixtures{
		cache:  NewUserGroupCache(users, groups, testTTL, testutil.FixedClock(), testutil.DiscardLogger()),
		users:  users,
		groups: groups,
	}
}

func strPtr(s string) *string { return &s }

func TestUserGroupCache_Lookups(t *testing.T) {
	fx := createTestUserGroupCache(t)
	ctx := context.Background()

	fx.users.EXPECT().FindAll(mock.Anything).Return([]*entity.User{
		{Base: entity.Base{ID: 1}, Username: "kai", Firstname: strPtr("Kai"), Lastname: strPtr("Reinhard")},
		{Base: entity.Base{ID: 2}, Username: "demo", Demo: true},
	}, nil).Once()
	fx.groups.EXPECT().FindAll(mock.Anything).Return([]*entity.Group{
		{Base: entity.Base{ID: 10}, Name: "PF_Finance", AssignedUserIDs: []int64{1}},
		{Base: entity.Base{ID: 11}, Name: "PF_Admin", AssignedUserIDs: []int64{1, 2}},
	}, nil).Once()

	u, ok := fx.cache.GetUserByUsername(ctx, "kai")
	require.True(t, ok)
	assert.Equal(t, int64(1), u.ID)

	assert.Equal(t, []string{"PF_Admin", "PF_Finance"}, fx.cache.GroupNames(ctx, 1))
	assert.True(t, fx.cache.IsUserMemberOfGroup(ctx, 2, "PF_Finance", "PF_Admin"))
	assert.False(t, fx.cache.IsUserMemberOfGroup(ctx, 2, "PF_Finance"))
	assert.False(t, fx.cache.IsUserMemberOfGroup(ctx, 3, "PF_Admin"))

	assert.True(t, fx.cache.IsDemo(ctx, 2))
	assert.False(t, fx.cache.IsDemo(ctx, 1))
	assert.False(t, fx.cache.IsDemo(ctx, 99))

	name, ok := fx.cache.DisplayName(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "Kai Reinhard", name)
	name, ok = fx.cache.DisplayName(ctx, 2)
	require.True(t, ok)
	assert.Equal(t, "demo", name)
}

type userPrefCacheFixtures struct {
	cache *UserPrefCache
	clock *testutil.StubClock
	store *mockRepo.MockUserPrefRepository
}

type demoUsers map[int64]bool

func (d demoUsers) IsDemo(_ context.Context, userID int64) bool {
	return d[userID]
}

const demoUserID = 99

func createTestUserPrefCache(t *testing.T) userPrefCacheFixtures {
	clock := testutil.FixedClock()
	store := mockRepo.NewMockUserPrefRepository(t)

	return userPrefCacheFixtures{
		cache: NewUserPrefCache(store, demoUsers{demoUserID: true}, testTTL, clock, testutil.DiscardLogger()),
		clock: clock,
		store: store,
	}
}

func TestUserPrefCache_LoadAndGet(t *testing.T) {
	fx := createTestUserPrefCache(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUser(mock.Anything, int64(1)).Return([]*entity.UserPref{
		{UserID: 1, Area: "timesheet", Name: "filter", Value: `{"recent":true}`},
	}, nil).Once()

	value, ok, err := fx.cache.GetEntry(ctx, 1, "timesheet", "filter")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"recent":true}`, value)

	_, ok, err = fx.cache.GetEntry(ctx, 1, "timesheet", "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserPrefCache_WriteBack(t *testing.T) {
	fx := createTestUserPrefCache(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUser(mock.Anything, int64(1)).Return([]*entity.UserPref{
		{UserID: 1, Area: "order", Name: "old", Value: "1"},
	}, nil).Once()

	require.NoError(t, fx.cache.PutEntry(ctx, 1, "order", "columns", `["number"]`, true))
	require.NoError(t, fx.cache.PutEntry(ctx, 1, "order", "scratch", "x", false))
	require.NoError(t, fx.cache.RemoveEntry(ctx, 1, "order", "old"))

	fx.store.EXPECT().Delete(mock.Anything, int64(1), "order", "old").Return(nil).Once()
	fx.store.EXPECT().Upsert(mock.Anything, mock.AnythingOfType("*entity.UserPref")).
		Run(func(_ context.Context, pref *entity.UserPref) {
			assert.Equal(t, "columns", pref.Name)
			assert.Equal(t, `["number"]`, pref.Value)
			assert.Equal(t, fx.clock.Now(), pref.LastUpdate)
		}).
		Return(nil).Once()

	require.NoError(t, fx.cache.FlushToDB(ctx, 1))

	// Nothing left to write.
	require.NoError(t, fx.cache.FlushToDB(ctx, 1))
}

func TestUserPrefCache_FlushErrorKeepsEntryDirty(t *testing.T) {
	fx := createTestUserPrefCache(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUser(mock.Anything, int64(1)).Return(nil, nil).Once()
	require.NoError(t, fx.cache.PutEntry(ctx, 1, "a", "b", "c", true))

	fx.store.EXPECT().Upsert(mock.Anything, mock.Anything).Return(errors.New("deadlock")).Once()
	require.Error(t, fx.cache.FlushAll(ctx))

	fx.store.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, fx.cache.FlushAll(ctx))
}

func TestUserPrefCache_DemoUserNeverPersisted(t *testing.T) {
	fx := createTestUserPrefCache(t)
	ctx := context.Background()

	require.NoError(t, fx.cache.PutEntry(ctx, demoUserID, "a", "b", "c", true))
	require.NoError(t, fx.cache.FlushAll(ctx))

	value, ok, err := fx.cache.GetEntry(ctx, demoUserID, "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "c", value)
	fx.store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	fx.store.AssertNotCalled(t, "FindByUser", mock.Anything, mock.Anything)
}

func TestUserPrefCache_RefreshFlushesAndEvicts(t *testing.T) {
	fx := createTestUserPrefCache(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUser(mock.Anything, int64(1)).Return(nil, nil).Twice()
	require.NoError(t, fx.cache.PutEntry(ctx, 1, "a", "b", "c", true))

	fx.store.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
	fx.clock.Advance(testTTL)
	require.NoError(t, fx.cache.CheckRefresh(ctx))

	// Evicted: the next access reads the store again.
	_, _, err := fx.cache.GetEntry(ctx, 1, "a", "b")
	require.NoError(t, err)
}

func TestUserPrefCache_Clear(t *testing.T) {
	fx := createTestUserPrefCache(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUser(mock.Anything, int64(1)).Return(nil, nil).Twice()
	require.NoError(t, fx.cache.PutEntry(ctx, 1, "a", "b", "c", false))
	fx.cache.Clear(1)

	_, ok, err := fx.cache.GetEntry(ctx, 1, "a", "b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserPrefCache_HeldUserSurvivesRefresh(t *testing.T) {
	fx := createTestUserPrefCache(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUser(mock.Anything, int64(1)).Return(nil, nil).Once()
	data, err := fx.cache.acquire(ctx, 1)
	require.NoError(t, err)

	// A refresh between lookup and write must not orphan the write.
	require.NoError(t, fx.cache.flushAndEvict(ctx))
	data.mu.Lock()
	data.entries[prefKey{"a", "b"}] = &prefEntry{value: "c", persistent: true, modified: true, lastUpdate: fx.clock.Now()}
	data.mu.Unlock()
	fx.cache.release(data)

	fx.store.EXPECT().Upsert(mock.Anything, mock.AnythingOfType("*entity.UserPref")).
		Run(func(_ context.Context, pref *entity.UserPref) {
			assert.Equal(t, "c", pref.Value)
		}).
		Return(nil).Once()
	require.NoError(t, fx.cache.flushAndEvict(ctx))

	// Released and clean: evicted now.
	fx.cache.mu.Lock()
	_, cached := fx.cache.users[1]
	fx.cache.mu.Unlock()
	assert.False(t, cached)
}

func TestUserPrefCache_ConcurrentPutsSurviveRefresh(t *testing.T) {
	fx := createTestUserPrefCache(t)
	ctx := context.Background()

	var mu sync.Mutex
	stored := map[string]string{}
	fx.store.EXPECT().FindByUser(mock.Anything, int64(1)).RunAndReturn(
		func(context.Context, int64) ([]*entity.UserPref, error) {
			mu.Lock()
			defer mu.Unlock()
			prefs := make([]*entity.UserPref, 0, len(stored))
			for name, value := range stored {
				prefs = append(prefs, &entity.UserPref{UserID: 1, Area: "a", Name: name, Value: value})
			}

			return prefs, nil
		}).Maybe()
	fx.store.EXPECT().Upsert(mock.Anything, mock.AnythingOfType("*entity.UserPref")).RunAndReturn(
		func(_ context.Context, pref *entity.UserPref) error {
			mu.Lock()
			defer mu.Unlock()
			stored[pref.Name] = pref.Value

			return nil
		}).Maybe()

	const puts = 200
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range puts {
			assert.NoError(t, fx.cache.PutEntry(ctx, 1, "a", strconv.Itoa(i), "v", true))
		}
	}()
	go func() {
		defer wg.Done()
		for range puts {
			assert.NoError(t, fx.cache.flushAndEvict(ctx))
		}
	}()
	wg.Wait()
	require.NoError(t, fx.cache.FlushAll(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, stored, puts)
}

func TestUserPrefCache_RemoveEntryChecksRefresh(t *testing.T) {
	fx := createTestUserPrefCache(t)
	ctx := context.Background()

	fx.store.EXPECT().FindByUser(mock.Anything, int64(1)).Return(nil, nil).Twice()
	require.NoError(t, fx.cache.PutEntry(ctx, 1, "a", "b", "c", true))

	fx.store.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()
	fx.clock.Advance(testTTL)
	require.NoError(t, fx.cache.RemoveEntry(ctx, 1, "a", "missing"))
}
