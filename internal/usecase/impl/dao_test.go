package impl

import (
	"context"
	"testing"

	"projectforge/internal/domain/candh"
	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/principal"
	"projectforge/internal/domain/query"
	"projectforge/internal/infra/persistence/model"
	"projectforge/internal/infra/persistence/postgres"
	mockRepo "projectforge/internal/mocks/repository"
	mockSvc "projectforge/internal/mocks/service"
	"projectforge/internal/testutil"
	"projectforge/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// allowAll grants every right.
type allowAll struct{}

func (allowAll) IsRestricted(context.Context) bool                                      { return false }
func (allowAll) HasSelectAccess(context.Context, string) bool                           { return true }
func (allowAll) HasItemSelectAccess(context.Context, string, any) bool                  { return true }
func (allowAll) CheckSelectAccess(context.Context, string) error                        { return nil }
func (allowAll) CheckWriteAccess(context.Context, string, domainerrors.Operation) error { return nil }
func (allowAll) CheckAdmin(context.Context) error                                       { return nil }

// counter counts SetExpired calls.
type counter struct{ n int }

func (c *counter) SetExpired() { c.n++ }

type orderExpiry struct{ ids []int64 }

func (o *orderExpiry) SetExpiredOrders(_ context.Context, ids ...int64) { o.ids = append(o.ids, ids...) }

// daoFixtures wires DAOs against an in-memory database.
type daoFixtures struct {
	db      *gorm.DB
	deps    DaoParams
	history usecase.HistoryUsecase
	hasher  *mockSvc.MockPasswordHasher
	clock   *testutil.StubClock
}

func createTestDaos(t *testing.T) daoFixtures {
	db := testutil.NewTestDatabase(t)
	txManager := postgres.NewTransactionManager(db)
	clock := testutil.FixedClock()
	logger := testutil.DiscardLogger()

	history := NewHistoryService(HistoryServiceParams{
		TxManager: txManager,
		Users:     postgres.NewUserRepository(db),
		Clock:     clock,
		Logger:    logger,
	})

	return daoFixtures{
		db: db,
		deps: DaoParams{
			TxManager: txManager,
			History:   history,
			Access:    allowAll{},
			Clock:     clock,
			Logger:    logger,
		},
		history: history,
		hasher:  mockSvc.NewMockPasswordHasher(t),
		clock:   clock,
	}
}

func (fx daoFixtures) userDao(cache usecase.CacheExpirer) usecase.UserDao {
	return NewUserDao(UserDaoParams{
		Deps:   fx.deps,
		Users:  postgres.NewUserRepository(fx.db),
		Hasher: fx.hasher,
		Cache:  cache,
	})
}

func (fx daoFixtures) masters(t *testing.T, entityName string, id int64) []*entity.HistoryMaster {
	t.Helper()
	masters, err := fx.history.LoadHistory(context.Background(), usecase.EntityRef{EntityName: entityName, EntityID: id})
	require.NoError(t, err)

	return masters
}

func TestUserDao_CreateUser_WritesInsertMaster(t *testing.T) {
	fx := createTestDaos(t)
	cache := &counter{}
	dao := fx.userDao(cache)
	ctx := principal.With(context.Background(), &principal.Principal{UserID: 1})

	fx.hasher.EXPECT().ValidatePasswordStrength("S3cret!pass").Return(nil)
	fx.hasher.EXPECT().Hash("S3cret!pass").Return("hashed", nil)

	id, err := dao.CreateUser(ctx, &entity.User{Username: " kai ", Email: strPtr("a@x.com")}, "S3cret!pass")

	require.NoError(t, err)
	require.NotZero(t, id)
	masters := fx.masters(t, entity.EntityUser, id)
	require.Len(t, masters, 1)
	assert.Equal(t, entity.EntityOpInsert, masters[0].EntityOpType)
	assert.Equal(t, "1", masters[0].ModifiedBy)
	assert.Empty(t, masters[0].Attributes)
	assert.Equal(t, 1, cache.n)

	saved, err := dao.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "kai", saved.Username)
	assert.Equal(t, "hashed", saved.PasswordHash)
}

func TestUserDao_CreateUser_WeakPassword(t *testing.T) {
	fx := createTestDaos(t)
	dao := fx.userDao(nil)

	fx.hasher.EXPECT().ValidatePasswordStrength("123").
		Return(domainerrors.NewUserError("user.changePassword.error.notMinLength", 8).ForField("password"))

	_, err := dao.CreateUser(context.Background(), &entity.User{Username: "kai"}, "123")

	assert.True(t, domainerrors.IsUserError(err))
}

func TestUserDao_Update_WritesChangedProperties(t *testing.T) {
	fx := createTestDaos(t)
	dao := fx.userDao(nil)
	ctx := context.Background()

	user := &entity.User{Username: "kai", Email: strPtr("a@x.com"), PasswordHash: "hashed"}
	id, err := dao.Save(ctx, user)
	require.NoError(t, err)

	changed := &entity.User{Base: entity.Base{ID: id}, Username: "kai", Email: strPtr("b@x.com"), Firstname: strPtr("Horst")}
	status, err := dao.Update(ctx, changed)

	require.NoError(t, err)
	assert.Equal(t, candh.StatusMajor, status)
	assert.Equal(t, "hashed", changed.PasswordHash, "password is never taken from the submitted object")

	masters := fx.masters(t, entity.EntityUser, id)
	require.Len(t, masters, 2)
	update := masters[0]
	assert.Equal(t, entity.EntityOpUpdate, update.EntityOpType)
	assert.Equal(t, "anon", update.ModifiedBy)
	require.Len(t, update.DiffEntries, 2)
	assert.Equal(t, "email", update.DiffEntries[0].PropertyName)
	assert.Equal(t, "a@x.com", *update.DiffEntries[0].OldValue)
	assert.Equal(t, "b@x.com", *update.DiffEntries[0].NewValue)
	assert.Equal(t, "firstname", update.DiffEntries[1].PropertyName)
	assert.Nil(t, update.DiffEntries[1].OldValue)
	assert.Equal(t, "Horst", *update.DiffEntries[1].NewValue)
}

func TestUserDao_Update_NoChange(t *testing.T) {
	fx := createTestDaos(t)
	cache := &counter{}
	dao := fx.userDao(cache)
	ctx := context.Background()

	id, err := dao.Save(ctx, &entity.User{Username: "kai", Email: strPtr("a@x.com")})
	require.NoError(t, err)
	fx.clock.Advance(1)

	same := &entity.User{Base: entity.Base{ID: id}, Username: "kai", Email: strPtr("a@x.com")}
	status, err := dao.Update(ctx, same)

	require.NoError(t, err)
	assert.Equal(t, candh.StatusNone, status)
	assert.Len(t, fx.masters(t, entity.EntityUser, id), 1)
	assert.Equal(t, 1, cache.n, "listeners only see committed changes")
}

func TestUserDao_DuplicateUsername(t *testing.T) {
	fx := createTestDaos(t)
	dao := fx.userDao(nil)
	ctx := context.Background()

	_, err := dao.Save(ctx, &entity.User{Username: "kai"})
	require.NoError(t, err)

	_, err = dao.Save(ctx, &entity.User{Username: "kai"})

	var userErr *domainerrors.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "username", userErr.Field)
}

func TestUserDao_MarkAsDeletedAndUndelete(t *testing.T) {
	fx := createTestDaos(t)
	dao := fx.userDao(nil)
	ctx := context.Background()

	id, err := dao.Save(ctx, &entity.User{Username: "kai"})
	require.NoError(t, err)

	require.NoError(t, dao.MarkAsDeleted(ctx, id))
	err = dao.MarkAsDeleted(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrEntityDeleted)

	list, err := dao.GetList(ctx, query.Filter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, dao.Undelete(ctx, id))
	require.NoError(t, dao.Undelete(ctx, id), "undeleting a live object is a no-op")

	masters := fx.masters(t, entity.EntityUser, id)
	require.Len(t, masters, 3)
	assert.Equal(t, entity.EntityOpUndelete, masters[0].EntityOpType)
	assert.Equal(t, entity.EntityOpMarkAsDeleted, masters[1].EntityOpType)
	assert.Empty(t, masters[1].Attributes)
}

func TestUserDao_ForceDeleteRefused(t *testing.T) {
	fx := createTestDaos(t)
	dao := fx.userDao(nil)

	err := dao.ForceDelete(context.Background(), 1)

	assert.ErrorIs(t, err, domainerrors.ErrForceDeleteNotSupported)
}

func TestDao_AccessDeniedBeforeMutation(t *testing.T) {
	fx := createTestDaos(t)
	access := mockSvc.NewMockAccessChecker(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	fx.deps.Access = access
	fx.deps.TxManager = txManager
	dao := NewCustomerDao(CustomerDaoParams{Deps: fx.deps, Customers: postgres.NewCustomerRepository(fx.db)})

	access.EXPECT().CheckWriteAccess(mock.Anything, entity.EntityCustomer, domainerrors.OpInsert).
		Return(domainerrors.NewAccessError(domainerrors.OpInsert, entity.EntityCustomer))

	_, err := dao.Save(context.Background(), &entity.Customer{Name: "ACME"})

	assert.True(t, domainerrors.IsAccessError(err))
	txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestCustomerDao_Validation(t *testing.T) {
	fx := createTestDaos(t)
	dao := NewCustomerDao(CustomerDaoParams{Deps: fx.deps, Customers: postgres.NewCustomerRepository(fx.db)})
	ctx := context.Background()

	_, err := dao.Save(ctx, &entity.Customer{Name: "  "})
	var userErr *domainerrors.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "name", userErr.Field)

	_, err = dao.Save(ctx, &entity.Customer{Name: "ACME", Status: "UNKNOWN"})
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "status", userErr.Field)

	customer := &entity.Customer{Name: "ACME"}
	_, err = dao.Save(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerStatusActive, customer.Status)
}

func TestOrderDao_UpdatePositionWritesChildMaster(t *testing.T) {
	fx := createTestDaos(t)
	expiry := &orderExpiry{}
	dao := NewOrderDao(OrderDaoParams{Deps: fx.deps, Orders: postgres.NewOrderRepository(fx.db), Cache: expiry})
	ctx := context.Background()

	order := &entity.Order{
		Number:    1,
		Title:     "Portal",
		OrderDate: fx.clock.Now(),
		Positions: []*entity.OrderPosition{{Title: "Design", NetSum: decimal.RequireFromString("1000")}},
	}
	id, err := dao.Save(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, 1, order.Positions[0].Number)

	changed, err := dao.GetByID(ctx, id)
	require.NoError(t, err)
	changed.Positions[0].NetSum = decimal.RequireFromString("1500")
	status, err := dao.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, candh.StatusMajor, status)
	assert.Equal(t, []int64{id, id}, expiry.ids)

	entries, err := dao.GetHistory(ctx, id)
	require.NoError(t, err)
	var positionRows []entity.DisplayHistoryEntry
	for _, e := range entries {
		if e.EntityName == entity.EntityOrderPosition {
			positionRows = append(positionRows, e)
		}
	}
	require.Len(t, positionRows, 1)
	assert.Equal(t, "nettoSumme", positionRows[0].PropertyName)
	assert.Equal(t, "1500", positionRows[0].NewValue)
}

func TestOrderDao_RequiresPositions(t *testing.T) {
	fx := createTestDaos(t)
	dao := NewOrderDao(OrderDaoParams{Deps: fx.deps, Orders: postgres.NewOrderRepository(fx.db)})

	_, err := dao.Save(context.Background(), &entity.Order{Number: 1, Title: "Empty"})

	var userErr *domainerrors.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "fibu.auftrag.error.auftragHatKeinePositionen", userErr.I18nKey)
}

func TestOrderDao_UpdateKeepsPositionsOfOtherOrders(t *testing.T) {
	fx := createTestDaos(t)
	dao := NewOrderDao(OrderDaoParams{Deps: fx.deps, Orders: postgres.NewOrderRepository(fx.db)})
	ctx := context.Background()

	first := &entity.Order{
		Number:    1,
		Title:     "Portal",
		OrderDate: fx.clock.Now(),
		Positions: []*entity.OrderPosition{{Title: "Design", NetSum: decimal.RequireFromString("1000")}},
	}
	firstID, err := dao.Save(ctx, first)
	require.NoError(t, err)
	foreignID := first.Positions[0].ID

	second := &entity.Order{
		Number:    2,
		Title:     "Shop",
		OrderDate: fx.clock.Now(),
		Positions: []*entity.OrderPosition{{Title: "Hosting", NetSum: decimal.RequireFromString("200")}},
	}
	secondID, err := dao.Save(ctx, second)
	require.NoError(t, err)

	changed, err := dao.GetByID(ctx, secondID)
	require.NoError(t, err)
	changed.Positions = append(changed.Positions, &entity.OrderPosition{
		Base:   entity.Base{ID: foreignID},
		Number: 2,
		Title:  "Design",
		NetSum: decimal.RequireFromString("1000"),
	})
	_, err = dao.Update(ctx, changed)
	require.NoError(t, err)

	loaded, err := dao.GetByID(ctx, firstID)
	require.NoError(t, err)
	require.Len(t, loaded.Positions, 1)
	assert.Equal(t, foreignID, loaded.Positions[0].ID)
	assert.Equal(t, firstID, loaded.Positions[0].OrderID)

	loaded, err = dao.GetByID(ctx, secondID)
	require.NoError(t, err)
	require.Len(t, loaded.Positions, 2)
	assert.NotEqual(t, foreignID, loaded.Positions[1].ID)
	assert.Equal(t, secondID, loaded.Positions[1].OrderID)

	// Ids sent with a new order are ignored as well.
	third := &entity.Order{
		Number:    3,
		Title:     "Training",
		OrderDate: fx.clock.Now(),
		Positions: []*entity.OrderPosition{{Base: entity.Base{ID: foreignID}, Title: "Workshop"}},
	}
	_, err = dao.Save(ctx, third)
	require.NoError(t, err)
	assert.NotEqual(t, foreignID, third.Positions[0].ID)

	loaded, err = dao.GetByID(ctx, firstID)
	require.NoError(t, err)
	require.Len(t, loaded.Positions, 1)
	assert.Equal(t, "Design", loaded.Positions[0].Title)
}

func TestOrderDao_RemovedPositionKeepsHistory(t *testing.T) {
	fx := createTestDaos(t)
	dao := NewOrderDao(OrderDaoParams{Deps: fx.deps, Orders: postgres.NewOrderRepository(fx.db)})
	ctx := context.Background()

	order := &entity.Order{
		Number:    1,
		Title:     "Portal",
		OrderDate: fx.clock.Now(),
		Positions: []*entity.OrderPosition{
			{Title: "Design", NetSum: decimal.RequireFromString("1000")},
			{Title: "Build", NetSum: decimal.RequireFromString("4000")},
		},
	}
	id, err := dao.Save(ctx, order)
	require.NoError(t, err)
	removedID := order.Positions[1].ID

	changed, err := dao.GetByID(ctx, id)
	require.NoError(t, err)
	changed.Positions[1].NetSum = decimal.RequireFromString("4500")
	_, err = dao.Update(ctx, changed)
	require.NoError(t, err)

	changed, err = dao.GetByID(ctx, id)
	require.NoError(t, err)
	changed.Positions = changed.Positions[:1]
	status, err := dao.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, candh.StatusMajor, status)
	require.Len(t, changed.Positions, 1)

	var row model.OrderPositionModel
	require.NoError(t, fx.db.First(&row, removedID).Error)
	assert.True(t, row.Deleted)

	entries, err := dao.GetHistory(ctx, id)
	require.NoError(t, err)
	var ops []entity.EntityOpType
	for _, e := range entries {
		if e.EntityName == entity.EntityOrderPosition && e.EntityID == removedID {
			ops = append(ops, e.EntityOpType)
		}
	}
	assert.ElementsMatch(t, []entity.EntityOpType{entity.EntityOpUpdate, entity.EntityOpMarkAsDeleted}, ops)
}
