package postgres

import (
	"context"
	"testing"
	"time"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/infra/persistence/model"
	"projectforge/internal/testutil"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func newUser(username string) *entity.User {
	return &entity.User{
		Base:      entity.Base{Created: testNow, LastUpdate: testNow},
		Username:  username,
		Firstname: strPtr("Kai"),
		Lastname:  strPtr("Reinhard"),
		Email:     strPtr(username + "@example.com"),
	}
}

func newOrder(number int, titles ...string) *entity.Order {
	order := &entity.Order{
		Base:      entity.Base{Created: testNow, LastUpdate: testNow},
		Number:    number,
		Title:     "Order " + titles[0],
		Status:    entity.OrderStatusCommitted,
		OrderDate: testNow,
	}
	for i, title := range titles {
		order.Positions = append(order.Positions, &entity.OrderPosition{
			Number:      i + 1,
			Title:       title,
			Status:      entity.OrderPositionStatusCommitted,
			NetSum:      decimal.RequireFromString("1000.00"),
			PaymentType: entity.PaymentTypeFixedPrice,
		})
	}

	return order
}

func TestUserRepository_CreateFindUpdate(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := newUser("kai")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	loaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "kai", loaded.Username)
	assert.Equal(t, "kai@example.com", *loaded.Email)

	loaded.Email = strPtr("other@example.com")
	require.NoError(t, repo.Update(ctx, loaded))

	byName, err := repo.FindByUsername(ctx, "kai")
	require.NoError(t, err)
	assert.Equal(t, "other@example.com", *byName.Email)
}

func TestUserRepository_NotFoundAndDuplicate(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 4711)
	assert.True(t, errors.Is(err, repository.ErrEntityNotFound))

	require.NoError(t, repo.Create(ctx, newUser("kai")))
	err = repo.Create(ctx, newUser("kai"))
	assert.Error(t, err)
}

func TestUserRepository_FetchBlock(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for _, name := range []string{"alpha", "beta", "gamma", "delta"} {
		require.NoError(t, repo.Create(ctx, newUser(name)))
	}
	gamma, err := repo.FindByUsername(ctx, "gamma")
	require.NoError(t, err)
	require.NoError(t, repo.SetDeleted(ctx, gamma.ID, true, testNow))

	t.Run("blocks are ordered by id", func(t *testing.T) {
		first, err := repo.FetchBlock(ctx, &query.Filter{}, 0, 2)
		require.NoError(t, err)
		second, err := repo.FetchBlock(ctx, &query.Filter{}, 2, 2)
		require.NoError(t, err)

		require.Len(t, first, 2)
		require.Len(t, second, 1)
		assert.Equal(t, "alpha", first[0].Username)
		assert.Equal(t, "delta", second[0].Username)
	})

	t.Run("deleted filter", func(t *testing.T) {
		only, err := repo.FetchBlock(ctx, &query.Filter{Deleted: query.DeletedOnly}, 0, 10)
		require.NoError(t, err)
		require.Len(t, only, 1)
		assert.Equal(t, "gamma", only[0].Username)

		all, err := repo.FetchBlock(ctx, &query.Filter{Deleted: query.DeletedInclude}, 0, 10)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("search string", func(t *testing.T) {
		found, err := repo.FetchBlock(ctx, &query.Filter{SearchString: "BET"}, 0, 10)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "beta", found[0].Username)

		wildcard, err := repo.FetchBlock(ctx, &query.Filter{SearchString: "*lta*"}, 0, 10)
		require.NoError(t, err)
		require.Len(t, wildcard, 1)
		assert.Equal(t, "delta", wildcard[0].Username)
	})
}

func TestGroupRepository_Assignments(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	users := NewUserRepository(db)
	groups := NewGroupRepository(db)
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"a", "b", "c"} {
		u := newUser(name)
		require.NoError(t, users.Create(ctx, u))
		ids = append(ids, u.ID)
	}

	group := &entity.Group{
		Base:            entity.Base{Created: testNow, LastUpdate: testNow},
		Name:            "PF_Finance",
		AssignedUserIDs: ids[:2],
	}
	require.NoError(t, groups.Create(ctx, group))

	group.AssignedUserIDs = ids[1:]
	require.NoError(t, groups.Update(ctx, group))

	loaded, err := groups.FindByID(ctx, group.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, ids[1:], loaded.AssignedUserIDs)

	all, err := groups.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOrderRepository_PositionsReconciled(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := newOrder(1, "Concept", "Implementation")
	require.NoError(t, repo.Create(ctx, order))
	require.NotZero(t, order.Positions[0].ID)

	loaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Positions, 2)
	assert.True(t, decimal.RequireFromString("2000").Equal(loaded.NetSum()))

	// Drop position 1, change position 2 and add position 3.
	loaded.Positions = loaded.Positions[1:]
	loaded.Positions[0].Title = "Implementation phase 1"
	loaded.Positions = append(loaded.Positions, &entity.OrderPosition{
		Number:      3,
		Title:       "Support",
		Status:      entity.OrderPositionStatusOpen,
		NetSum:      decimal.RequireFromString("250.50"),
		PaymentType: entity.PaymentTypeTimeAndMaterials,
	})
	require.NoError(t, repo.Update(ctx, loaded))

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Positions, 2)
	assert.Equal(t, 2, reloaded.Positions[0].Number)
	assert.Equal(t, "Implementation phase 1", reloaded.Positions[0].Title)
	assert.Equal(t, 3, reloaded.Positions[1].Number)
	assert.True(t, decimal.RequireFromString("250.5").Equal(reloaded.Positions[1].NetSum))

	orderIDs, err := repo.FindOrderIDsByPositionIDs(ctx, []int64{reloaded.Positions[1].ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{order.ID}, orderIDs)

	found, err := repo.FetchBlock(ctx, &query.Filter{SearchString: "support"}, 0, 10)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	// The dropped position is kept as deleted and its number is free again.
	var removed model.OrderPositionModel
	require.NoError(t, db.First(&removed, order.Positions[0].ID).Error)
	assert.True(t, removed.Deleted)
	allIDs, err := repo.FindPositionIDs(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, allIDs, 3)
	assert.Contains(t, allIDs, removed.ID)

	reloaded.Positions = append(reloaded.Positions, &entity.OrderPosition{
		Number:      1,
		Title:       "Concept revised",
		Status:      entity.OrderPositionStatusOpen,
		PaymentType: entity.PaymentTypeFixedPrice,
	})
	require.NoError(t, repo.Update(ctx, reloaded))
	reloaded, err = repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Positions, 3)
	assert.Equal(t, "Concept revised", reloaded.Positions[0].Title)
	assert.NotEqual(t, removed.ID, reloaded.Positions[0].ID)
}

func TestOrderRepository_RejectsPositionOfOtherOrder(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	first := newOrder(1, "Concept")
	require.NoError(t, repo.Create(ctx, first))
	second := newOrder(2, "Hosting")
	require.NoError(t, repo.Create(ctx, second))

	second.Positions = append(second.Positions, &entity.OrderPosition{
		Base:   entity.Base{ID: first.Positions[0].ID},
		Number: 2,
		Title:  "Moved",
	})
	err := repo.Update(ctx, second)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	loaded, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Positions, 1)
	assert.Equal(t, "Concept", loaded.Positions[0].Title)
	assert.Equal(t, first.ID, loaded.Positions[0].OrderID)

	third := newOrder(3, "Training")
	third.Positions[0].ID = first.Positions[0].ID
	assert.ErrorIs(t, repo.Create(ctx, third), domainerrors.ErrConflict)
}

func TestInvoiceRepository_SumNetByOrderPosition(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	orders := NewOrderRepository(db)
	invoices := NewInvoiceRepository(db)
	ctx := context.Background()

	order := newOrder(7, "Concept", "Implementation")
	require.NoError(t, orders.Create(ctx, order))
	posID := order.Positions[0].ID

	invoice := func(qty, price string) *entity.Invoice {
		return &entity.Invoice{
			Base:    entity.Base{Created: testNow, LastUpdate: testNow},
			Subject: "Invoice",
			Status:  entity.InvoiceStatusGestellt,
			Date:    testNow,
			Positions: []*entity.InvoicePosition{{
				Number:          1,
				Text:            "Concept",
				Quantity:        decimal.RequireFromString(qty),
				UnitPrice:       decimal.RequireFromString(price),
				VAT:             decimal.RequireFromString("0.19"),
				OrderPositionID: &posID,
			}},
		}
	}
	first := invoice("2", "150.25")
	require.NoError(t, invoices.Create(ctx, first))
	cancelled := invoice("1", "99")
	require.NoError(t, invoices.Create(ctx, cancelled))
	require.NoError(t, invoices.SetDeleted(ctx, cancelled.ID, true, testNow))

	sums, err := invoices.SumNetByOrderPosition(ctx, order.ID)
	require.NoError(t, err)
	require.Contains(t, sums, posID)
	assert.True(t, decimal.RequireFromString("300.5").Equal(sums[posID]), sums[posID].String())

	none, err := invoices.SumNetByOrderPosition(ctx, order.ID+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserPrefRepository_Upsert(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := NewUserPrefRepository(db)
	ctx := context.Background()

	pref := &entity.UserPref{UserID: 1, Area: "timesheet", Name: "filter", Value: `{"a":1}`, LastUpdate: testNow}
	require.NoError(t, repo.Upsert(ctx, pref))
	require.NoError(t, repo.Upsert(ctx, &entity.UserPref{UserID: 1, Area: "timesheet", Name: "filter", Value: `{"a":2}`, LastUpdate: testNow}))

	prefs, err := repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, `{"a":2}`, prefs[0].Value)

	require.NoError(t, repo.Delete(ctx, 1, "timesheet", "filter"))
	require.NoError(t, repo.Delete(ctx, 1, "timesheet", "filter"))
	prefs, err = repo.FindByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, prefs)
}

func TestHistoryRepository_FindMastersAndEntityIDs(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	repo := NewHistoryRepository(db)
	ctx := context.Background()

	save := func(entityID int64, modifiedBy string, at time.Time, attrs ...entity.HistoryAttr) int64 {
		master := &entity.HistoryMaster{
			EntityName:   entity.EntityUser,
			EntityID:     entityID,
			EntityOpType: entity.EntityOpUpdate,
			ModifiedBy:   modifiedBy,
			ModifiedAt:   at,
		}
		require.NoError(t, repo.CreateMaster(ctx, master))
		require.NoError(t, repo.CreateAttrs(ctx, master.ID, attrs))

		return master.ID
	}
	older := save(1, "2", testNow, entity.HistoryAttr{
		PropertyName: "email", PropertyTypeClass: "string",
		Value: strPtr("b@x.com"), OldValue: strPtr("a@x.com"), OpType: "Update",
	})
	newer := save(1, "3", testNow.Add(time.Hour))
	save(2, "3", testNow.Add(2*time.Hour), entity.HistoryAttr{
		PropertyName: "firstname", PropertyTypeClass: "string", Value: strPtr("Horst"), OpType: "Insert",
	})

	masters, err := repo.FindMasters(ctx, []string{entity.EntityUser, "org.projectforge.framework.persistence.user.entities.PFUserDO"}, []int64{1})
	require.NoError(t, err)
	require.Len(t, masters, 2)
	assert.Equal(t, newer, masters[0].ID)
	assert.Equal(t, older, masters[1].ID)
	require.Len(t, masters[1].Attributes, 1)
	assert.Equal(t, "a@x.com", *masters[1].Attributes[0].OldValue)

	userID := int64(3)
	ids, err := repo.FindEntityIDs(ctx, []string{entity.EntityUser}, query.HistoryFilter{ModifiedByUserID: &userID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2}, ids)

	ids, err = repo.FindEntityIDs(ctx, []string{entity.EntityUser}, query.HistoryFilter{SearchText: "A@X"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)

	from := testNow.Add(90 * time.Minute)
	ids, err = repo.FindEntityIDs(ctx, []string{entity.EntityUser}, query.HistoryFilter{ModifiedFrom: &from})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)
}

func TestSearchIndexRepository_Rebuild(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	users := NewUserRepository(db)
	index := NewSearchIndexRepository(db)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, newUser("kai")))
	require.NoError(t, db.Exec("UPDATE t_pf_user SET search_text = ''").Error)

	count, err := index.CountEntities(ctx, entity.EntityUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	processed, err := index.RebuildSearchText(ctx, entity.EntityUser, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, processed)

	found, err := users.FetchBlock(ctx, &query.Filter{SearchString: "reinhard"}, 0, 10)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = index.CountEntities(ctx, "Unknown")
	assert.Error(t, err)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewUserRepository().Create(ctx, newUser("kai")); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Table("t_pf_user").Count(&count).Error)
	assert.Zero(t, count)
}
