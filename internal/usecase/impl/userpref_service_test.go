package impl

import (
	"context"
	"testing"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/principal"
	"projectforge/internal/infra/persistence/postgres"
	"projectforge/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryPrefs is a PrefCache without write-back.
type memoryPrefs map[string]string

func (m memoryPrefs) GetEntry(_ context.Context, userID int64, area, name string) (string, bool, error) {
	v, ok := m[formatID(userID)+"/"+area+"/"+name]

	return v, ok, nil
}

func (m memoryPrefs) PutEntry(_ context.Context, userID int64, area, name, value string, _ bool) error {
	m[formatID(userID)+"/"+area+"/"+name] = value

	return nil
}

func (m memoryPrefs) RemoveEntry(_ context.Context, userID int64, area, name string) error {
	delete(m, formatID(userID)+"/"+area+"/"+name)

	return nil
}

func TestUserPrefService_ActingUser(t *testing.T) {
	prefs := memoryPrefs{}
	svc := NewUserPrefService(prefs)
	ctx := principal.With(context.Background(), &principal.Principal{UserID: 7})

	require.NoError(t, svc.Put(ctx, "timesheet", "filter", `{"user":7}`, true))
	v, ok, err := svc.Get(ctx, "timesheet", "filter")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"user":7}`, v)
	assert.Contains(t, prefs, "7/timesheet/filter")

	require.NoError(t, svc.Remove(ctx, "timesheet", "filter"))
	assert.Empty(t, prefs)
}

func TestUserPrefService_Errors(t *testing.T) {
	svc := NewUserPrefService(memoryPrefs{})

	_, _, err := svc.Get(context.Background(), "a", "b")
	assert.True(t, domainerrors.IsAccessError(err))

	ctx := principal.With(context.Background(), &principal.Principal{UserID: 7})
	err = svc.Put(ctx, " ", "b", "1", false)
	var userErr *domainerrors.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "area", userErr.Field)
}

func TestUserPrefDao_UpsertAndDelete(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	dao := NewUserPrefDao(postgres.NewTransactionManager(db), postgres.NewUserPrefRepository(db))
	users := postgres.NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Username: "kai"}
	require.NoError(t, users.Create(ctx, user))

	pref := &entity.UserPref{UserID: user.ID, Area: "a", Name: "n", Value: `"1"`}
	require.NoError(t, dao.Upsert(ctx, pref))
	pref2 := &entity.UserPref{UserID: user.ID, Area: "a", Name: "n", Value: `"2"`}
	require.NoError(t, dao.Upsert(ctx, pref2))

	found, err := dao.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, `"2"`, found[0].Value)

	require.NoError(t, dao.Delete(ctx, user.ID, "a", "n"))
	require.NoError(t, dao.Delete(ctx, user.ID, "a", "n"))
	found, err = dao.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, found)
}
