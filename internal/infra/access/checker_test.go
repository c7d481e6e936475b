package access

import (
	"context"
	"slices"
	"testing"

	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/principal"
	"projectforge/internal/testutil"

	"github.com/stretchr/testify/assert"
)

type directory struct {
	users  map[int64]*entity.User
	groups map[int64][]string
}

func (d *directory) GetUser(_ context.Context, userID int64) (*entity.User, bool) {
	u, ok := d.users[userID]

	return u, ok
}

func (d *directory) IsUserMemberOfGroup(_ context.Context, userID int64, groupNames ...string) bool {
	for _, g := range d.groups[userID] {
		if slices.Contains(groupNames, g) {
			return true
		}
	}

	return false
}

const (
	adminID      = 1
	financeID    = 2
	plainID      = 3
	restrictedID = 4
	demoID       = 5
	deactivated  = 6
)

func newTestDirectory() *directory {
	return &directory{
		users: map[int64]*entity.User{
			adminID:      {Base: entity.Base{ID: adminID}, Username: "admin"},
			financeID:    {Base: entity.Base{ID: financeID}, Username: "finance"},
			plainID:      {Base: entity.Base{ID: plainID}, Username: "plain"},
			restrictedID: {Base: entity.Base{ID: restrictedID}, Username: "restricted", Restricted: true},
			demoID:       {Base: entity.Base{ID: demoID}, Username: "demo", Demo: true},
			deactivated:  {Base: entity.Base{ID: deactivated}, Username: "gone", Deactivated: true},
		},
		groups: map[int64][]string{
			adminID:     {"PF_Admin"},
			financeID:   {"PF_Finance"},
			demoID:      {"PF_Finance"},
			deactivated: {"PF_Admin"},
		},
	}
}

func as(userID int64) context.Context {
	return principal.With(context.Background(), &principal.Principal{UserID: userID})
}

func TestChecker_SelectAccess(t *testing.T) {
	c := NewChecker(newTestDirectory(), testutil.DiscardLogger())

	assert.True(t, c.HasSelectAccess(as(plainID), entity.EntityUser))
	assert.True(t, c.HasSelectAccess(as(plainID), entity.EntityGroup))
	assert.False(t, c.HasSelectAccess(as(plainID), entity.EntityOrder))
	assert.True(t, c.HasSelectAccess(as(financeID), entity.EntityOrder))
	assert.True(t, c.HasSelectAccess(as(adminID), entity.EntityInvoice))

	assert.True(t, c.IsRestricted(as(restrictedID)))
	assert.False(t, c.HasSelectAccess(as(restrictedID), entity.EntityUser))
	assert.True(t, c.IsRestricted(context.Background()), "no principal")
	assert.False(t, c.HasSelectAccess(as(deactivated), entity.EntityUser))

	err := c.CheckSelectAccess(as(plainID), entity.EntityInvoice)
	assert.True(t, domainerrors.IsAccessError(err))
	assert.NoError(t, c.CheckSelectAccess(as(financeID), entity.EntityInvoice))
}

func TestChecker_ItemSelectAccess(t *testing.T) {
	c := NewChecker(newTestDirectory(), testutil.DiscardLogger())
	deletedUser := &entity.User{Base: entity.Base{ID: 9, Deleted: true}}

	assert.False(t, c.HasItemSelectAccess(as(plainID), entity.EntityUser, deletedUser))
	assert.True(t, c.HasItemSelectAccess(as(adminID), entity.EntityUser, deletedUser))
	assert.True(t, c.HasItemSelectAccess(as(plainID), entity.EntityUser, &entity.User{}))
	assert.False(t, c.HasItemSelectAccess(as(plainID), entity.EntityOrder, &entity.Order{}))
}

func TestChecker_WriteAccess(t *testing.T) {
	c := NewChecker(newTestDirectory(), testutil.DiscardLogger())

	assert.NoError(t, c.CheckWriteAccess(as(adminID), entity.EntityUser, domainerrors.OpInsert))
	assert.NoError(t, c.CheckWriteAccess(as(financeID), entity.EntityOrder, domainerrors.OpUpdate))

	err := c.CheckWriteAccess(as(financeID), entity.EntityUser, domainerrors.OpUpdate)
	var accessErr *domainerrors.AccessError
	assert.ErrorAs(t, err, &accessErr)
	assert.Equal(t, domainerrors.OpUpdate, accessErr.Operation)
	assert.Equal(t, entity.EntityUser, accessErr.EntityName)

	assert.Error(t, c.CheckWriteAccess(as(demoID), entity.EntityOrder, domainerrors.OpInsert), "demo users may not write")
	assert.Error(t, c.CheckWriteAccess(as(plainID), entity.EntityCustomer, domainerrors.OpDelete))
	assert.Error(t, c.CheckWriteAccess(context.Background(), entity.EntityCustomer, domainerrors.OpDelete))
}

func TestChecker_CheckAdmin(t *testing.T) {
	c := NewChecker(newTestDirectory(), testutil.DiscardLogger())

	assert.NoError(t, c.CheckAdmin(as(adminID)))
	assert.True(t, domainerrors.IsAccessError(c.CheckAdmin(as(financeID))))
	assert.Error(t, c.CheckAdmin(as(deactivated)))
}
