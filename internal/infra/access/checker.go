// Package access implements the access rules of the historized entity types
// on top of the acting principal and the user group cache.
package access

import (
	"context"
	"log/slog"

	"projectforge/internal/domain/constants"
	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/principal"
	"projectforge/internal/domain/service"
)

// Directory answers membership questions. *cache.UserGroupCache implements it.
type Directory interface {
	GetUser(ctx context.Context, userID int64) (*entity.User, bool)
	IsUserMemberOfGroup(ctx context.Context, userID int64, groupNames ...string) bool
}

// writeGroups lists the groups allowed to modify an entity type besides admins.
var writeGroups = map[string][]string{
	entity.EntityCustomer:        {constants.GroupFinance},
	entity.EntityOrder:           {constants.GroupFinance},
	entity.EntityOrderPosition:   {constants.GroupFinance},
	entity.EntityInvoice:         {constants.GroupFinance},
	entity.EntityInvoicePosition: {constants.GroupFinance},
}

// readableByAll lists the types every unrestricted user may list.
var readableByAll = map[string]bool{
	entity.EntityUser:  true,
	entity.EntityGroup: true,
}

type checker struct {
	directory Directory
	logger    *slog.Logger
}

// NewChecker creates the AccessChecker.
func NewChecker(directory Directory, logger *slog.Logger) service.AccessChecker {
	return &checker{directory: directory, logger: logger}
}

type actor struct {
	userID     int64
	restricted bool
	demo       bool
	deleted    bool
}

// actor resolves the principal against the directory so that changes to a
// user take effect before the token expires.
func (c *checker) actor(ctx context.Context) (*actor, bool) {
	p, ok := principal.From(ctx)
	if !ok {
		return nil, false
	}
	a := &actor{userID: p.UserID, restricted: p.Restricted, demo: p.Demo}
	if u, found := c.directory.GetUser(ctx, p.UserID); found {
		a.restricted = u.Restricted
		a.demo = u.Demo
		a.deleted = u.Deleted || u.Deactivated
	}

	return a, !a.deleted
}

func (c *checker) isAdmin(ctx context.Context, a *actor) bool {
	return c.directory.IsUserMemberOfGroup(ctx, a.userID, constants.GroupAdmin)
}

func (c *checker) inGroups(ctx context.Context, a *actor, entityName string) bool {
	if c.isAdmin(ctx, a) {
		return true
	}
	groups, ok := writeGroups[entityName]

	return ok && c.directory.IsUserMemberOfGroup(ctx, a.userID, groups...)
}

func (c *checker) IsRestricted(ctx context.Context) bool {
	a, ok := c.actor(ctx)

	return !ok || a.restricted
}

func (c *checker) HasSelectAccess(ctx context.Context, entityName string) bool {
	a, ok := c.actor(ctx)
	if !ok || a.restricted {
		return false
	}
	if readableByAll[entityName] {
		return true
	}

	return c.inGroups(ctx, a, entityName)
}

func (c *checker) HasItemSelectAccess(ctx context.Context, entityName string, item any) bool {
	if !c.HasSelectAccess(ctx, entityName) {
		return false
	}
	a, _ := c.actor(ctx)
	// Only admins see deleted users and groups.
	switch v := item.(type) {
	case *entity.User:
		return !v.Deleted || c.isAdmin(ctx, a)
	case *entity.Group:
		return !v.Deleted || c.isAdmin(ctx, a)
	default:
		return true
	}
}

func (c *checker) CheckSelectAccess(ctx context.Context, entityName string) error {
	if c.HasSelectAccess(ctx, entityName) {
		return nil
	}

	return domainerrors.NewAccessError(domainerrors.OpSelect, entityName)
}

func (c *checker) CheckWriteAccess(ctx context.Context, entityName string, op domainerrors.Operation) error {
	a, ok := c.actor(ctx)
	if !ok || a.restricted || a.demo || !c.inGroups(ctx, a, entityName) {
		if ok {
			c.logger.WarnContext(ctx, "Write access denied",
				slog.Int64("userID", a.userID),
				slog.String("entity", entityName),
				slog.String("op", string(op)))
		}

		return domainerrors.NewAccessError(op, entityName)
	}

	return nil
}

func (c *checker) CheckAdmin(ctx context.Context) error {
	a, ok := c.actor(ctx)
	if ok && c.isAdmin(ctx, a) {
		return nil
	}

	return &domainerrors.AccessError{
		Operation: domainerrors.OpUpdate,
		I18nKey:   "access.exception.admin",
	}
}
