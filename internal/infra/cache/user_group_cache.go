package cache

import (
	"context"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"projectforge/internal/domain/entity"
	"projectforge/internal/domain/repository"
	"projectforge/internal/domain/service"
	"projectforge/internal/errors"
)

const userGroupCacheName = "userGroups"

type userGroupSnapshot struct {
	generation   uint64
	users        map[int64]*entity.User
	usernames    map[string]int64
	groupNames   map[int64]string
	groupsByUser map[int64][]string
}

// UserGroupCache serves users and their group memberships for access checks
// and display names.
type UserGroupCache struct {
	*Base
	users    repository.UserRepository
	groups   repository.GroupRepository
	snapshot atomic.Pointer[userGroupSnapshot]
}

// NewUserGroupCache creates a user and group cache expiring after ttl.
func NewUserGroupCache(users repository.UserRepository, groups repository.GroupRepository,
	ttl time.Duration, clock service.Clock, logger *slog.Logger,
) *UserGroupCache {
	c := &UserGroupCache{users: users, groups: groups}
	c.Base = NewBase(userGroupCacheName, ttl, clock, logger, c.rebuild)
	c.snapshot.Store(&userGroupSnapshot{})

	return c
}

func (c *UserGroupCache) rebuild(ctx context.Context) error {
	users, err := c.users.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load users")
	}
	groups, err := c.groups.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load groups")
	}

	snap := &userGroupSnapshot{
		users:        make(map[int64]*entity.User, len(users)),
		usernames:    make(map[string]int64, len(users)),
		groupNames:   make(map[int64]string, len(groups)),
		groupsByUser: make(map[int64][]string),
	}
	for _, u := range users {
		snap.users[u.ID] = u
		snap.usernames[u.Username] = u.ID
	}
	for _, g := range groups {
		snap.groupNames[g.ID] = g.Name
		for _, userID := range g.AssignedUserIDs {
			snap.groupsByUser[userID] = append(snap.groupsByUser[userID], g.Name)
		}
	}
	for userID := range snap.groupsByUser {
		slices.Sort(snap.groupsByUser[userID])
	}
	snap.generation = nextGeneration(userGroupCacheName)
	c.snapshot.Store(snap)

	return nil
}

func (c *UserGroupCache) current(ctx context.Context) *userGroupSnapshot {
	c.ensure(ctx)

	return c.snapshot.Load()
}

// GetUser returns a cached user, including deleted and deactivated ones.
func (c *UserGroupCache) GetUser(ctx context.Context, userID int64) (*entity.User, bool) {
	u, ok := c.current(ctx).users[userID]

	return u, ok
}

// GetUserByUsername looks a user up by login name.
func (c *UserGroupCache) GetUserByUsername(ctx context.Context, username string) (*entity.User, bool) {
	snap := c.current(ctx)
	id, ok := snap.usernames[username]
	if !ok {
		return nil, false
	}

	return snap.users[id], true
}

// GroupNames lists the names of the groups the user is assigned to.
func (c *UserGroupCache) GroupNames(ctx context.Context, userID int64) []string {
	return slices.Clone(c.current(ctx).groupsByUser[userID])
}

// IsUserMemberOfGroup reports whether the user belongs to one of the groups.
func (c *UserGroupCache) IsUserMemberOfGroup(ctx context.Context, userID int64, groupNames ...string) bool {
	for _, name := range c.current(ctx).groupsByUser[userID] {
		if slices.Contains(groupNames, name) {
			return true
		}
	}

	return false
}

// IsDemo reports demo users. Unknown users are not demo users.
func (c *UserGroupCache) IsDemo(ctx context.Context, userID int64) bool {
	u, ok := c.GetUser(ctx, userID)

	return ok && u.Demo
}

// DisplayName returns the display name of a cached user.
func (c *UserGroupCache) DisplayName(ctx context.Context, userID int64) (string, bool) {
	u, ok := c.GetUser(ctx, userID)
	if !ok {
		return "", false
	}

	return u.DisplayName(), true
}
