// Package principal carries the acting user through context.Context.
package principal

import (
	"context"
	"slices"
	"strconv"
)

type ctxKey struct{}

// Principal is the authenticated user of a request or job.
type Principal struct {
	UserID     int64
	Username   string
	Groups     []string
	Restricted bool
	Demo       bool
}

// IsMemberOf reports whether the principal belongs to one of the groups.
func (p *Principal) IsMemberOf(groups ...string) bool {
	if p == nil {
		return false
	}
	for _, g := range groups {
		if slices.Contains(p.Groups, g) {
			return true
		}
	}

	return false
}

// IDString is the user id as stored in history records.
func (p *Principal) IDString() string {
	return strconv.FormatInt(p.UserID, 10)
}

// With returns a copy of ctx carrying p.
func With(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// From extracts the principal, if any.
func From(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(*Principal)

	return p, ok && p != nil
}
