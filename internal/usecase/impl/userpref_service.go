package impl

import (
	"context"
	"strings"

	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/principal"
	"projectforge/internal/usecase"
)

type userPrefService struct {
	cache usecase.PrefCache
}

// NewUserPrefService is the constructor for userPrefService.
func NewUserPrefService(cache usecase.PrefCache) usecase.UserPrefUsecase {
	return &userPrefService{cache: cache}
}

func actingUser(ctx context.Context) (int64, error) {
	p, ok := principal.From(ctx)
	if !ok {
		return 0, domainerrors.NewAccessError(domainerrors.OpSelect, "UserPref")
	}

	return p.UserID, nil
}

func checkPrefKey(area, name string) error {
	if strings.TrimSpace(area) == "" {
		return domainerrors.NewUserError("validation.error.fieldRequired", "area").ForField("area")
	}
	if strings.TrimSpace(name) == "" {
		return domainerrors.NewUserError("validation.error.fieldRequired", "name").ForField("name")
	}

	return nil
}

func (s *userPrefService) Get(ctx context.Context, area, name string) (string, bool, error) {
	userID, err := actingUser(ctx)
	if err != nil {
		return "", false, err
	}

	return s.cache.GetEntry(ctx, userID, area, name)
}

func (s *userPrefService) Put(ctx context.Context, area, name, value string, persistent bool) error {
	userID, err := actingUser(ctx)
	if err != nil {
		return err
	}
	if err := checkPrefKey(area, name); err != nil {
		return err
	}

	return s.cache.PutEntry(ctx, userID, area, name, value, persistent)
}

func (s *userPrefService) Remove(ctx context.Context, area, name string) error {
	userID, err := actingUser(ctx)
	if err != nil {
		return err
	}

	return s.cache.RemoveEntry(ctx, userID, area, name)
}

