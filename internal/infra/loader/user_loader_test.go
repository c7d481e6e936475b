package loader

import (
	"context"
	"testing"

	"projectforge/internal/domain/entity"
	mockRepo "projectforge/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserLoader_DisplayNames(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	l := NewUserLoader(users)
	ctx := context.Background()

	users.EXPECT().FindByIDs(mock.Anything, mock.AnythingOfType("[]int64")).
		RunAndReturn(func(_ context.Context, ids []int64) ([]*entity.User, error) {
			all := map[int64]*entity.User{
				1: {Base: entity.Base{ID: 1}, Username: "kai", Firstname: strPtr("Kai"), Lastname: strPtr("Reinhard")},
				2: {Base: entity.Base{ID: 2}, Username: "horst"},
			}
			var found []*entity.User
			for _, id := range ids {
				if u, ok := all[id]; ok {
					found = append(found, u)
				}
			}

			return found, nil
		})

	names, err := l.DisplayNames(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{1: "Kai Reinhard", 2: "horst", 3: ""}, names)

	// Served from the loader cache.
	name, err := l.DisplayName(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "horst", name)
}

func TestUserLoader_Error(t *testing.T) {
	users := mockRepo.NewMockUserRepository(t)
	l := NewUserLoader(users)

	users.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := l.DisplayName(context.Background(), 7)
	assert.EqualError(t, err, "db down")
}

func TestUserLoader_Context(t *testing.T) {
	_, ok := UserLoaderFrom(context.Background())
	assert.False(t, ok)

	l := NewUserLoader(mockRepo.NewMockUserRepository(t))
	got, ok := UserLoaderFrom(WithUserLoader(context.Background(), l))
	require.True(t, ok)
	assert.Same(t, l, got)
}
