package jobs

import (
	"context"
	"testing"

	"projectforge/config"
	"projectforge/internal/domain/constants"
	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/repository"
	mockRepo "projectforge/internal/mocks/repository"
	"projectforge/internal/testutil"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reindexFixtures struct {
	service     *ReindexService
	handler     *Handler
	searchIndex *mockRepo.MockSearchIndexRepository
}

func createTestReindexService(t *testing.T) reindexFixtures {
	hf := createTestHandler(t, 2)
	txManager := mockRepo.NewMockTransactionManager(t)
	searchIndex := mockRepo.NewMockSearchIndexRepository(t)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().NewSearchIndexRepository().Return(searchIndex)

			return fn(mockFactory)
		}).Maybe()

	cfg := &config.Config{}
	cfg.Query.BlockSize = 2
	service := NewReindexService(ReindexParams{
		Handler:   hf.handler,
		TxManager: txManager,
		Config:    cfg,
		Logger:    testutil.DiscardLogger(),
	})

	return reindexFixtures{service: service, handler: hf.handler, searchIndex: searchIndex}
}

func TestReindexService_BlockWise(t *testing.T) {
	fx := createTestReindexService(t)
	ctx := context.Background()

	fx.searchIndex.EXPECT().CountEntities(mock.Anything, entity.EntityUser).Return(3, nil)
	fx.searchIndex.EXPECT().RebuildSearchText(mock.Anything, entity.EntityUser, 0, 2).Return(2, nil).Once()
	fx.searchIndex.EXPECT().RebuildSearchText(mock.Anything, entity.EntityUser, 2, 2).Return(1, nil).Once()

	h, err := fx.service.Start(ctx, entity.EntityUser)
	require.NoError(t, err)

	assert.Equal(t, StatusFinished, wait(t, h))
	assert.Equal(t, int64(3), h.Progress().Processed())
	assert.Equal(t, int64(3), h.Progress().Total())
	assert.Equal(t, "User: 3", h.Progress().Message())
	assert.Equal(t, constants.JobAreaReindex, h.Info().Area)
}

func TestReindexService_ErrorsAppendedToResult(t *testing.T) {
	fx := createTestReindexService(t)
	ctx := context.Background()

	fx.searchIndex.EXPECT().CountEntities(mock.Anything, entity.EntityGroup).Return(1, nil)
	fx.searchIndex.EXPECT().CountEntities(mock.Anything, entity.EntityCustomer).Return(0, errors.New("no table"))
	fx.searchIndex.EXPECT().RebuildSearchText(mock.Anything, entity.EntityGroup, 0, 2).Return(0, errors.New("lock timeout"))

	h, err := fx.service.Start(ctx, entity.EntityGroup, entity.EntityCustomer)
	require.NoError(t, err)

	assert.Equal(t, StatusFinished, wait(t, h))
	msg := h.Progress().Message()
	assert.Contains(t, msg, "Group: 0, error: block at offset 0: lock timeout")
	assert.Contains(t, msg, "Customer: failed to count")
}

func TestReindexService_AlreadyRunning(t *testing.T) {
	fx := createTestReindexService(t)
	started := make(chan string, 1)
	release := make(chan struct{})

	blocker, err := fx.handler.Submit(context.Background(), gatedJob(constants.JobAreaReindex, started, release, "running"), Options{})
	require.NoError(t, err)
	<-started

	_, err = fx.service.Start(context.Background(), entity.EntityUser)

	var userErr *domainerrors.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "system.admin.reindex.alreadyRunning", userErr.I18nKey)

	close(release)
	wait(t, blocker)
}
