package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"projectforge/config"
	"projectforge/internal/domain/constants"
	"projectforge/internal/domain/entity"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/query"
	"projectforge/internal/domain/repository"
	"projectforge/internal/errors"

	"go.uber.org/fx"
)

// ReindexService rebuilds the search text of historized entities. Only one
// reindex runs at a time.
type ReindexService struct {
	handler   *Handler
	txManager repository.TransactionManager
	blockSize int
	logger    *slog.Logger

	mu sync.Mutex
}

// ReindexParams holds dependencies for ReindexService, injected by Fx.
type ReindexParams struct {
	fx.In

	Handler   *Handler
	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReindexService is the constructor for ReindexService.
func NewReindexService(params ReindexParams) *ReindexService {
	blockSize := query.DefaultBlockSize
	if params.Config != nil && params.Config.Query.BlockSize > 0 {
		blockSize = params.Config.Query.BlockSize
	}

	return &ReindexService{
		handler:   params.Handler,
		txManager: params.TxManager,
		blockSize: blockSize,
		logger:    params.Logger,
	}
}

// Start submits a reindex of the given types, or of all types when none are
// given. It fails with a user error while another reindex is unfinished.
func (s *ReindexService) Start(ctx context.Context, entityNames ...string) (*Handle, error) {
	if len(entityNames) == 0 {
		entityNames = entity.EntityNames()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handler.IsRunning(constants.JobAreaReindex) {
		return nil, domainerrors.NewUserError("system.admin.reindex.alreadyRunning")
	}

	return s.handler.Submit(ctx, &reindexJob{service: s, entityNames: entityNames}, Options{Strategy: QueuePerQueue})
}

type reindexJob struct {
	service     *ReindexService
	entityNames []string
}

func (j *reindexJob) Title() string {
	return "Reindex " + strings.Join(j.entityNames, ", ")
}

func (j *reindexJob) Area() string {
	return constants.JobAreaReindex
}

// Run processes the types one after another. Failures of one type are
// reported in the result text and do not stop the others.
func (j *reindexJob) Run(ctx context.Context, p *Progress) error {
	counts := make(map[string]int64, len(j.entityNames))
	var total int64
	for _, name := range j.entityNames {
		var n int64
		err := j.service.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			var err error
			n, err = repos.NewSearchIndexRepository().CountEntities(ctx, name)

			return err
		})
		if err != nil {
			counts[name] = -1
			j.service.logger.ErrorContext(ctx, "Failed to count entities for reindex",
				slog.String("entity", name), slog.Any("error", err))

			continue
		}
		counts[name] = n
		total += n
	}
	p.SetTotal(total)

	var result strings.Builder
	for _, name := range j.entityNames {
		if p.Canceled() {
			break
		}
		if counts[name] < 0 {
			fmt.Fprintf(&result, "%s: failed to count\n", name)

			continue
		}
		done, err := j.rebuild(ctx, p, name, counts[name])
		if err != nil {
			j.service.logger.ErrorContext(ctx, "Reindex of entity type failed",
				slog.String("entity", name), slog.Int("processed", done), slog.Any("error", err))
			fmt.Fprintf(&result, "%s: %d, error: %s\n", name, done, err.Error())

			continue
		}
		fmt.Fprintf(&result, "%s: %d\n", name, done)
	}
	p.SetMessage(strings.TrimSpace(result.String()))

	return nil
}

func (j *reindexJob) rebuild(ctx context.Context, p *Progress, name string, count int64) (int, error) {
	done := 0
	for offset := 0; int64(offset) < count; offset += j.service.blockSize {
		if p.Canceled() {
			return done, nil
		}
		var n int
		err := j.service.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			var err error
			n, err = repos.NewSearchIndexRepository().RebuildSearchText(ctx, name, offset, j.service.blockSize)

			return err
		})
		if err != nil {
			return done, errors.Wrapf(err, "block at offset %d", offset)
		}
		done += n
		p.Add(int64(n))
		if n < j.service.blockSize {
			break
		}
	}

	return done, nil
}
