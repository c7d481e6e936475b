package jobs

import (
	"context"

	"projectforge/config"
	"projectforge/internal/domain/constants"

	"go.uber.org/fx"
)

// Flusher writes modified cache entries back to the database.
type Flusher interface {
	FlushAll(ctx context.Context) error
}

type flushJob struct {
	flusher Flusher
}

func (j *flushJob) Title() string { return "Flush user preferences" }
func (j *flushJob) Area() string  { return constants.JobAreaUserPrefs }

func (j *flushJob) Run(ctx context.Context, _ *Progress) error {
	return j.flusher.FlushAll(ctx)
}

// FlushParams defines the parameters of the periodic user preference flush.
type FlushParams struct {
	fx.In

	Handler *Handler
	Config  *config.Config
	Prefs   Flusher `name:"userPrefs" optional:"true"`
}

// ScheduleUserPrefFlush registers the write-back of user preferences.
func ScheduleUserPrefFlush(params FlushParams) {
	if params.Prefs == nil {
		return
	}
	params.Handler.Schedule(Periodic{
		Interval: params.Config.Jobs.UserPrefFlushInterval,
		NewJob:   func() Job { return &flushJob{flusher: params.Prefs} },
		Options:  Options{Strategy: QueuePerQueue},
	})
}
