package handler

import (
	"context"
	"net/http"

	"projectforge/internal/delivery/api/middleware"
	"projectforge/internal/delivery/api/response"
	"projectforge/internal/domain/constants"
	domainerrors "projectforge/internal/domain/errors"
	"projectforge/internal/domain/principal"
	"projectforge/internal/infra/jobs"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobRegistry is the part of the job handler exposed over HTTP.
type JobRegistry interface {
	List(area string) []jobs.Info
	Get(id string) (jobs.Info, error)
	Cancel(id string) error
}

// Reindexer starts the search index rebuild.
type Reindexer interface {
	Start(ctx context.Context, entityNames ...string) (*jobs.Handle, error)
}

// JobHandlerParams holds dependencies for JobHandler, injected by Fx.
type JobHandlerParams struct {
	fx.In

	Jobs    JobRegistry
	Reindex Reindexer
}

// JobHandler lists and cancels background jobs.
type JobHandler struct {
	jobs    JobRegistry
	reindex Reindexer
}

// NewJobHandler is the constructor for JobHandler
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{jobs: params.Jobs, reindex: params.Reindex}
}

// ReindexRequest selects the entity types to reindex, all when empty.
type ReindexRequest struct {
	EntityNames []string `json:"entityNames"`
}

// visible reports whether p may see the job. Admins see all jobs, other
// users their own ones.
func visible(p *principal.Principal, info jobs.Info) bool {
	if p.IsMemberOf(constants.GroupAdmin) {
		return true
	}

	return info.UserID != nil && *info.UserID == p.UserID
}

// List returns the jobs of an optional area.
func (h *JobHandler) List(c echo.Context) error {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Not authenticated")
	}

	infos := h.jobs.List(c.QueryParam("area"))
	result := make([]jobs.Info, 0, len(infos))
	for _, info := range infos {
		if visible(p, info) {
			result = append(result, info)
		}
	}

	return response.Success(c, http.StatusOK, result)
}

// Get returns one job.
func (h *JobHandler) Get(c echo.Context) error {
	info, err := h.visibleJob(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, info)
}

// Cancel asks a job to stop.
func (h *JobHandler) Cancel(c echo.Context) error {
	info, err := h.visibleJob(c)
	if err != nil {
		return err
	}
	if err := h.jobs.Cancel(info.ID); err != nil {
		return err
	}

	info, err = h.jobs.Get(info.ID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, info)
}

func (h *JobHandler) visibleJob(c echo.Context) (jobs.Info, error) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		return jobs.Info{}, domainerrors.NewAccessError(domainerrors.OpSelect, "Job")
	}

	id := c.Param("id")
	info, err := h.jobs.Get(id)
	if err != nil {
		return jobs.Info{}, err
	}
	if !visible(p, info) {
		// Foreign jobs are reported as missing.
		return jobs.Info{}, domainerrors.ErrJobNotFound.WithDetails(id)
	}

	return info, nil
}

// Reindex starts the rebuild of the search index.
func (h *JobHandler) Reindex(c echo.Context) error {
	var req ReindexRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid reindex input")
		}
	}

	handle, err := h.reindex.Start(c.Request().Context(), req.EntityNames...)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, handle.Info())
}
