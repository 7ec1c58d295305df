package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillsetu/marketplace-api/internal/api/metrics"
	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

// JobHandler handles HTTP requests for jobs and applications.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type createJobRequest struct {
	Title          string  `json:"title"           validate:"required"`
	Description    string  `json:"description"     validate:"required"`
	SkillsRequired string  `json:"skills_required"`
	Budget         float64 `json:"budget"          validate:"omitempty,gt=0"`
}

type createJobResponse struct {
	JobID int64 `json:"job_id"`
}

type updateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress completed"`
}

type decideApplicationRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// List returns all jobs, optionally filtered by status.
//
// @Summary      List jobs
// @Tags         jobs
// @Produce      json
// @Param        status  query    string  false  "Filter by status"
// @Success      200     {array}  domain.Job
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context(), ports.JobFilter{
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// Get returns a single job.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job id"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	job, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Create posts a new job owned by the calling client.
//
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  createJobResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Create(c.Request().Context(), identity, ports.CreateJobInput{
		Title:          req.Title,
		Description:    req.Description,
		SkillsRequired: req.SkillsRequired,
		Budget:         req.Budget,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createJobResponse{JobID: job.ID})
}

// UpdateStatus advances a job owned by the caller along its state machine.
//
// @Summary      Update job status
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Job id"
// @Param        body  body      updateJobStatusRequest  true  "Next status"
// @Success      200   {object}  domain.Job
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.UpdateStatus(c.Request().Context(), identity, jobID, domain.JobStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, job)
}

// Apply submits the calling learner's application to a job.
//
// @Summary      Apply to a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job id"
// @Success      201  {object}  domain.Application
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /jobs/{id}/apply [post]
func (h *JobHandler) Apply(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	application, err := h.service.Apply(c.Request().Context(), identity, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyApplied) {
			metrics.ApplicationsTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.ApplicationsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusCreated, application)
}

// MyApplications returns the caller's applications joined with their jobs.
//
// @Summary      List own applications
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ApplicationDetail
// @Router       /applications [get]
func (h *JobHandler) MyApplications(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	applications, err := h.service.MyApplications(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applications)
}

// Decide accepts or rejects a pending application on a job the caller owns.
//
// @Summary      Decide an application
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Application id"
// @Param        body  body      decideApplicationRequest  true  "Decision"
// @Success      200   {object}  domain.Application
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /applications/{id} [patch]
func (h *JobHandler) Decide(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	applicationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req decideApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.service.Decide(c.Request().Context(), identity, applicationID, domain.ApplicationStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, application)
}
