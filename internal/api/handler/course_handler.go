package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skillsetu/marketplace-api/internal/api/metrics"
	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

// CourseHandler handles HTTP requests for courses and enrollments.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

type createCourseRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"  validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

type createCourseResponse struct {
	CourseID int64 `json:"course_id"`
}

// List returns all courses, optionally filtered by category and difficulty.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Param        category    query     string  false  "Filter by category"
// @Param        difficulty  query     string  false  "Filter by difficulty"
// @Success      200         {array}   domain.Course
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.List(c.Request().Context(), ports.CourseFilter{
		Category:   c.QueryParam("category"),
		Difficulty: c.QueryParam("difficulty"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// Get returns a single course.
//
// @Summary      Get a course by id
// @Tags         courses
// @Produce      json
// @Param        id   path      int  true  "Course id"
// @Success      200  {object}  domain.Course
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	course, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Create adds a new course owned by the calling mentor.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      201   {object}  createCourseResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	course, err := h.service.Create(c.Request().Context(), identity, ports.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createCourseResponse{CourseID: course.ID})
}

// Enroll adds the calling learner to a course.
//
// @Summary      Enroll in a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Course id"
// @Success      201  {object}  domain.Enrollment
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id}/enroll [post]
func (h *CourseHandler) Enroll(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	courseID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	enrollment, err := h.service.Enroll(c.Request().Context(), identity, courseID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyEnrolled) {
			metrics.EnrollmentsTotal.WithLabelValues("duplicate").Inc()
		}
		return err
	}

	metrics.EnrollmentsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusCreated, enrollment)
}

// MyEnrollments returns the caller's enrollments joined with their courses.
//
// @Summary      List own enrollments
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.EnrollmentDetail
// @Router       /enrollments [get]
func (h *CourseHandler) MyEnrollments(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	enrollments, err := h.service.MyEnrollments(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollments)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
