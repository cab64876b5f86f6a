package httpHandler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"course-server/entities"
	"course-server/middleware"
	"course-server/repositories"
	"course-server/usecases"

	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	useCase *usecases.CourseUseCase
}

func NewCourseHandler(useCase *usecases.CourseUseCase) *CourseHandler {
	return &CourseHandler{
		useCase: useCase,
	}
}

// CreateCourse handles POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
		return
	}

	var course entities.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []string{"request body must be valid JSON"},
		})
		return
	}

	if err := h.useCase.CreateCourse(&course, principal); err != nil {
		h.respondError(c, err, "create course")
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/courses/%d", course.ID))
	c.Status(http.StatusCreated)
}

// GetCourse handles GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	course, err := h.useCase.GetCourse(id)
	if err != nil {
		h.respondError(c, err, "get course")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": course})
}

// GetAllCourses handles GET /api/v1/courses
func (h *CourseHandler) GetAllCourses(c *gin.Context) {
	courses, err := h.useCase.GetAllCourses()
	if err != nil {
		h.respondError(c, err, "list courses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  courses,
		"count": len(courses),
	})
}

// UpdateCourse handles PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
		return
	}

	id, ok := courseID(c)
	if !ok {
		return
	}

	var course entities.Course
	if err := c.ShouldBindJSON(&course); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": []string{"request body must be valid JSON"},
		})
		return
	}
	course.ID = id

	if err := h.useCase.UpdateCourse(&course, principal); err != nil {
		h.respondError(c, err, "update course")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCourse handles DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	principal, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access Denied"})
		return
	}

	id, ok := courseID(c)
	if !ok {
		return
	}

	if err := h.useCase.DeleteCourse(id, principal); err != nil {
		h.respondError(c, err, "delete course")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) respondError(c *gin.Context, err error, op string) {
	var verrs entities.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
	case errors.Is(err, usecases.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": "Access Denied"})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
	default:
		log.Printf("request %s: %s failed: %v", middleware.RequestIDFrom(c), op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	}
}

func courseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return 0, false
	}
	return uint(id), true
}
