package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// CourseController handles course detail requests
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetCourseDetail returns the enrolled students of a course keyed by course name
// @Summary Get course roster
// @Description Returns the number of enrolled students and their details for one course
// @Tags students
// @Produce json
// @Param course_id path int true "Course ID" Format(int64)
// @Success 200 {object} dto.CourseRosterResponse "Roster retrieved successfully"
// @Failure 404 "Course not found or course ID is not an integer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{course_id} [get]
func (c *CourseController) GetCourseDetail(ctx *gin.Context) {
	courseID, err := helpers.ParseIDParam(ctx, "course_id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.GetCourseRoster(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCourseRosterResponse(course))
}
