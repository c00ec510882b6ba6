package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/middleware"
	"github.com/yigit/registrar/internal/pkg/helpers"
)

// StudentController handles student listing
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudents lists students, optionally filtered by last name and gpa
// @Summary List students
// @Description Returns the first and last name of every student matching the optional filters
// @Tags students
// @Produce json
// @Param last_name query string false "Exact last name"
// @Param gpa query number false "Exact GPA"
// @Success 200 {array} dto.StudentNameResponse "Students retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	gpa, err := helpers.ParseOptionalFloatQuery(ctx, "gpa")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	filter := repositories.StudentFilter{
		LastName: helpers.ParseOptionalStringQuery(ctx, "last_name"),
		GPA:      gpa,
	}

	students, err := c.studentService.ListStudents(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStudentNameResponses(students))
}
