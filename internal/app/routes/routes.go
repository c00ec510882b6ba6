package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
) {
	api := router.Group("/api")

	students := api.Group("/students")
	{
		students.GET("", studentController.GetStudents)
		students.GET("/:course_id", courseController.GetCourseDetail)
	}
}
