package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/repositories"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStudentService struct {
	students []*models.Student
	err      error
	calls    int
	filter   repositories.StudentFilter
}

func (f *fakeStudentService) ListStudents(_ context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	f.calls++
	f.filter = filter
	return f.students, f.err
}

type fakeCourseService struct {
	course   *models.Course
	err      error
	calls    int
	courseID int64
}

func (f *fakeCourseService) GetCourseRoster(_ context.Context, courseID int64) (*models.Course, error) {
	f.calls++
	f.courseID = courseID
	return f.course, f.err
}

func newTestRouter(students *fakeStudentService, courses *fakeCourseService) *gin.Engine {
	router := gin.New()
	api := router.Group("/api")
	api.GET("/students", NewStudentController(students).GetStudents)
	api.GET("/students/:course_id", NewCourseController(courses).GetCourseDetail)
	return router
}

func perform(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
