package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/registrar/internal/app/controllers"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	SetupRouter(router, controllers.NewStudentController(nil), controllers.NewCourseController(nil))

	registered := map[string]bool{}
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	assert.Len(t, registered, 2)
	assert.True(t, registered[http.MethodGet+" /api/students"])
	assert.True(t, registered[http.MethodGet+" /api/students/:course_id"])
}
