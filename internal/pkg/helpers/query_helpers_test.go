package helpers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

func newContext(target string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParseOptionalStringQuery(t *testing.T) {
	assert.Nil(t, ParseOptionalStringQuery(newContext("/students"), "last_name"))
	assert.Nil(t, ParseOptionalStringQuery(newContext("/students?last_name="), "last_name"))

	value := ParseOptionalStringQuery(newContext("/students?last_name=Turing"), "last_name")
	require.NotNil(t, value)
	assert.Equal(t, "Turing", *value)
	for raw, want := range map[string]string{
		"%20Turing%20": " Turing ",
		"%20%20":       "  ",
	} {
		value := ParseOptionalStringQuery(newContext("/students?last_name="+raw), "last_name")
		require.NotNil(t, value, raw)
		assert.Equal(t, want, *value)
	}
}

func TestParseOptionalFloatQuery(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    *float64
		wantErr bool
	}{
		{name: "absent", target: "/students"},
		{name: "blank", target: "/students?gpa="},
		{name: "number", target: "/students?gpa=3.5", want: func() *float64 { v := 3.5; return &v }()},
		{name: "integer", target: "/students?gpa=4", want: func() *float64 { v := 4.0; return &v }()},
		{name: "text", target: "/students?gpa=abc", wantErr: true},
		{name: "nan", target: "/students?gpa=NaN", wantErr: true},
		{name: "infinity", target: "/students?gpa=Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOptionalFloatQuery(newContext(tt.target), "gpa")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrBadRequest))

				assert.Equal(t, "gpa", apperrors.ParamOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	c := newContext("/students/7")
	c.Params = gin.Params{{Key: "course_id", Value: "7"}}
	id, err := ParseIDParam(c, "course_id")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	c.Params = gin.Params{{Key: "course_id", Value: "seven"}}
	_, err = ParseIDParam(c, "course_id")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrBadRequest)
}
