package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "course not found", err: ErrCourseNotFound, want: KindNotFound},
		{name: "wrapped not found", err: fmt.Errorf("roster: %w", ErrStudentNotFound), want: KindNotFound},
		{name: "invalid gpa", err: ErrInvalidGPA, want: KindBadRequest},
		{name: "enrollment exists", err: ErrEnrollmentExists, want: KindConflict},
		{name: "plain", err: errors.New("boom"), want: KindInternal},
		{name: "nil", err: nil, want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestInvalidParam(t *testing.T) {
	err := fmt.Errorf("parse: %w", InvalidParam("gpa", "gpa must be a finite number"))

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "gpa", ParamOf(err))
	assert.Equal(t, "parse: gpa must be a finite number", err.Error())
}

func TestParamOf_NoParam(t *testing.T) {
	assert.Empty(t, ParamOf(ErrCourseNotFound))
	assert.Empty(t, ParamOf(errors.New("boom")))
}

func TestError_MessageFallback(t *testing.T) {
	assert.Equal(t, "bad request", (&Error{Err: ErrBadRequest}).Error())
	assert.Equal(t, "unknown error", (&Error{}).Error())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "internal", Kind(99).String())
}
