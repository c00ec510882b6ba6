package helpers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// ParseOptionalStringQuery returns nil when the query parameter is missing or empty.
// Any other value, whitespace included, is returned as sent.
func ParseOptionalStringQuery(c *gin.Context, name string) *string {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	return &value
}

// ParseOptionalFloatQuery returns nil when the query parameter is missing or blank.
// Values that are not finite numbers produce a bad request error naming the parameter.
func ParseOptionalFloatQuery(c *gin.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, apperrors.InvalidParam(name, name+" must be a finite number")
	}
	return &value, nil
}

// ParseIDParam reads an integer path parameter. A non-integer segment addresses
// no resource, so it yields a not found error rather than a bad request.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NotFound(name + " does not name a resource")
	}
	return id, nil
}
