package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/models/dto"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/dberrors"
	"github.com/yigit/registrar/internal/pkg/logger"
)

// HandleAPIError logs err on the request logger and writes the matching response.
// Not found is a bare 404; bad input is a 400; everything else is a 500.
func HandleAPIError(c *gin.Context, err error) {
	lgr := logger.FromContext(c.Request.Context())
	requestID := GetRequestID(c)

	kind := apperrors.KindOf(err)
	dbKind := dberrors.Classify(err)
	if kind == apperrors.KindInternal && dbKind == dberrors.KindData {
		kind = apperrors.KindBadRequest
	}

	switch kind {
	case apperrors.KindNotFound:
		lgr.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Resource not found")
		c.AbortWithStatus(http.StatusNotFound)

	case apperrors.KindBadRequest:
		message := err.Error()
		if dbKind == dberrors.KindData {
			message = "invalid request parameter"
		}
		lgr.Debug().Err(err).Msg("Rejected request")
		c.AbortWithStatusJSON(http.StatusBadRequest,
			dto.NewErrorResponse(requestID, dto.ErrorCodeBadRequest, message).ForParam(apperrors.ParamOf(err)))

	default:
		code, event := dto.ErrorCodeInternal, lgr.Error()
		if dberrors.IsDatabaseError(err) {
			code = dto.ErrorCodeDatabase
			event = event.Str("db_kind", string(dbKind))
		}
		event.Err(err).Str("kind", kind.String()).Msg("Request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(requestID, code, "internal server error"))
	}
}
