package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookify/backend/internal/service"
	"github.com/pageza/cookify/backend/internal/types"
)

var errInvalidID = errors.New("invalid recipe id")

// respondError maps service errors to status codes. Anything unrecognized
// is handed to middleware.ErrorHandler as a 500.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, types.ErrorResponse{Error: verr.Error(), Errors: verr.Messages})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Recipe not found"})
	case errors.Is(err, service.ErrModalOpen):
		c.JSON(http.StatusConflict, types.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotAnImage), errors.Is(err, service.ErrUnknownTheme):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrImageTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{Error: err.Error()})
	default:
		abortWithError(c, err)
	}
}

// abortWithError leaves the status and body to middleware.ErrorHandler,
// which logs err and answers 500
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: errInvalidID.Error()})
		return 0, false
	}
	return id, true
}
