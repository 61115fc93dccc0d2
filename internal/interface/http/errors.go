package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campusbridge/student-support-api/internal/application"
	"github.com/campusbridge/student-support-api/internal/domain/repository"
	"github.com/campusbridge/student-support-api/pkg/response"
)

// writeMutationError maps service errors from update/delete flows onto the
// status taxonomy: 404 before 403, everything else 500 with the internal
// detail kept server-side.
func writeMutationError(c *gin.Context, logger *logrus.Logger, err error, kind string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, kind+" not found", nil)
	case errors.Is(err, application.ErrNotAuthorized):
		response.Error[any](c, http.StatusForbidden, "You are not authorized to modify this "+kind, nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("kind", kind).Error("mutation failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Server error", nil)
	}
}
