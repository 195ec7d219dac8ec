package controllers

import (
	"errors"

	"storefront/pkg/resp"
	"storefront/services"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto HTTP responses.
func fail(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.BadRequest(c, verr.Msg)
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrLineNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCartEmpty):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
