package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/entrypoint/dto"
)

// handleEntityError maps CRUD-domain errors (games, matches, tickets,
// prizes, movements) to HTTP responses.
func handleEntityError(ctx *gin.Context, err error) {
	var entityErr *domainerror.EntityError
	if errors.As(err, &entityErr) {
		status := http.StatusBadRequest
		if domainerror.IsNotFoundCode(entityErr.Code) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.NewErrorResponse(
			entityErr.Message,
			string(entityErr.Code),
		))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		"ocurrio un error interno",
		"",
	))
}

// parseIDParam parses the :id path parameter, writing a 400 envelope on
// failure.
func parseIDParam(ctx *gin.Context, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de id invalido",
			code,
		))
		return uuid.Nil, false
	}
	return id, true
}
