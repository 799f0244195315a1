package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/usecase/prize"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/entrypoint/dto"
)

// PrizeController handles prize ("premio") endpoints.
type PrizeController struct {
	createUseCase *prize.CreatePrizeUseCase
	getUseCase    *prize.GetPrizeUseCase
	listUseCase   *prize.ListPrizesUseCase
	updateUseCase *prize.UpdatePrizeUseCase
	deleteUseCase *prize.DeletePrizeUseCase
}

// NewPrizeController creates a new prize controller instance.
func NewPrizeController(
	createUseCase *prize.CreatePrizeUseCase,
	getUseCase *prize.GetPrizeUseCase,
	listUseCase *prize.ListPrizesUseCase,
	updateUseCase *prize.UpdatePrizeUseCase,
	deleteUseCase *prize.DeletePrizeUseCase,
) *PrizeController {
	return &PrizeController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /premios requests.
func (c *PrizeController) Create(ctx *gin.Context) {
	var req dto.CreatePrizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeInvalidPrizeFields),
		))
		return
	}

	gameID, err := uuid.Parse(req.GameID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de juego_id invalido",
			string(domainerror.ErrCodeInvalidPrizeFields),
		))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), prize.CreatePrizeInput{
		GameID:      gameID,
		Description: req.Description,
		Value:       req.Value,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToPrizeResponse(output.Prize))
}

// List handles GET /premios requests. An optional juego_id query filter
// returns all prizes of one game.
func (c *PrizeController) List(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	input := prize.ListPrizesInput{
		Skip:  skip,
		Limit: limit,
	}
	if gameIDStr := ctx.Query("juego_id"); gameIDStr != "" {
		gameID, err := uuid.Parse(gameIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				"formato de juego_id invalido",
				string(domainerror.ErrCodeInvalidPrizeFields),
			))
			return
		}
		input.GameID = &gameID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPrizeListResponse(output.Prizes))
}

// Get handles GET /premios/:id requests.
func (c *PrizeController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodePrizeNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), prize.GetPrizeInput{ID: id})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPrizeResponse(output.Prize))
}

// Update handles PUT /premios/:id requests.
func (c *PrizeController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodePrizeNotFound))
	if !ok {
		return
	}

	var req dto.UpdatePrizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeInvalidPrizeFields),
		))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), prize.UpdatePrizeInput{
		ID: id,
		Patch: prize.UpdatePrizePatch{
			Description: req.Description,
			Value:       req.Value,
			UpdatedBy:   req.UpdatedBy,
		},
	})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPrizeResponse(output.Prize))
}

// Delete handles DELETE /premios/:id requests.
func (c *PrizeController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodePrizeNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), prize.DeletePrizeInput{ID: id}); err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Exito:   true,
		Mensaje: "premio eliminado",
	})
}
