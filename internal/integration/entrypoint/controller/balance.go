package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/usecase/balance"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/entrypoint/dto"
)

// BalanceController handles balance-movement ledger endpoints.
type BalanceController struct {
	createUseCase *balance.CreateMovementUseCase
	getUseCase    *balance.GetMovementUseCase
	listUseCase   *balance.ListMovementsUseCase
	updateUseCase *balance.UpdateMovementUseCase
	deleteUseCase *balance.DeleteMovementUseCase
}

// NewBalanceController creates a new balance controller instance.
func NewBalanceController(
	createUseCase *balance.CreateMovementUseCase,
	getUseCase *balance.GetMovementUseCase,
	listUseCase *balance.ListMovementsUseCase,
	updateUseCase *balance.UpdateMovementUseCase,
	deleteUseCase *balance.DeleteMovementUseCase,
) *BalanceController {
	return &BalanceController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /historial-saldo requests.
func (c *BalanceController) Create(ctx *gin.Context) {
	var req dto.CreateMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeInvalidMovementFields),
		))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de usuario_id invalido",
			string(domainerror.ErrCodeInvalidMovementFields),
		))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), balance.CreateMovementInput{
		UserID: userID,
		Type:   req.Type,
		Amount: req.Amount,
	})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToMovementResponse(output.Movement))
}

// List handles GET /historial-saldo requests. An optional usuario_id query
// filter returns the full ledger of one user.
func (c *BalanceController) List(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	input := balance.ListMovementsInput{
		Skip:  skip,
		Limit: limit,
	}
	if userIDStr := ctx.Query("usuario_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				"formato de usuario_id invalido",
				string(domainerror.ErrCodeInvalidMovementFields),
			))
			return
		}
		input.UserID = &userID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToMovementListResponse(output.Movements))
}

// Get handles GET /historial-saldo/:id requests.
func (c *BalanceController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeMovementNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), balance.GetMovementInput{ID: id})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToMovementResponse(output.Movement))
}

// Update handles PUT /historial-saldo/:id requests.
func (c *BalanceController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeMovementNotFound))
	if !ok {
		return
	}

	var req dto.UpdateMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeInvalidMovementFields),
		))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), balance.UpdateMovementInput{
		ID: id,
		Patch: balance.UpdateMovementPatch{
			Type:   req.Type,
			Amount: req.Amount,
		},
	})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToMovementResponse(output.Movement))
}

// Delete handles DELETE /historial-saldo/:id requests.
func (c *BalanceController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeMovementNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), balance.DeleteMovementInput{ID: id}); err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Exito:   true,
		Mensaje: "movimiento eliminado",
	})
}
