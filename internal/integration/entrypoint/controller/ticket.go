package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/usecase/ticket"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/entrypoint/dto"
)

// TicketController handles ticket ("boleto") endpoints.
type TicketController struct {
	createUseCase *ticket.CreateTicketUseCase
	getUseCase    *ticket.GetTicketUseCase
	listUseCase   *ticket.ListTicketsUseCase
	updateUseCase *ticket.UpdateTicketUseCase
	deleteUseCase *ticket.DeleteTicketUseCase
}

// NewTicketController creates a new ticket controller instance.
func NewTicketController(
	createUseCase *ticket.CreateTicketUseCase,
	getUseCase *ticket.GetTicketUseCase,
	listUseCase *ticket.ListTicketsUseCase,
	updateUseCase *ticket.UpdateTicketUseCase,
	deleteUseCase *ticket.DeleteTicketUseCase,
) *TicketController {
	return &TicketController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /boletos requests.
func (c *TicketController) Create(ctx *gin.Context) {
	var req dto.CreateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeInvalidTicketFields),
		))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de usuario_id invalido",
			string(domainerror.ErrCodeInvalidTicketFields),
		))
		return
	}
	gameID, err := uuid.Parse(req.GameID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de juego_id invalido",
			string(domainerror.ErrCodeInvalidTicketFields),
		))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), ticket.CreateTicketInput{
		UserID:    userID,
		GameID:    gameID,
		Numbers:   req.Numbers,
		Cost:      req.Cost,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToTicketResponse(output.Ticket))
}

// List handles GET /boletos requests.
func (c *TicketController) List(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), ticket.ListTicketsInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTicketListResponse(output.Tickets))
}

// Get handles GET /boletos/:id requests.
func (c *TicketController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeTicketNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), ticket.GetTicketInput{ID: id})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTicketResponse(output.Ticket))
}

// Update handles PUT /boletos/:id requests.
func (c *TicketController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeTicketNotFound))
	if !ok {
		return
	}

	var req dto.UpdateTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeInvalidTicketFields),
		))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), ticket.UpdateTicketInput{
		ID: id,
		Patch: ticket.UpdateTicketPatch{
			Numbers:   req.Numbers,
			Cost:      req.Cost,
			UpdatedBy: req.UpdatedBy,
		},
	})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTicketResponse(output.Ticket))
}

// Delete handles DELETE /boletos/:id requests.
func (c *TicketController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeTicketNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), ticket.DeleteTicketInput{ID: id}); err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Exito:   true,
		Mensaje: "boleto eliminado",
	})
}
