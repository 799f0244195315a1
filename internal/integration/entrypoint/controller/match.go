package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/usecase/match"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/entrypoint/dto"
)

// MatchController handles match ("partida") endpoints.
type MatchController struct {
	createUseCase *match.CreateMatchUseCase
	getUseCase    *match.GetMatchUseCase
	listUseCase   *match.ListMatchesUseCase
	updateUseCase *match.UpdateMatchUseCase
	deleteUseCase *match.DeleteMatchUseCase
}

// NewMatchController creates a new match controller instance.
func NewMatchController(
	createUseCase *match.CreateMatchUseCase,
	getUseCase *match.GetMatchUseCase,
	listUseCase *match.ListMatchesUseCase,
	updateUseCase *match.UpdateMatchUseCase,
	deleteUseCase *match.DeleteMatchUseCase,
) *MatchController {
	return &MatchController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /partidas requests.
func (c *MatchController) Create(ctx *gin.Context) {
	var req dto.CreateMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeInvalidMatchFields),
		))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de usuario_id invalido",
			string(domainerror.ErrCodeInvalidMatchFields),
		))
		return
	}
	gameID, err := uuid.Parse(req.GameID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de juego_id invalido",
			string(domainerror.ErrCodeInvalidMatchFields),
		))
		return
	}

	input := match.CreateMatchInput{
		UserID:  userID,
		GameID:  gameID,
		BetCost: req.BetCost,
		State:   req.State,
	}
	if req.PrizeID != nil {
		prizeID, err := uuid.Parse(*req.PrizeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				"formato de premio_id invalido",
				string(domainerror.ErrCodeInvalidMatchFields),
			))
			return
		}
		input.PrizeID = &prizeID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToMatchResponse(output.Match))
}

// List handles GET /partidas requests. An optional usuario_id query filter
// returns the full match history of one user.
func (c *MatchController) List(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	input := match.ListMatchesInput{
		Skip:  skip,
		Limit: limit,
	}
	if userIDStr := ctx.Query("usuario_id"); userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				"formato de usuario_id invalido",
				string(domainerror.ErrCodeInvalidMatchFields),
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
	ctx.JSON(http.StatusOK, dto.ToMatchListResponse(output.Matches))
}

// Get handles GET /partidas/:id requests.
func (c *MatchController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeMatchNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), match.GetMatchInput{ID: id})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToMatchResponse(output.Match))
}

// Update handles PUT /partidas/:id requests.
func (c *MatchController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeMatchNotFound))
	if !ok {
		return
	}

	var req dto.UpdateMatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeInvalidMatchFields),
		))
		return
	}

	input := match.UpdateMatchInput{
		ID: id,
		Patch: match.UpdateMatchPatch{
			BetCost: req.BetCost,
			State:   req.State,
		},
	}
	if req.PrizeID != nil {
		prizeID, err := uuid.Parse(*req.PrizeID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				"formato de premio_id invalido",
				string(domainerror.ErrCodeInvalidMatchFields),
			))
			return
		}
		input.Patch.PrizeID = &prizeID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToMatchResponse(output.Match))
}

// Delete handles DELETE /partidas/:id requests.
func (c *MatchController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeMatchNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), match.DeleteMatchInput{ID: id}); err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Exito:   true,
		Mensaje: "partida eliminada",
	})
}
