package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/betting-platform/backend/internal/application/usecase/game"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/entrypoint/dto"
)

// GameController handles game catalog endpoints.
type GameController struct {
	createUseCase *game.CreateGameUseCase
	getUseCase    *game.GetGameUseCase
	listUseCase   *game.ListGamesUseCase
	updateUseCase *game.UpdateGameUseCase
	deleteUseCase *game.DeleteGameUseCase
}

// NewGameController creates a new game controller instance.
func NewGameController(
	createUseCase *game.CreateGameUseCase,
	getUseCase *game.GetGameUseCase,
	listUseCase *game.ListGamesUseCase,
	updateUseCase *game.UpdateGameUseCase,
	deleteUseCase *game.DeleteGameUseCase,
) *GameController {
	return &GameController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /juegos requests.
func (c *GameController) Create(ctx *gin.Context) {
	var req dto.CreateGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeInvalidGameFields),
		))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), game.CreateGameInput{
		Name:        req.Name,
		Description: req.Description,
		BaseCost:    req.BaseCost,
		CreatedBy:   req.CreatedBy,
	})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToGameResponse(output.Game))
}

// List handles GET /juegos requests.
func (c *GameController) List(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), game.ListGamesInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGameListResponse(output.Games))
}

// Get handles GET /juegos/:id requests.
func (c *GameController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeGameNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), game.GetGameInput{ID: id})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGameResponse(output.Game))
}

// Update handles PUT /juegos/:id requests.
func (c *GameController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeGameNotFound))
	if !ok {
		return
	}

	var req dto.UpdateGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeInvalidGameFields),
		))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), game.UpdateGameInput{
		ID: id,
		Patch: game.UpdateGamePatch{
			Name:        req.Name,
			Description: req.Description,
			BaseCost:    req.BaseCost,
			UpdatedBy:   req.UpdatedBy,
		},
	})
	if err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToGameResponse(output.Game))
}

// Delete handles DELETE /juegos/:id requests.
func (c *GameController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, string(domainerror.ErrCodeGameNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), game.DeleteGameInput{ID: id}); err != nil {
		handleEntityError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Exito:   true,
		Mensaje: "juego eliminado",
	})
}
