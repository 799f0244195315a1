package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/usecase/user"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/entrypoint/dto"
)

// UserController handles user account endpoints.
type UserController struct {
	createUseCase         *user.CreateUserUseCase
	getUseCase            *user.GetUserUseCase
	listUseCase           *user.ListUsersUseCase
	listAdminsUseCase     *user.ListAdminsUseCase
	updateUseCase         *user.UpdateUserUseCase
	deactivateUseCase     *user.DeactivateUserUseCase
	deleteUseCase         *user.DeleteUserUseCase
	changePasswordUseCase *user.ChangePasswordUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUseCase *user.CreateUserUseCase,
	getUseCase *user.GetUserUseCase,
	listUseCase *user.ListUsersUseCase,
	listAdminsUseCase *user.ListAdminsUseCase,
	updateUseCase *user.UpdateUserUseCase,
	deactivateUseCase *user.DeactivateUserUseCase,
	deleteUseCase *user.DeleteUserUseCase,
	changePasswordUseCase *user.ChangePasswordUseCase,
) *UserController {
	return &UserController{
		createUseCase:         createUseCase,
		getUseCase:            getUseCase,
		listUseCase:           listUseCase,
		listAdminsUseCase:     listAdminsUseCase,
		updateUseCase:         updateUseCase,
		deactivateUseCase:     deactivateUseCase,
		deleteUseCase:         deleteUseCase,
		changePasswordUseCase: changePasswordUseCase,
	}
}

// Create handles POST /usuarios requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeMissingName),
		))
		return
	}

	input := user.CreateUserInput{
		Name:           req.Name,
		Username:       req.Username,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		Age:            req.Age,
		InitialBalance: req.InitialBalance,
		IsAdmin:        req.IsAdmin,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// List handles GET /usuarios requests with skip/limit pagination.
func (c *UserController) List(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), user.ListUsersInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Users))
}

// ListAdmins handles GET /usuarios/admin/lista requests.
func (c *UserController) ListAdmins(ctx *gin.Context) {
	output, err := c.listAdminsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleUserError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Admins))
}

// GetByID handles GET /usuarios/:id requests.
func (c *UserController) GetByID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de id invalido",
			string(domainerror.ErrCodeUserNotFound),
		))
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{ID: &id})
	if err != nil {
		handleUserError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// GetByEmail handles GET /usuarios/email/:email requests.
func (c *UserController) GetByEmail(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{
		Email: ctx.Param("email"),
	})
	if err != nil {
		handleUserError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// GetByUsername handles GET /usuarios/username/:nombre_usuario requests.
func (c *UserController) GetByUsername(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{
		Username: ctx.Param("nombre_usuario"),
	})
	if err != nil {
		handleUserError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// IsAdmin handles GET /usuarios/:id/es-admin requests.
func (c *UserController) IsAdmin(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de id invalido",
			string(domainerror.ErrCodeUserNotFound),
		))
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{ID: &id})
	if err != nil {
		handleUserError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.IsAdminResponse{
		ID:      output.User.ID.String(),
		IsAdmin: output.User.IsAdmin,
	})
}

// Update handles PUT /usuarios/:id requests with a typed partial patch.
func (c *UserController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de id invalido",
			string(domainerror.ErrCodeUserNotFound),
		))
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeMissingName),
		))
		return
	}

	input := user.UpdateUserInput{
		ID: id,
		Patch: user.UpdateUserPatch{
			Name:           req.Name,
			Username:       req.Username,
			Email:          req.Email,
			Phone:          req.Phone,
			Password:       req.Password,
			Age:            req.Age,
			InitialBalance: req.InitialBalance,
			Active:         req.Active,
			IsAdmin:        req.IsAdmin,
		},
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleUserError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Deactivate handles PATCH /usuarios/:id/desactivar requests.
func (c *UserController) Deactivate(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de id invalido",
			string(domainerror.ErrCodeUserNotFound),
		))
		return
	}

	_, err = c.deactivateUseCase.Execute(ctx.Request.Context(), user.DeactivateUserInput{ID: id})
	if err != nil {
		handleUserError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Exito:   true,
		Mensaje: "usuario desactivado",
	})
}

// ChangePassword handles POST /usuarios/:id/cambiar-contrasena requests.
func (c *UserController) ChangePassword(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de id invalido",
			string(domainerror.ErrCodeUserNotFound),
		))
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeMissingPassword),
		))
		return
	}

	err = c.changePasswordUseCase.Execute(ctx.Request.Context(), user.ChangePasswordInput{
		ID:              id,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		handleUserError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Exito:   true,
		Mensaje: "contrasena actualizada",
	})
}

// Delete handles DELETE /usuarios/:id requests (hard delete).
func (c *UserController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de id invalido",
			string(domainerror.ErrCodeUserNotFound),
		))
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{ID: id}); err != nil {
		handleUserError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Exito:   true,
		Mensaje: "usuario eliminado",
	})
}

// handleUserError maps user errors to HTTP responses.
func handleUserError(ctx *gin.Context, err error) {
	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		ctx.JSON(getStatusCodeForUserError(userErr.Code), dto.NewErrorResponse(
			userErr.Message,
			string(userErr.Code),
		))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		"ocurrio un error interno",
		"",
	))
}

// getStatusCodeForUserError maps user error codes to HTTP status codes.
// Uniqueness failures report 400 like any other validation failure.
func getStatusCodeForUserError(code domainerror.UserErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingName,
		domainerror.ErrCodeNameTooLong,
		domainerror.ErrCodeInvalidUsername,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeInvalidPhone,
		domainerror.ErrCodeInvalidAge,
		domainerror.ErrCodeMissingPassword,
		domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeUsernameExists,
		domainerror.ErrCodeEmailExists,
		domainerror.ErrCodeWrongCurrentPassword:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
