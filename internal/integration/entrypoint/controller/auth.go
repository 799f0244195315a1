// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/betting-platform/backend/internal/application/usecase/auth"
	"github.com/betting-platform/backend/internal/application/usecase/user"
	domainerror "github.com/betting-platform/backend/internal/domain/error"
	"github.com/betting-platform/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	loginUseCase       *auth.LoginUserUseCase
	createUserUseCase  *user.CreateUserUseCase
	createAdminUseCase *auth.CreateDefaultAdminUseCase
	verifyUserUseCase  *auth.VerifyUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *auth.LoginUserUseCase,
	createUserUseCase *user.CreateUserUseCase,
	createAdminUseCase *auth.CreateDefaultAdminUseCase,
	verifyUserUseCase *auth.VerifyUserUseCase,
) *AuthController {
	return &AuthController{
		loginUseCase:       loginUseCase,
		createUserUseCase:  createUserUseCase,
		createAdminUseCase: createAdminUseCase,
		verifyUserUseCase:  verifyUserUseCase,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"identificador y contrasena son requeridos",
			string(domainerror.ErrCodeMissingCredentials),
		))
		return
	}

	input := auth.LoginUserInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Exito:   true,
		Mensaje: "inicio de sesion exitoso",
		Token:   output.AccessToken,
		User:    dto.ToUserResponse(output.User),
	})
}

// Register handles POST /auth/registro requests. It goes through the same
// creation path as POST /usuarios.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"cuerpo de solicitud invalido",
			string(domainerror.ErrCodeMissingCredentials),
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

	output, err := c.createUserUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// CreateAdmin handles POST /auth/crear-admin requests. The operation is
// idempotent: an existing default admin is reported with its id.
func (c *AuthController) CreateAdmin(ctx *gin.Context) {
	output, err := c.createAdminUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	resp := dto.AdminBootstrapResponse{
		Exito: true,
		ID:    output.User.ID.String(),
	}
	if output.Created {
		resp.Mensaje = "administrador por defecto creado"
		resp.Username = output.User.Username
		resp.Password = output.GeneratedPassword
	} else {
		resp.Mensaje = "el administrador por defecto ya existe"
	}
	ctx.JSON(http.StatusOK, resp)
}

// Verify handles GET /auth/verificar/:id requests.
func (c *AuthController) Verify(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			"formato de id invalido",
			string(domainerror.ErrCodeUserNotFound),
		))
		return
	}

	output, err := c.verifyUserUseCase.Execute(ctx.Request.Context(), auth.VerifyUserInput{ID: id})
	if err != nil {
		handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Status handles GET /auth/estado requests.
func (c *AuthController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.AuthStatusResponse{
		Exito:   true,
		Estado:  "operativo",
		Mensaje: "servicio de autenticacion disponible",
	})
}

// handleAuthError maps authentication errors to HTTP responses. Every
// credential failure shares one body so callers cannot probe accounts.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(getStatusCodeForAuthError(authErr.Code), dto.NewErrorResponse(
			authErr.Message,
			string(authErr.Code),
		))
		return
	}

	var userErr *domainerror.UserError
	if errors.As(err, &userErr) {
		handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		"ocurrio un error interno",
		"",
	))
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingCredentials,
		domainerror.ErrCodePasswordTooShort,
		domainerror.ErrCodeMalformedEmail:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeMissingClaim:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
