package dto

// LoginRequest represents the request body for login. Identificador accepts
// a username or an email address.
type LoginRequest struct {
	Identifier string `json:"identificador" binding:"required"`
	Password   string `json:"contrasena" binding:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Exito   bool         `json:"exito"`
	Mensaje string       `json:"mensaje"`
	Token   string       `json:"token"`
	User    UserResponse `json:"usuario"`
}

// AdminBootstrapResponse represents the result of the default-admin
// bootstrap. Contrasena is present only when the account was created in
// this call; it is shown exactly once.
type AdminBootstrapResponse struct {
	Exito    bool   `json:"exito"`
	Mensaje  string `json:"mensaje"`
	ID       string `json:"id"`
	Username string `json:"nombre_usuario,omitempty"`
	Password string `json:"contrasena,omitempty"`
}

// AuthStatusResponse is the static liveness payload of the auth service.
type AuthStatusResponse struct {
	Exito   bool   `json:"exito"`
	Estado  string `json:"estado"`
	Mensaje string `json:"mensaje"`
}
