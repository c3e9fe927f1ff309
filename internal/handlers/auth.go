package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studify/studify-api/internal/auth"
	"github.com/studify/studify-api/internal/dto"
	apierrors "github.com/studify/studify-api/internal/errors"
	"github.com/studify/studify-api/internal/middleware"
	"github.com/studify/studify-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	secret      []byte
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, secret []byte) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		secret:      secret,
	}
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Nombre     string `json:"nombre" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		Contrasena string `json:"contrasena" binding:"required"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Todos los campos son obligatorios")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Contrasena,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Usuario registrado exitosamente",
		"id_usuario": user.ID,
	})
}

// Login authenticates a user and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email      string `json:"email" binding:"required"`
		Contrasena string `json:"contrasena" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Todos los campos son obligatorios")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Contrasena,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Email, h.secret)
	if err != nil {
		log.Printf("failed to sign token: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Inicio de sesión exitoso",
		Token:   token,
		User:    dto.ToUserDTO(*user),
	})
}

// Verify confirms the bearer token and returns the caller's identity.
// The route sits behind RequireAuth, so reaching here means the token
// already passed verification.
func (h *AuthHandler) Verify(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		Message: "Token válido",
		User:    dto.ToUserDTO(*user),
	})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "El correo ya está registrado")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Credenciales incorrectas")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.Unauthorized(c, "")
	default:
		log.Printf("auth error: %v", err)
		apierrors.InternalError(c, "")
	}
}
