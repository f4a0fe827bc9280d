package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/user/usecases"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest accepts a username or email as the identifier. The role
// field lets a staff account open a downgraded session.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LoginResponse struct {
	UserID       uint   `json:"user_id"`
	Name         string `json:"name"`
	StoredRole   string `json:"stored_role"`
	SessionRole  string `json:"session_role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthHandler struct {
	registerUC usecases.RegisterUserExecutor
	loginUC    usecases.LoginExecutor
	jwtService usecases.JWTService
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterUserExecutor,
	loginUC usecases.LoginExecutor,
	jwtService usecases.JWTService,
	lg logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		jwtService: jwtService,
		logger:     lg,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("name, email and password are required"))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("identifier and password are required"))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Identifier:    req.Identifier,
		Password:      req.Password,
		RequestedRole: req.Role,
		ClientIP:      c.ClientIP(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		UserID:       result.UserID,
		Name:         result.Name,
		StoredRole:   result.StoredRole,
		SessionRole:  result.SessionRole,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("refresh_token is required"))
		return
	}

	accessToken, err := h.jwtService.Refresh(req.RefreshToken)
	if err != nil {
		h.logger.Warnw("failed to refresh token", "error", err)
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired refresh token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"access_token": accessToken})
}
