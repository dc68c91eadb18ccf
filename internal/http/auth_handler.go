package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quote-service/internal/domain/dto"
	"github.com/guttosm/quote-service/internal/service"
)

// AuthHandler handles the token issuing endpoint.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// IssueToken handles POST /api/auth/token requests.
//
// @Summary      Issue an access token
// @Description  Exchanges client credentials for a short-lived bearer token used on the protected endpoints.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.TokenRequest true "Client credentials"
// @Success      200 {object} dto.SuccessResponse "Access token"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, err := h.authService.IssueToken(req.ClientID, req.ClientSecret)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			builder.Error(http.StatusUnauthorized, "Invalid client credentials", err)
			return
		}
		builder.Error(http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	builder.SuccessOK(token)
}
