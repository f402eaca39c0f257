package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/identity"
	"github.com/CondoClubServices/area-scheduler/internal/middleware"
	"github.com/CondoClubServices/area-scheduler/internal/models"
)

type AuthHandler struct {
	resolver *identity.Resolver
}

func NewAuthHandler(resolver *identity.Resolver) *AuthHandler {
	return &AuthHandler{resolver: resolver}
}

// --------- Requests ---------

// Aceita form-encoded (fluxo OAuth2 password: username/password) e JSON.
type TokenRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --------- Handlers ---------

func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Username))

	user, permissions, err := h.resolver.Authenticate(c.Request.Context(), email, req.Password)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	token, err := h.resolver.IssueToken(user, permissions)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// RefreshToken reemite um token para o sujeito já autenticado, com as
// permissões atuais do banco (não as do token antigo).
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	token, err := h.resolver.IssueToken(user, []string{user.Role.Label})
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Permissions expõe o ator resolvido (debug de permissões).
func (h *AuthHandler) Permissions(c *gin.Context) {
	actor := c.MustGet(middleware.ContextActor).(identity.Actor)
	c.JSON(http.StatusOK, gin.H{
		"user_id":     actor.UserID,
		"email":       actor.Email,
		"permissions": actor.Permissions,
	})
}
