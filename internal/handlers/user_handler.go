package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CondoClubServices/area-scheduler/internal/audit"
	"github.com/CondoClubServices/area-scheduler/internal/config"
	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/httpresp"
	"github.com/CondoClubServices/area-scheduler/internal/identity"
	"github.com/CondoClubServices/area-scheduler/internal/middleware"
	"github.com/CondoClubServices/area-scheduler/internal/models"
	"github.com/CondoClubServices/area-scheduler/internal/validators"
)

type UserHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, cfg *config.Config, dispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, cfg: cfg, audit: dispatcher}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"nome" binding:"required"`
	Password string `json:"senha" binding:"required,min=6"`
	RoleID   uint   `json:"tipo_id" binding:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"senha_antiga" binding:"required"`
	NewPassword string `json:"senha_nova"`
}

type UserResponse struct {
	ID     uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"nome"`
	RoleID uint   `json:"tipo_id"`
}

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		RoleID: u.RoleID,
	}
}

// --------- Handlers ---------

// Create é o signup: valida o papel, rejeita email duplicado, faz o hash
// da senha. Não exige autenticação.
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var role models.Role
	if err := h.db.First(&role, req.RoleID).Error; err != nil {
		httperr.NotFound(c, "role_not_found", "Tipo de usuário não encontrado.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.Conflict(c, httperr.CodeAlreadyExists, "E-mail já registrado.")
		return
	}

	hashed, err := identity.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	user := models.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: hashed,
		RoleID:       req.RoleID,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeAlreadyExists, "E-mail já registrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(&user))
}

func (h *UserHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	var users []models.User
	if err := h.db.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	httpresp.List(c, out)
}

// Get devolve um usuário; visível para o próprio dono ou administrador.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Usuário não encontrado.")
		return
	}

	actor := c.MustGet(middleware.ContextActor).(identity.Actor)
	if !actor.CanManage(user.ID, h.cfg.AdminPermission) {
		httperr.Forbidden(c, httperr.CodePermissionDenied, "Usuário não tem permissão para realizar essa ação.")
		return
	}

	httpresp.OK(c, toUserResponse(&user))
}

// Update substitui todos os campos mutáveis (replace) e refaz o hash da
// senha enviada. Dono ou administrador.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	actor := c.MustGet(middleware.ContextActor).(identity.Actor)
	if !actor.CanManage(id, h.cfg.AdminPermission) {
		httperr.Forbidden(c, httperr.CodePermissionDenied, "Usuário não tem permissão para realizar essa ação.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Usuário não encontrado.")
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	hashed, err := identity.HashPassword(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.Name = req.Name
	user.PasswordHash = hashed
	user.RoleID = req.RoleID

	if err := h.db.Save(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeAlreadyExists, "E-mail já registrado.")
			return
		}
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	httpresp.OK(c, toUserResponse(&user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Usuário não encontrado.")
		return
	}

	actor := c.MustGet(middleware.ContextActor).(identity.Actor)
	if !actor.CanManage(user.ID, h.cfg.AdminPermission) {
		httperr.Forbidden(c, httperr.CodePermissionDenied, "Usuário não tem permissão para realizar essa ação.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Erro ao deletar usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "usuario_deletado",
		Entity:   "usuario",
		EntityID: &user.ID,
	})

	httpresp.OK(c, gin.H{"detail": "Usuário deletado com sucesso"})
}

// UpdatePassword troca a senha do próprio usuário após re-autenticação
// com a senha antiga. Senha nova vazia é rejeitada.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !identity.CheckPassword(user.PasswordHash, req.OldPassword) {
		httperr.Unauthorized(c, "incorrect_old_password", "Senha antiga incorreta.")
		return
	}
	if req.NewPassword == "" {
		httperr.BadRequest(c, "empty_password", "Nova senha não pode ser vazia.")
		return
	}

	hashed, err := identity.HashPassword(req.NewPassword)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	if err := h.db.Model(user).Update("senha", hashed).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "Erro ao atualizar senha.")
		return
	}

	httpresp.OK(c, gin.H{"detail": "Senha atualizada com sucesso"})
}

// --------- Helpers ---------

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return offset, limit
}
