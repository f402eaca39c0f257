package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CondoClubServices/area-scheduler/internal/audit"
	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/httpresp"
	"github.com/CondoClubServices/area-scheduler/internal/identity"
	"github.com/CondoClubServices/area-scheduler/internal/middleware"
	"github.com/CondoClubServices/area-scheduler/internal/models"
	"github.com/CondoClubServices/area-scheduler/internal/storage"
)

type AreaHandler struct {
	db     *gorm.DB
	audit  *audit.Dispatcher
	photos *storage.PhotoStore
}

func NewAreaHandler(db *gorm.DB, dispatcher *audit.Dispatcher, photos *storage.PhotoStore) *AreaHandler {
	return &AreaHandler{db: db, audit: dispatcher, photos: photos}
}

// --------- Requests ---------

type AreaRequest struct {
	Name        string `json:"nome" binding:"required"`
	Description string `json:"descricao"`
	Lighting    string `json:"iluminacao"`
	FloorType   string `json:"tipo_piso"`
	Covered     string `json:"covered"`
	PhotoURL    string `json:"foto_url"`
}

// --------- Handlers ---------

// Create registra uma nova área. Nome é identidade única: duplicado
// responde already_exists.
func (h *AreaHandler) Create(c *gin.Context) {
	var req AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var count int64
	h.db.Model(&models.Area{}).Where("nome = ?", req.Name).Count(&count)
	if count > 0 {
		httperr.Conflict(c, httperr.CodeAlreadyExists, "Área já existe com esse nome.")
		return
	}

	area := models.Area{
		Name:        req.Name,
		Description: req.Description,
		Lighting:    req.Lighting,
		FloorType:   req.FloorType,
		Covered:     req.Covered,
		PhotoURL:    req.PhotoURL,
	}

	if err := h.db.Create(&area).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeAlreadyExists, "Área já existe com esse nome.")
			return
		}
		httperr.Internal(c, "failed_to_create_area", "Erro ao criar área.")
		return
	}

	actor := c.MustGet(middleware.ContextActor).(identity.Actor)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "area_criada",
		Entity:   "area",
		EntityID: &area.ID,
	})

	c.JSON(http.StatusCreated, area)
}

func (h *AreaHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	var areas []models.Area
	if err := h.db.Offset(offset).Limit(limit).Find(&areas).Error; err != nil {
		httperr.Internal(c, "failed_to_list_areas", "Erro ao listar áreas.")
		return
	}

	httpresp.List(c, areas)
}

func (h *AreaHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var area models.Area
	if err := h.db.First(&area, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Área não encontrada.")
		return
	}

	httpresp.OK(c, area)
}

func (h *AreaHandler) GetByName(c *gin.Context) {
	nome := c.Param("nome")

	var area models.Area
	if err := h.db.Where("nome = ?", nome).First(&area).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Área não encontrada.")
		return
	}

	httpresp.OK(c, area)
}

// Update substitui todos os campos mutáveis; a identidade (id) é imutável.
func (h *AreaHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var area models.Area
	if err := h.db.First(&area, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Área não encontrada.")
		return
	}

	var req AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	area.Name = req.Name
	area.Description = req.Description
	area.Lighting = req.Lighting
	area.FloorType = req.FloorType
	area.Covered = req.Covered
	area.PhotoURL = req.PhotoURL

	if err := h.db.Save(&area).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeAlreadyExists, "Área já existe com esse nome.")
			return
		}
		httperr.Internal(c, "failed_to_update_area", "Erro ao atualizar área.")
		return
	}

	httpresp.OK(c, area)
}

// Delete recusa remover área com reservas existentes, em vez de deixar
// FKs órfãs.
func (h *AreaHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var area models.Area
	if err := h.db.First(&area, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Área não encontrada.")
		return
	}

	var reservations int64
	h.db.Model(&models.Reservation{}).Where("area_id = ?", area.ID).Count(&reservations)
	if reservations > 0 {
		httperr.Conflict(c, httperr.CodeAreaInUse, "Área possui reservas ativas.")
		return
	}

	if err := h.db.Delete(&area).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_area", "Erro ao deletar área.")
		return
	}

	actor := c.MustGet(middleware.ContextActor).(identity.Actor)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "area_deletada",
		Entity:   "area",
		EntityID: &area.ID,
	})

	httpresp.OK(c, gin.H{"detail": "Área deletada com sucesso"})
}

// UploadPhoto recebe multipart "foto", converte para webp e publica no
// bucket; a URL resultante substitui foto_url.
func (h *AreaHandler) UploadPhoto(c *gin.Context) {
	if h.photos == nil {
		httperr.Internal(c, "photo_storage_unavailable", "Armazenamento de fotos não configurado.")
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	var area models.Area
	if err := h.db.First(&area, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Área não encontrada.")
		return
	}

	file, err := c.FormFile("foto")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto obrigatório.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler foto.")
		return
	}
	defer src.Close()

	key := fmt.Sprintf("areas/%d/%s.webp", area.ID, uuid.NewString())
	url, err := h.photos.Store(c.Request.Context(), key, src)
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "Foto inválida ou não suportada.")
		return
	}

	area.PhotoURL = url
	if err := h.db.Save(&area).Error; err != nil {
		httperr.Internal(c, "failed_to_update_area", "Erro ao salvar URL da foto.")
		return
	}

	httpresp.OK(c, area)
}
