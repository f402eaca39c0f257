package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CondoClubServices/area-scheduler/internal/config"
	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/httpresp"
	"github.com/CondoClubServices/area-scheduler/internal/identity"
	"github.com/CondoClubServices/area-scheduler/internal/middleware"
	"github.com/CondoClubServices/area-scheduler/internal/timezone"
	ucReservation "github.com/CondoClubServices/area-scheduler/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	cfg *config.Config

	createUC      *ucReservation.CreateReservation
	updateUC      *ucReservation.UpdateReservation
	deleteUC      *ucReservation.DeleteReservation
	getUC         *ucReservation.GetReservation
	listUC        *ucReservation.ListReservations
	listForUserUC *ucReservation.ListUserReservations
}

func NewReservationHandler(
	cfg *config.Config,
	createUC *ucReservation.CreateReservation,
	updateUC *ucReservation.UpdateReservation,
	deleteUC *ucReservation.DeleteReservation,
	getUC *ucReservation.GetReservation,
	listUC *ucReservation.ListReservations,
	listForUserUC *ucReservation.ListUserReservations,
) *ReservationHandler {
	return &ReservationHandler{
		cfg:           cfg,
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		getUC:         getUC,
		listUC:        listUC,
		listForUserUC: listForUserUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ReservationRequest struct {
	AreaID uint `json:"area_id" binding:"required"`
	UserID uint `json:"usuario_id" binding:"required"`

	Date      string `json:"reserva_data" binding:"required"` // 2006-01-02
	StartTime string `json:"hora_inicio" binding:"required"`  // 15:04
	EndTime   string `json:"hora_fim" binding:"required"`     // 15:04

	Justification string `json:"justificacao"`
	Kind          string `json:"reserva_tipo"`

	// status e valor enviados pelo cliente são ignorados: o core decide.
}

func (h *ReservationHandler) parseInput(req ReservationRequest) (ucReservation.CreateReservationInput, error) {
	loc := timezone.Location(h.cfg.Timezone)

	date, err := time.ParseInLocation("2006-01-02", req.Date, loc)
	if err != nil {
		return ucReservation.CreateReservationInput{}, err
	}

	parseHM := func(hm string) (time.Time, error) {
		t, err := time.ParseInLocation("15:04", hm, loc)
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), nil
	}

	start, err := parseHM(req.StartTime)
	if err != nil {
		return ucReservation.CreateReservationInput{}, err
	}
	end, err := parseHM(req.EndTime)
	if err != nil {
		return ucReservation.CreateReservationInput{}, err
	}

	return ucReservation.CreateReservationInput{
		AreaID:        req.AreaID,
		UserID:        req.UserID,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		Justification: req.Justification,
		Kind:          req.Kind,
	}, nil
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	actor := c.MustGet(middleware.ContextActor).(identity.Actor)

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in, err := h.parseInput(req)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), in, actor)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, res)
}

// ======================================================
// READ
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	reservations, err := h.listUC.Execute(c.Request.Context(), offset, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, reservations)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ListMine devolve as reservas do ator autenticado; lista vazia é 200.
func (h *ReservationHandler) ListMine(c *gin.Context) {
	actor := c.MustGet(middleware.ContextActor).(identity.Actor)

	reservations, err := h.listForUserUC.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	actor := c.MustGet(middleware.ContextActor).(identity.Actor)

	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in, err := h.parseInput(req)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	res, err := h.updateUC.Execute(c.Request.Context(), id, in, actor)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	actor := c.MustGet(middleware.ContextActor).(identity.Actor)

	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, actor); err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"detail": "Reserva deletada com sucesso"})
}
