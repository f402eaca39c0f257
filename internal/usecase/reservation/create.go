package reservation

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/CondoClubServices/area-scheduler/internal/audit"
	domain "github.com/CondoClubServices/area-scheduler/internal/domain/reservation"
	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/identity"
	"github.com/CondoClubServices/area-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	AreaID uint
	UserID uint

	Date      time.Time
	StartTime time.Time
	EndTime   time.Time

	Justification string
	Kind          string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	adminPerm string
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	adminPerm string,
) *CreateReservation {
	return &CreateReservation{
		repo:      repo,
		audit:     audit,
		adminPerm: adminPerm,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Ordem de admissão: usuário existe, dono-ou-admin, área existe,
// sem conflito; preço derivado e status pendente antes de persistir.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
	actor identity.Actor,
) (*models.Reservation, error) {

	if _, err := uc.repo.GetUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrEntity(httperr.CodeNotFound, "usuario", itoa(in.UserID))
		}
		return nil, err
	}

	if !actor.CanManage(in.UserID, uc.adminPerm) {
		return nil, httperr.ErrBusiness(httperr.CodePermissionDenied)
	}

	if _, err := uc.repo.GetAreaByID(ctx, in.AreaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrEntity(httperr.CodeNotFound, "area", itoa(in.AreaID))
		}
		return nil, err
	}

	// Valor nunca vem do cliente; status inicial é centralizado no domínio.
	res := &models.Reservation{
		AreaID:        in.AreaID,
		UserID:        in.UserID,
		Date:          in.Date,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Justification: in.Justification,
		Kind:          in.Kind,
		Status:        string(domain.InitialStatus()),
		Value:         domain.Price(in.StartTime, in.EndTime),
	}

	// A checagem de conflito roda dentro da mesma transação do insert.
	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "reserva_criada",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
