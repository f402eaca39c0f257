package reservation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CondoClubServices/area-scheduler/internal/audit"
	domain "github.com/CondoClubServices/area-scheduler/internal/domain/reservation"
	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/identity"
	"github.com/CondoClubServices/area-scheduler/internal/models"
)

type UpdateReservation struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	adminPerm string
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	adminPerm string,
) *UpdateReservation {
	return &UpdateReservation{
		repo:      repo,
		audit:     audit,
		adminPerm: adminPerm,
	}
}

// Execute substitui TODOS os campos da reserva (replace, não merge) e
// recalcula o valor. A checagem de conflito roda de novo, excluindo a
// própria reserva do conjunto.
func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id uint,
	in CreateReservationInput,
	actor identity.Actor,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrEntity(httperr.CodeNotFound, "reservation", itoa(id))
		}
		return nil, err
	}

	if !actor.CanManage(res.UserID, uc.adminPerm) {
		return nil, httperr.ErrBusiness(httperr.CodePermissionDenied)
	}

	if _, err := uc.repo.GetAreaByID(ctx, in.AreaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrEntity(httperr.CodeNotFound, "area", itoa(in.AreaID))
		}
		return nil, err
	}

	res.AreaID = in.AreaID
	res.UserID = in.UserID
	res.Date = in.Date
	res.StartTime = in.StartTime
	res.EndTime = in.EndTime
	res.Justification = in.Justification
	res.Kind = in.Kind
	res.Value = domain.Price(in.StartTime, in.EndTime)

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "reserva_atualizada",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
