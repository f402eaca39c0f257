package reservation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CondoClubServices/area-scheduler/internal/audit"
	domain "github.com/CondoClubServices/area-scheduler/internal/domain/reservation"
	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/identity"
)

type DeleteReservation struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	adminPerm string
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	adminPerm string,
) *DeleteReservation {
	return &DeleteReservation{
		repo:      repo,
		audit:     audit,
		adminPerm: adminPerm,
	}
}

// Execute remove a reserva em definitivo (hard delete, sem tombstone).
// Permitido ao dono ou a quem tem permissão de administrador.
func (uc *DeleteReservation) Execute(
	ctx context.Context,
	id uint,
	actor identity.Actor,
) error {

	res, err := uc.repo.GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrEntity(httperr.CodeNotFound, "reservation", itoa(id))
		}
		return err
	}

	if !actor.CanManage(res.UserID, uc.adminPerm) {
		return httperr.ErrBusiness(httperr.CodePermissionDenied)
	}

	if err := uc.repo.DeleteReservation(ctx, res); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "reserva_deletada",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return nil
}
