package reservation

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	domain "github.com/CondoClubServices/area-scheduler/internal/domain/reservation"
	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

// Execute pagina todas as reservas. Lista vazia é resultado válido;
// not_found fica reservado para lookups de entidade única.
func (uc *ListReservations) Execute(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Reservation, error) {

	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return uc.repo.ListReservations(ctx, offset, limit)
}

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrEntity(httperr.CodeNotFound, "reservation", itoa(id))
		}
		return nil, err
	}
	return res, nil
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
