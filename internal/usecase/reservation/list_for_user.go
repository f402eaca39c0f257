package reservation

import (
	"context"

	domain "github.com/CondoClubServices/area-scheduler/internal/domain/reservation"
	"github.com/CondoClubServices/area-scheduler/internal/models"
)

type ListUserReservations struct {
	repo domain.Repository
}

func NewListUserReservations(repo domain.Repository) *ListUserReservations {
	return &ListUserReservations{repo: repo}
}

func (uc *ListUserReservations) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {
	return uc.repo.ListReservationsByUser(ctx, userID)
}
