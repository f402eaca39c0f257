package reservation

import (
	"context"

	"github.com/CondoClubServices/area-scheduler/internal/models"
)

type Repository interface {
	// -------- Usuário / Área (existência) --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetAreaByID(
		ctx context.Context,
		id uint,
	) (*models.Area, error)

	// -------- Reserva (create / conflict) --------
	// CreateReservation roda a checagem de conflito e o insert dentro de
	// uma única transação, com lock nas linhas do intervalo.
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Reserva (read / mutate) --------
	GetReservationByID(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	ListReservations(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.Reservation, error)

	ListReservationsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Reservation, error)
}
