package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/CondoClubServices/area-scheduler/internal/domain/reservation"
	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Usuário / Área
// --------------------------------------------------

func (r *ReservationGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ReservationGormRepository) GetAreaByID(
	ctx context.Context,
	id uint,
) (*models.Area, error) {

	var area models.Area
	if err := r.db.WithContext(ctx).First(&area, id).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

// --------------------------------------------------
// Reserva (create / conflict)
// --------------------------------------------------

// conflictQuery reproduz o predicado de interseção de intervalos
// semiabertos, restrito à mesma área e ao mesmo dia:
//
//	area_id = ? AND reserva_data = ? AND hora_inicio < fim AND hora_fim > início
func conflictQuery(
	tx *gorm.DB,
	areaID uint,
	date time.Time,
	start time.Time,
	end time.Time,
	excludeID uint,
) *gorm.DB {

	q := tx.Model(&models.Reservation{}).
		Where(
			"area_id = ? AND reserva_data = ? AND hora_inicio < ? AND hora_fim > ?",
			areaID, date, end, start,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

// CreateReservation serializa check-then-insert: a transação trava as
// reservas do intervalo com FOR UPDATE antes de inserir, e a constraint
// de exclusão do Postgres cobre o que o lock não cobrir.
func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Reservation
		if err := conflictQuery(tx, res.AreaID, res.Date, res.StartTime, res.EndTime, 0).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrEntity(
				httperr.CodeTimeConflict,
				"area",
				res.Date.Format("2006-01-02"),
			)
		}

		return tx.Create(res).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrEntity(
			httperr.CodeTimeConflict,
			"area",
			res.Date.Format("2006-01-02"),
		)
	}
	return err
}

// --------------------------------------------------
// Reserva (read / mutate)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservationByID(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Reservation
		if err := conflictQuery(tx, res.AreaID, res.Date, res.StartTime, res.EndTime, res.ID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrEntity(
				httperr.CodeTimeConflict,
				"area",
				res.Date.Format("2006-01-02"),
			)
		}

		return tx.Save(res).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrEntity(
			httperr.CodeTimeConflict,
			"area",
			res.Date.Format("2006-01-02"),
		)
	}
	return err
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Delete(res).Error
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Order("hora_inicio ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *ReservationGormRepository) ListReservationsByUser(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("hora_inicio ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
