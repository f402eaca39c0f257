package reservation

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/CondoClubServices/area-scheduler/internal/audit"
	domain "github.com/CondoClubServices/area-scheduler/internal/domain/reservation"
	"github.com/CondoClubServices/area-scheduler/internal/httperr"
	"github.com/CondoClubServices/area-scheduler/internal/identity"
	"github.com/CondoClubServices/area-scheduler/internal/models"
)

const adminPerm = "administrador"

// fakeRepo implementa domain.Repository em memória, com a mesma
// semântica de conflito do repositório GORM (intervalos semiabertos na
// mesma área e no mesmo dia).
type fakeRepo struct {
	users        map[uint]*models.User
	areas        map[uint]*models.Area
	reservations map[uint]*models.Reservation
	nextID       uint

	lastOffset int
	lastLimit  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        make(map[uint]*models.User),
		areas:        make(map[uint]*models.Area),
		reservations: make(map[uint]*models.Reservation),
	}
}

func (f *fakeRepo) seedUser(id uint, label string) {
	f.users[id] = &models.User{
		ID:    id,
		Email: "u@example.com",
		Role:  models.Role{Label: label},
	}
}

func (f *fakeRepo) seedArea(id uint, nome string) {
	f.areas[id] = &models.Area{ID: id, Name: nome}
}

func (f *fakeRepo) seedReservation(areaID, userID uint, date, start, end time.Time) *models.Reservation {
	f.nextID++
	res := &models.Reservation{
		ID:        f.nextID,
		AreaID:    areaID,
		UserID:    userID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
	}
	f.reservations[res.ID] = res
	return res
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeRepo) GetAreaByID(_ context.Context, id uint) (*models.Area, error) {
	area, ok := f.areas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return area, nil
}

func (f *fakeRepo) conflictExists(areaID uint, date, start, end time.Time, excludeID uint) bool {
	for _, other := range f.reservations {
		if other.ID == excludeID {
			continue
		}
		if other.AreaID != areaID || !other.Date.Equal(date) {
			continue
		}
		if domain.Overlaps(start, end, other.StartTime, other.EndTime) {
			return true
		}
	}
	return false
}

func (f *fakeRepo) assertNoTimeConflict(areaID uint, date, start, end time.Time, excludeID uint) error {
	if f.conflictExists(areaID, date, start, end, excludeID) {
		return httperr.ErrEntity(httperr.CodeTimeConflict, "area", date.Format("2006-01-02"))
	}
	return nil
}

func (f *fakeRepo) CreateReservation(_ context.Context, res *models.Reservation) error {
	if err := f.assertNoTimeConflict(res.AreaID, res.Date, res.StartTime, res.EndTime, 0); err != nil {
		return err
	}
	f.nextID++
	res.ID = f.nextID
	f.reservations[res.ID] = res
	return nil
}

func (f *fakeRepo) GetReservationByID(_ context.Context, id uint) (*models.Reservation, error) {
	res, ok := f.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeRepo) UpdateReservation(_ context.Context, res *models.Reservation) error {
	if _, ok := f.reservations[res.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if err := f.assertNoTimeConflict(res.AreaID, res.Date, res.StartTime, res.EndTime, res.ID); err != nil {
		return err
	}
	copied := *res
	f.reservations[res.ID] = &copied
	return nil
}

func (f *fakeRepo) DeleteReservation(_ context.Context, res *models.Reservation) error {
	delete(f.reservations, res.ID)
	return nil
}

func (f *fakeRepo) ListReservations(_ context.Context, offset, limit int) ([]models.Reservation, error) {
	f.lastOffset = offset
	f.lastLimit = limit

	out := make([]models.Reservation, 0, len(f.reservations))
	for _, res := range f.reservations {
		out = append(out, *res)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (f *fakeRepo) ListReservationsByUser(_ context.Context, userID uint) ([]models.Reservation, error) {
	out := make([]models.Reservation, 0)
	for _, res := range f.reservations {
		if res.UserID == userID {
			out = append(out, *res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// Helpers comuns aos testes de use case
// --------------------------------------------------

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

func clientActor(id uint) identity.Actor {
	return identity.Actor{UserID: id, Email: "cliente@example.com", Permissions: []string{"cliente"}}
}

func adminActor(id uint) identity.Actor {
	return identity.Actor{UserID: id, Email: "admin@example.com", Permissions: []string{adminPerm}}
}

func day() time.Time {
	return time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
}

func hm(hour, min int) time.Time {
	d := day()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.UTC)
}

func makeInput(areaID, userID uint, startHour, endHour int) CreateReservationInput {
	return CreateReservationInput{
		AreaID:        areaID,
		UserID:        userID,
		Date:          day(),
		StartTime:     hm(startHour, 0),
		EndTime:       hm(endHour, 0),
		Justification: "aniversário",
		Kind:          "festa",
	}
}
