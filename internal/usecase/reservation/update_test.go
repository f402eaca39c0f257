package reservation

import (
	"context"
	"testing"

	"github.com/CondoClubServices/area-scheduler/internal/httperr"
)

func TestUpdateReservationRecomputesValue(t *testing.T) {
	repo := newFakeRepo()
	repo.seedUser(2, "cliente")
	repo.seedArea(1, "Salão de Festas")
	existing := repo.seedReservation(1, 2, day(), hm(14, 0), hm(16, 0))

	uc := NewUpdateReservation(repo, testDispatcher(), adminPerm)

	res, err := uc.Execute(context.Background(), existing.ID, makeInput(1, 2, 14, 17), clientActor(2))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Value != 30 {
		t.Fatalf("valor recalculado para 3 horas = %d, want 30", res.Value)
	}
}

func TestUpdateExcludesOwnReservationFromConflictCheck(t *testing.T) {
	repo := newFakeRepo()
	repo.seedUser(2, "cliente")
	repo.seedArea(1, "Salão de Festas")
	existing := repo.seedReservation(1, 2, day(), hm(14, 0), hm(16, 0))

	uc := NewUpdateReservation(repo, testDispatcher(), adminPerm)

	// Nova janela intersecta a antiga; a própria reserva não pode contar
	// como conflito.
	if _, err := uc.Execute(context.Background(), existing.ID, makeInput(1, 2, 15, 17), clientActor(2)); err != nil {
		t.Fatalf("mover a própria reserva não deveria conflitar consigo mesma: %v", err)
	}
}

func TestUpdateConflictsWithOtherReservation(t *testing.T) {
	repo := newFakeRepo()
	repo.seedUser(2, "cliente")
	repo.seedArea(1, "Salão de Festas")
	mine := repo.seedReservation(1, 2, day(), hm(8, 0), hm(9, 0))
	repo.seedReservation(1, 2, day(), hm(14, 0), hm(16, 0))

	uc := NewUpdateReservation(repo, testDispatcher(), adminPerm)

	_, err := uc.Execute(context.Background(), mine.ID, makeInput(1, 2, 15, 17), clientActor(2))
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Fatalf("nova janela sobre reserva alheia deveria virar time_conflict, veio %v", err)
	}
}

func TestUpdateReservationNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.seedUser(2, "cliente")
	repo.seedArea(1, "Salão de Festas")

	uc := NewUpdateReservation(repo, testDispatcher(), adminPerm)

	_, err := uc.Execute(context.Background(), 99, makeInput(1, 2, 14, 16), clientActor(2))
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("reserva inexistente deveria virar not_found, veio %v", err)
	}
}

func TestClientCannotUpdateOthersReservation(t *testing.T) {
	repo := newFakeRepo()
	repo.seedUser(2, "cliente")
	repo.seedUser(3, "cliente")
	repo.seedArea(1, "Salão de Festas")
	existing := repo.seedReservation(1, 2, day(), hm(14, 0), hm(16, 0))

	uc := NewUpdateReservation(repo, testDispatcher(), adminPerm)

	_, err := uc.Execute(context.Background(), existing.ID, makeInput(1, 2, 10, 12), clientActor(3))
	if !httperr.IsBusiness(err, httperr.CodePermissionDenied) {
		t.Fatalf("cliente alterando reserva alheia deveria virar permission_denied, veio %v", err)
	}
}

func TestAdminUpdatesOthersReservation(t *testing.T) {
	repo := newFakeRepo()
	repo.seedUser(2, "cliente")
	repo.seedArea(1, "Salão de Festas")
	existing := repo.seedReservation(1, 2, day(), hm(14, 0), hm(16, 0))

	uc := NewUpdateReservation(repo, testDispatcher(), adminPerm)

	res, err := uc.Execute(context.Background(), existing.ID, makeInput(1, 2, 10, 12), adminActor(1))
	if err != nil {
		t.Fatalf("administrador deveria alterar reserva de qualquer usuário: %v", err)
	}
	if !res.StartTime.Equal(hm(10, 0)) {
		t.Fatalf("hora_inicio não substituída: %v", res.StartTime)
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo := newFakeRepo()
	repo.seedUser(2, "cliente")
	repo.seedArea(1, "Salão de Festas")
	repo.seedArea(3, "Churrasqueira")
	existing := repo.seedReservation(1, 2, day(), hm(14, 0), hm(16, 0))

	uc := NewUpdateReservation(repo, testDispatcher(), adminPerm)

	in := makeInput(3, 2, 9, 10)
	in.Justification = "confraternização"
	in.Kind = "churrasco"

	res, err := uc.Execute(context.Background(), existing.ID, in, clientActor(2))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.AreaID != 3 || res.Justification != "confraternização" || res.Kind != "churrasco" {
		t.Fatalf("campos não substituídos: %+v", res)
	}

	stored, err := repo.GetReservationByID(context.Background(), existing.ID)
	if err != nil {
		t.Fatalf("GetReservationByID: %v", err)
	}
	if stored.AreaID != 3 {
		t.Fatalf("persistência não refletiu a troca de área: %d", stored.AreaID)
	}
}
