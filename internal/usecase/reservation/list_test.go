package reservation

import (
	"context"
	"testing"

	"github.com/CondoClubServices/area-scheduler/internal/httperr"
)

func TestListReservationsClampsPagination(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListReservations(repo)

	cases := []struct {
		name       string
		offset     int
		limit      int
		wantOffset int
		wantLimit  int
	}{
		{"limite zero vira máximo", 0, 0, 0, 100},
		{"limite acima do teto é rebaixado", 0, 500, 0, 100},
		{"offset negativo vira zero", -5, 10, 0, 10},
		{"valores razoáveis passam direto", 20, 50, 20, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Execute(context.Background(), tc.offset, tc.limit); err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if repo.lastOffset != tc.wantOffset || repo.lastLimit != tc.wantLimit {
				t.Fatalf("paginação = (%d, %d), want (%d, %d)",
					repo.lastOffset, repo.lastLimit, tc.wantOffset, tc.wantLimit)
			}
		})
	}
}

func TestListReservationsEmptyIsNotAnError(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListReservations(repo)

	out, err := uc.Execute(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("lista vazia deveria ser resultado válido: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("esperava lista vazia, veio %d itens", len(out))
	}
}

func TestGetReservationNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetReservation(repo)

	_, err := uc.Execute(context.Background(), 99)
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("lookup de reserva inexistente deveria virar not_found, veio %v", err)
	}
}

func TestListUserReservationsFiltersByOwner(t *testing.T) {
	repo := newFakeRepo()
	repo.seedUser(2, "cliente")
	repo.seedUser(3, "cliente")
	repo.seedArea(1, "Salão de Festas")
	repo.seedReservation(1, 2, day(), hm(8, 0), hm(9, 0))
	repo.seedReservation(1, 3, day(), hm(10, 0), hm(11, 0))
	repo.seedReservation(1, 2, day(), hm(14, 0), hm(16, 0))

	uc := NewListUserReservations(repo)

	out, err := uc.Execute(context.Background(), 2)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("esperava 2 reservas do usuário 2, veio %d", len(out))
	}
	for _, res := range out {
		if res.UserID != 2 {
			t.Fatalf("reserva de outro usuário na lista: %+v", res)
		}
	}
	if out[0].StartTime.After(out[1].StartTime) {
		t.Fatal("lista deveria vir ordenada por hora_inicio")
	}
}

func TestListUserReservationsIsReadOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.seedUser(2, "cliente")
	repo.seedArea(1, "Salão de Festas")
	repo.seedReservation(1, 2, day(), hm(8, 0), hm(9, 0))

	uc := NewListUserReservations(repo)

	first, err := uc.Execute(context.Background(), 2)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	second, err := uc.Execute(context.Background(), 2)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("leituras repetidas divergiram: %d vs %d", len(first), len(second))
	}
}
