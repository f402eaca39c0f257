package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

// "pendente" é o único estado alcançável: não existe fluxo de
// aprovação/recusa no desenho atual.
const StatusPendente Status = "pendente"

func InitialStatus() Status {
	return StatusPendente
}
