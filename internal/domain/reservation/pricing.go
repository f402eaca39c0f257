package reservation

import "time"

// Taxa mínima cobrada quando a duração é nula ou invertida. Entrada
// malformada não é erro aqui: o default permissivo é intencional.
const MinimumFee = 10

const hourlyRate = 10

// Price deriva o valor da reserva a partir da duração. Horas inteiras
// (piso) vezes a tarifa; duração <= 0 cai na taxa mínima. O valor vindo
// do cliente é sempre ignorado e recalculado por aqui.
func Price(start, end time.Time) int {
	hours := end.Sub(start).Seconds() / 3600

	if hours <= 0 {
		return MinimumFee
	}
	return int(hours) * hourlyRate
}
