package reservation

import "time"

// Overlaps é o teste clássico de interseção de intervalos semiabertos
// [start, end): reservas encostadas (a.fim == b.início) NÃO conflitam.
// A consulta SQL do repositório espelha exatamente este predicado.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
