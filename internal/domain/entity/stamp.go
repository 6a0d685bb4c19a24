package entity

import "time"

// StampTime normaliza un instante a precisión de segundos, que es la que guardan las columnas
// created_at / updated_at y la que usan los filtros de fecha inclusivos (… 23:59:59).
func StampTime(t time.Time) time.Time {
	return t.Truncate(time.Second)
}
