package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/appdev0823/nhap-thanh-long-heroku/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// execBatch envía el lote y lee cada resultado; el primer error corta.
func execBatch(br pgx.BatchResults, n int, what string) error {
	for i := 0; i < n; i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("%s (fila %d): %w", what, i, err)
		}
	}
	return br.Close()
}

// where acumula condiciones con placeholders numerados en orden.
type where struct {
	conds []string
	args  []any
}

// add agrega una condición; cada %d de cond se reemplaza por el número del nuevo argumento.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "%d", fmt.Sprint(len(w.args))))
}

func (w *where) addRange(column string, r repository.DateRange) {
	if r.From != nil {
		w.add(column+" >= $%d", *r.From)
	}
	if r.To != nil {
		w.add(column+" <= $%d", *r.To)
	}
}

func (w *where) sql() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page agrega LIMIT/OFFSET si la página está activa.
func (w *where) page(p repository.Page) string {
	if !p.Enabled() {
		return ""
	}
	w.args = append(w.args, p.Limit(), p.Offset())
	n := len(w.args)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n-1, n)
}
