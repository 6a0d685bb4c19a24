package repository

import "time"

// DefaultPageSize tamaño de página de los listados cuando la configuración no indica otro.
const DefaultPageSize = 20

// Page paginación 1-indexada. Number <= 0 desactiva la paginación (se devuelve todo).
type Page struct {
	Number int
	Size   int
}

// NewPage construye una página; size <= 0 usa DefaultPageSize.
func NewPage(number, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Page{Number: number, Size: size}
}

// Enabled indica si hay que aplicar LIMIT/OFFSET.
func (p Page) Enabled() bool { return p.Number > 0 }

// Limit filas por página.
func (p Page) Limit() int {
	if p.Size <= 0 {
		return DefaultPageSize
	}
	return p.Size
}

// Offset filas a saltar: (página-1)*tamaño.
func (p Page) Offset() int {
	if !p.Enabled() {
		return 0
	}
	return (p.Number - 1) * p.Limit()
}

// DateRange rango inclusivo sobre created_at. Cualquiera de los extremos puede faltar.
// From ya viene expandido a 00:00:00 y To a 23:59:59 del día correspondiente.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// NewDateRange expande las fechas de inicio y fin a día completo en loc.
func NewDateRange(start, end *time.Time, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	var r DateRange
	if start != nil {
		s := start.In(loc)
		from := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc)
		r.From = &from
	}
	if end != nil {
		e := end.In(loc)
		to := time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, 0, loc)
		r.To = &to
	}
	return r
}

// Contains indica si t cae dentro del rango (extremos incluidos).
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// InvoiceCriteria filtro de los listados de facturas. Las borradas nunca se incluyen.
type InvoiceCriteria struct {
	Range       DateRange
	CustomerIDs []string // vacío = todos los clientes
	Page        Page
}

// MatchesCustomer indica si customerID pasa el filtro de clientes.
func (c InvoiceCriteria) MatchesCustomer(customerID string) bool {
	if len(c.CustomerIDs) == 0 {
		return true
	}
	for _, id := range c.CustomerIDs {
		if id == customerID {
			return true
		}
	}
	return false
}

// ProductCriteria filtro del catálogo, siempre ordenado por order ASC.
type ProductCriteria struct {
	IncludeDeleted bool
	Page           Page
}
