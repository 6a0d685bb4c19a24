package dto

import "time"

// Formatos de fecha usados en las respuestas.
const (
	DateTimeLayout = "02/01/2006 15:04:05"
	DateLayout     = "02/01/2006"
	// QueryDateLayout formato de start_date / end_date en la query string.
	QueryDateLayout = "2006-01-02"
)

// PageQuery paginación 1-indexada para listados. page ausente, 0 o negativa = sin paginar;
// un valor no numérico lo rechaza QueryParser.
type PageQuery struct {
	Page int `query:"page"`
}

// DateRangeQuery rango opcional por fecha de creación (YYYY-MM-DD, ambos inclusivos).
type DateRangeQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// ParseDates convierte start_date / end_date en la zona loc; vacío = sin límite.
func (q DateRangeQuery) ParseDates(loc *time.Location) (start, end *time.Time, err error) {
	if q.StartDate != "" {
		t, err := time.ParseInLocation(QueryDateLayout, q.StartDate, loc)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if q.EndDate != "" {
		t, err := time.ParseInLocation(QueryDateLayout, q.EndDate, loc)
		if err != nil {
			return nil, nil, err
		}
		end = &t
	}
	return start, end, nil
}

// ListResponse lista con el total de filas que cumplen el filtro (sin paginar).
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de éxito.
type MessageResponse struct {
	Message string `json:"message"`
}

func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}
