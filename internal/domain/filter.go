package domain

import "github.com/heartmarshall/minervactl/internal/query"

// ActivityFilter holds the optional activity list filters. Dates are passed
// to the backend verbatim (YYYY-MM-DD expected, not enforced).
type ActivityFilter struct {
	User string
	Type string
	From string
	To   string
}

// Fields returns the filter in wire order: usuario, tipo, desde, hasta.
func (f ActivityFilter) Fields() []query.Field {
	return []query.Field{
		{Key: "usuario", Value: f.User},
		{Key: "tipo", Value: f.Type},
		{Key: "desde", Value: f.From},
		{Key: "hasta", Value: f.To},
	}
}

// Query returns the encoded query string.
func (f ActivityFilter) Query() string {
	return query.Build(f.Fields()...)
}

// IsEmpty reports whether no filter value is set.
func (f ActivityFilter) IsEmpty() bool {
	return f.Query() == ""
}

// LinkFilter holds the optional link list filters.
type LinkFilter struct {
	From       string
	To         string
	CategoryID string
	Status     string
}

// Fields returns the filter in wire order: fecha_inicio, fecha_fin,
// categoria_id, estado.
func (f LinkFilter) Fields() []query.Field {
	return []query.Field{
		{Key: "fecha_inicio", Value: f.From},
		{Key: "fecha_fin", Value: f.To},
		{Key: "categoria_id", Value: f.CategoryID},
		{Key: "estado", Value: f.Status},
	}
}

// Query returns the encoded query string.
func (f LinkFilter) Query() string {
	return query.Build(f.Fields()...)
}
