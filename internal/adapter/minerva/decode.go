package minerva

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/minervactl/internal/domain"
)

// flexString decodes a JSON string, number or null into a string.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
	case len(b) > 0 && b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("flexString: %w", err)
		}
		*s = flexString(n.String())
	}
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime decodes the backend's timestamps: RFC 3339, naive date-times
// (interpreted as local time) and bare dates. null and "" yield the zero time.
type flexTime time.Time

func (t *flexTime) UnmarshalJSON(b []byte) error {
	var raw *string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("flexTime: %w", err)
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		*t = flexTime(time.Time{})
		return nil
	}
	for i, layout := range timeLayouts {
		var (
			parsed time.Time
			err    error
		)
		if i == 0 {
			parsed, err = time.Parse(layout, *raw)
		} else {
			parsed, err = time.ParseInLocation(layout, *raw, time.Local)
		}
		if err == nil {
			*t = flexTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("flexTime: unrecognized time %q", *raw)
}

// apiCategoryRef decodes a category reference given as an id, a numeric
// string or an {id, nombre} object.
type apiCategoryRef struct {
	ID   int64
	Name string
}

func (r *apiCategoryRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var obj struct {
			ID     int64      `json:"id"`
			Nombre flexString `json:"nombre"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		r.ID, r.Name = obj.ID, string(obj.Nombre)
		return nil
	}

	var s flexString
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	id, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return fmt.Errorf("category ref: %w", err)
	}
	r.ID = id
	return nil
}

// decodeList decodes a bare JSON array or the first page of a paginated
// envelope {"results": [...]}.
func decodeList[T any](raw []byte) ([]T, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty body")
	}

	switch raw[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		return items, nil
	case '{':
		var page struct {
			Results *[]T `json:"results"`
		}
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, err
		}
		if page.Results == nil {
			return nil, errors.New("object without results")
		}
		return *page.Results, nil
	}
	return nil, fmt.Errorf("unexpected json value starting with %q", raw[0])
}

type apiUser struct {
	Username string `json:"username"`
}

func (u apiUser) toDomain() domain.User {
	return domain.User{Username: u.Username}
}

type apiActivity struct {
	FechaHora     flexTime   `json:"fecha_hora"`
	Usuario       flexString `json:"usuario"`
	UsuarioNombre flexString `json:"usuario_nombre"`
	Tipo          string     `json:"tipo"`
	Descripcion   string     `json:"descripcion"`
}

func (a apiActivity) toDomain() domain.Activity {
	act := domain.Activity{
		OccurredAt:  time.Time(a.FechaHora),
		Type:        domain.ActivityType(a.Tipo),
		Description: a.Descripcion,
	}
	switch {
	case strings.TrimSpace(string(a.UsuarioNombre)) != "":
		name := strings.TrimSpace(string(a.UsuarioNombre))
		act.Actor = &name
	case a.Usuario != "":
		name := string(a.Usuario)
		act.Actor = &name
	}
	return act
}

type apiCategory struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

func (c apiCategory) toDomain() domain.Category {
	return domain.Category{ID: c.ID, Name: c.Nombre}
}

type apiLink struct {
	ID             int64            `json:"id"`
	URL            string           `json:"url"`
	FechaCarga     flexTime         `json:"fecha_carga"`
	CargadoPor     flexString       `json:"cargado_por"`
	Estado         string           `json:"estado"`
	Categorias     []apiCategoryRef `json:"categorias"`
	CategoriasInfo []apiCategoryRef `json:"categorias_info"`
}

func (l apiLink) toDomain() domain.Link {
	refs := l.CategoriasInfo
	if refs == nil {
		refs = l.Categorias
	}
	cats := make([]domain.CategoryRef, 0, len(refs))
	for _, r := range refs {
		cats = append(cats, domain.CategoryRef{ID: r.ID, Name: r.Name})
	}
	return domain.Link{
		ID:         l.ID,
		URL:        l.URL,
		UploadedAt: time.Time(l.FechaCarga),
		UploadedBy: string(l.CargadoPor),
		Status:     domain.LinkStatus(l.Estado),
		Categories: cats,
	}
}

func mapSlice[A, B any](in []A, fn func(A) B) []B {
	out := make([]B, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
