package console

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/minervactl/internal/domain"
)

var activityKeys = map[string]string{
	"usuario": "usuario", "user": "usuario",
	"tipo": "tipo", "type": "tipo",
	"desde": "desde", "from": "desde",
	"hasta": "hasta", "to": "hasta",
}

var linkKeys = map[string]string{
	"fecha_inicio": "fecha_inicio", "from": "fecha_inicio",
	"fecha_fin": "fecha_fin", "to": "fecha_fin",
	"categoria_id": "categoria_id", "categoria": "categoria_id", "category": "categoria_id",
	"estado": "estado", "status": "estado",
}

// ParseActivityFilter builds an activity filter from key=value params.
// Values are kept verbatim.
func ParseActivityFilter(params map[string]string) (domain.ActivityFilter, error) {
	var f domain.ActivityFilter
	for k, v := range params {
		switch activityKeys[k] {
		case "usuario":
			f.User = v
		case "tipo":
			f.Type = v
		case "desde":
			f.From = v
		case "hasta":
			f.To = v
		default:
			return domain.ActivityFilter{}, domain.NewValidationError(k, "unknown filter (usuario, tipo, desde, hasta)")
		}
	}
	return f, nil
}

// ParseLinkFilter builds a link filter from key=value params. Status
// aliases are normalized, other values are kept verbatim.
func ParseLinkFilter(params map[string]string) (domain.LinkFilter, error) {
	var f domain.LinkFilter
	for k, v := range params {
		switch linkKeys[k] {
		case "fecha_inicio":
			f.From = v
		case "fecha_fin":
			f.To = v
		case "categoria_id":
			f.CategoryID = v
		case "estado":
			f.Status = v
			if s, err := domain.ParseLinkStatus(v); err == nil {
				f.Status = s.String()
			}
		default:
			return domain.LinkFilter{}, domain.NewValidationError(k, "unknown filter (fecha_inicio, fecha_fin, categoria_id, estado)")
		}
	}
	return f, nil
}

// ParseIDList parses a comma-separated id list. An empty string yields an
// empty, non-nil list.
func ParseIDList(raw string) ([]int64, error) {
	ids := []int64{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := ParseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseID parses a positive id, allowing a leading "#".
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(raw), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
