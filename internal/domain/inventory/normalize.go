package inventory

import (
	"strings"
	"time"
)

// DefaultUnit es la unidad usada cuando ni el agregado ni el caller declaran una.
const DefaultUnit = "pcs"

// validUnits unidades de medida aceptadas para stock, compras y ventas.
var validUnits = map[string]struct{}{
	"pcs":   {},
	"kg":    {},
	"g":     {},
	"l":     {},
	"ml":    {},
	"m":     {},
	"box":   {},
	"dozen": {},
}

// NormalizeUnit recorta y pasa a minúsculas la unidad. Cadena vacía significa
// "sin opinión": el caller difiere a la unidad ya registrada en el agregado.
func NormalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// IsValidUnit indica si la unidad (ya normalizada) pertenece al catálogo.
func IsValidUnit(unit string) bool {
	_, ok := validUnits[unit]
	return ok
}

// NormalizePhone elimina todo lo que no sea dígito.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidPhone exige exactamente 10 dígitos tras normalizar.
func IsValidPhone(normalized string) bool {
	return len(normalized) == 10
}

// NormalizeEmail recorta y pasa a minúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail acepta vacío (el email es opcional); si viene, debe contener '@'.
func IsValidEmail(normalized string) bool {
	return normalized == "" || strings.Contains(normalized, "@")
}

// dateLayouts formatos aceptados para fechas de compra/venta.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate intenta interpretar la fecha del documento (YYYY-MM-DD o RFC 3339).
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
