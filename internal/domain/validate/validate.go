// Package validate acumula errores de campos requeridos antes de persistir un registro.
package validate

import (
	"fmt"
	"strings"
	"time"

	"shelter-care/internal/domain/errs"
	"shelter-care/internal/platform/clock"
)

// Checker junta todos los campos inválidos para reportarlos juntos.
// El orden del reporte es el orden en que se chequearon.
type Checker struct {
	fields []string
	seen   map[string]struct{}
}

func (c *Checker) fail(field string) {
	if c.seen == nil {
		c.seen = map[string]struct{}{}
	}
	if _, ok := c.seen[field]; ok {
		return
	}
	c.seen[field] = struct{}{}
	c.fields = append(c.fields, field)
}

// Invalid marca field como malformado.
func (c *Checker) Invalid(field string) { c.fail(field) }

// Required exige un string no vacío (ignorando espacios).
func (c *Checker) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.fail(field)
	}
}

func (c *Checker) RequiredDate(field string, d clock.Date) {
	if d.IsZero() {
		c.fail(field)
	}
}

// Date parsea raw como YYYY-MM-DD. Malformado marca field y sigue;
// vacío devuelve la fecha cero sin marcar (eso lo decide RequiredDate).
func (c *Checker) Date(field, raw string) clock.Date {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return clock.Date{}
	}
	d, err := clock.ParseDate(raw)
	if err != nil {
		c.fail(field)
		return clock.Date{}
	}
	return d
}

// OptionalDate es Date pero devuelve nil para vacío o malformado.
func (c *Checker) OptionalDate(field, raw string) *clock.Date {
	d := c.Date(field, raw)
	if d.IsZero() {
		return nil
	}
	return &d
}

func (c *Checker) RequiredTime(field string, t time.Time) {
	if t.IsZero() {
		c.fail(field)
	}
}

// AnyTrue exige que al menos uno de vs sea true.
func (c *Checker) AnyTrue(field string, vs ...bool) {
	for _, v := range vs {
		if v {
			return
		}
	}
	c.fail(field)
}

// OneOf exige que value (si no está vacío) sea uno de allowed.
func (c *Checker) OneOf(field, value string, allowed ...string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	c.fail(field)
}

func (c *Checker) NonNegative(field string, v *float64) {
	if v != nil && *v < 0 {
		c.fail(field)
	}
}

func (c *Checker) OK() bool { return len(c.fields) == 0 }

// Err devuelve *errs.ValidationError con todos los campos, o nil.
func (c *Checker) Err() error {
	if c.OK() {
		return nil
	}
	out := make([]string, len(c.fields))
	copy(out, c.fields)
	return &errs.ValidationError{Fields: out}
}

// DateRange valida start <= end. Igualdad aceptada.
func DateRange(start, end clock.Date) error {
	if start.After(end) {
		return fmt.Errorf("%s > %s: %w", start, end, errs.ErrInvalidDateRange)
	}
	return nil
}
