// Package clock entrega el "hoy" canónico del servicio, independiente del reloj del cliente.
package clock

import (
	"context"
	"fmt"
	"time"

	"shelter-care/internal/platform/logger"

	"golang.org/x/sync/singleflight"
)

// Source es la fuente autoritativa de la fecha (ISO YYYY-MM-DD).
type Source interface {
	Today(ctx context.Context) (string, error)
}

// SystemSource usa el reloj local en la zona indicada.
type SystemSource struct {
	Loc *time.Location
	Now func() time.Time
}

func (s SystemSource) Today(_ context.Context) (string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := s.Loc
	if loc == nil {
		loc = time.Local
	}
	return DateOf(now().In(loc)).String(), nil
}

// Provider resuelve la fecha de hoy. Si la fuente falla cae al reloj local
// y lo registra como modo degradado; nunca devuelve error al llamador.
type Provider struct {
	src     Source
	loc     *time.Location
	now     func() time.Time
	log     logger.Logger
	timeout time.Duration
	group   singleflight.Group
}

type Options struct {
	Source   Source
	Location *time.Location
	Logger   logger.Logger
	// Timeout acota cada consulta compartida a la fuente (default 2s).
	Timeout time.Duration
}

const defaultSourceTimeout = 2 * time.Second

func NewProvider(opts Options) *Provider {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	src := opts.Source
	if src == nil {
		src = SystemSource{Loc: loc}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultSourceTimeout
	}
	return &Provider{
		src:     src,
		loc:     loc,
		now:     time.Now,
		log:     log,
		timeout: timeout,
	}
}

// Location es la zona con la que el evaluador trunca fechas.
func (p *Provider) Location() *time.Location { return p.loc }

// Now devuelve el instante actual en la zona del provider.
func (p *Provider) Now() time.Time { return p.now().In(p.loc) }

func (p *Provider) Today(ctx context.Context) Date {
	// Llamadas concurrentes comparten una sola consulta a la fuente; la
	// consulta no hereda la cancelación de quien la inició.
	shared := context.WithoutCancel(ctx)
	v, err, _ := p.group.Do("today", func() (any, error) {
		sctx, cancel := context.WithTimeout(shared, p.timeout)
		defer cancel()
		raw, err := p.src.Today(sctx)
		if err != nil {
			return Date{}, err
		}
		d, err := ParseDate(raw)
		if err != nil {
			return Date{}, fmt.Errorf("time source returned %q: %w", raw, err)
		}
		return d, nil
	})
	if err == nil {
		return v.(Date)
	}

	local := DateOf(p.Now())
	p.log.Warn("clock degraded: using local system date", logger.Fields{
		"error":      err.Error(),
		"local_date": local.String(),
		"timezone":   p.loc.String(),
	})
	return local
}
