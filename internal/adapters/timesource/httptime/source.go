// Package httptime obtiene la fecha autoritativa de un servicio HTTP de hora.
// El servicio responde JSON con al menos {"date": "YYYY-MM-DD"} (mismo formato que GET /time).
package httptime

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelter-care/internal/platform/httpclient"
)

var ErrEmptyDate = errors.New("time source returned empty date")

type Source struct {
	client *httpclient.Client
	path   string
}

type Config struct {
	URL     string
	Timeout time.Duration
}

func New(cfg Config) (*Source, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("time source url required")
	}
	c, err := httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	if err != nil {
		return nil, err
	}
	return &Source{client: c, path: strings.TrimSpace(cfg.URL)}, nil
}

// NewWithClient permite inyectar un client (tests).
func NewWithClient(c *httpclient.Client, pathOrURL string) *Source {
	return &Source{client: c, path: pathOrURL}
}

// Today implementa clock.Source.
func (s *Source) Today(ctx context.Context) (string, error) {
	var out struct {
		Date string `json:"date"`
	}
	if err := s.client.GetJSON(ctx, s.path, nil, &out); err != nil {
		return "", fmt.Errorf("time source: %w", err)
	}
	d := strings.TrimSpace(out.Date)
	if d == "" {
		return "", ErrEmptyDate
	}
	return d, nil
}
