// Package directory resuelve responsables (owners) por email.
// HTTPDirectory consulta el servicio externo; Static es el directorio de dev/tests.
package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shelter-care/internal/platform/httpclient"
	"shelter-care/internal/ports/owners"
)

var (
	ErrDirectoryNotConfigured = errors.New("owner directory not configured")
	ErrDirectoryUpstream      = errors.New("owner directory upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío se usa "X-Api-Key".
	APIKeyHeader string
	Timeout      time.Duration
}

type HTTPDirectory struct {
	client *httpclient.Client
}

func NewHTTPDirectory(cfg Config) (*HTTPDirectory, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrDirectoryNotConfigured
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	headers := map[string]string{}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		headers[h] = key
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c, err := httpclient.New(httpclient.Config{
		BaseURL: cfg.BaseURL,
		Timeout: timeout,
		Headers: headers,
	})
	if err != nil {
		return nil, err
	}
	return &HTTPDirectory{client: c}, nil
}

type ownerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LookupByEmail: GET /v1/owners?email=... ; 404 => owners.ErrOwnerNotFound.
func (d *HTTPDirectory) LookupByEmail(ctx context.Context, email string) (owners.Owner, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return owners.Owner{}, owners.ErrOwnerNotFound
	}

	var out ownerResponse
	err := d.client.GetJSON(ctx, "/v1/owners", url.Values{"email": {email}}, &out)
	switch {
	case httpclient.IsStatus(err, http.StatusNotFound):
		return owners.Owner{}, owners.ErrOwnerNotFound
	case err != nil:
		return owners.Owner{}, fmt.Errorf("%w: %v", ErrDirectoryUpstream, err)
	}

	if strings.TrimSpace(out.ID) == "" {
		return owners.Owner{}, fmt.Errorf("%w: response missing id", ErrDirectoryUpstream)
	}
	return owners.Owner{
		ID:    strings.TrimSpace(out.ID),
		Email: strings.TrimSpace(out.Email),
		Name:  strings.TrimSpace(out.Name),
	}, nil
}
