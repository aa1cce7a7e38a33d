// Package localdisk guarda las fotos de animales en un directorio local.
package localdisk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"shelter-care/internal/ports/images"

	"github.com/google/uuid"
)

const maxImageBytes = 10 << 20

var (
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type", images.ErrInvalidImage)
	ErrTooLarge        = fmt.Errorf("%w: too large", images.ErrInvalidImage)
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type Store struct {
	dir    string
	prefix string // prefijo público de la referencia, p.ej. "/uploads"
}

func New(dir, publicPrefix string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("upload dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, prefix: strings.TrimRight(publicPrefix, "/")}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save escribe r con un nombre único y devuelve la referencia pública.
// Si la escritura falla no queda archivo parcial.
func (s *Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + ext
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op después del rename

	n, err := io.Copy(tmp, io.LimitReader(r, maxImageBytes+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	if n > maxImageBytes {
		return "", ErrTooLarge
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return s.prefix + "/" + name, nil
}
