package images

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidImage lo envuelven los adapters cuando el archivo no se acepta
// (tipo o tamaño). El handler lo reporta como error de validación de "picture".
var ErrInvalidImage = errors.New("invalid image")

// Store recibe el binario de una imagen y devuelve una referencia opaca
// (URL o path) que se guarda en Animal.ImageRef.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
