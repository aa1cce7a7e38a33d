package animals

import "context"

// Exists devuelve errs.ErrNotFound si el animal no existe.
// Lo consumen health/visits/medication sin importar este paquete (evita ciclos).
func (s *Service) Exists(ctx context.Context, id string) error {
	_, err := s.GetByID(ctx, id)
	return err
}
