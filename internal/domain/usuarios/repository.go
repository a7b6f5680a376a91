package usuarios

import "context"

type Repository interface {
	// Crear inserta un usuario nuevo. Falla con ErrUsuarioDuplicado si el
	// nombre de login ya existe.
	Crear(ctx context.Context, u Usuario) (Usuario, error)

	ObtenerPorUsuario(ctx context.Context, usuario string) (Usuario, error)
}
