package actividades

import "context"

type Repository interface {
	Crear(ctx context.Context, a Actividad) (Actividad, error)
	ObtenerPorID(ctx context.Context, id int64) (Actividad, error)
	Listar(ctx context.Context) ([]Actividad, error)
}
