package postgres

import (
	"context"
	"database/sql"
	"errors"

	"club-deportivo/internal/domain/actividades"
)

type ActividadesRepo struct {
	db *sql.DB
}

func NewActividadesRepo(db *sql.DB) *ActividadesRepo {
	return &ActividadesRepo{db: db}
}

func (r *ActividadesRepo) Crear(ctx context.Context, a actividades.Actividad) (actividades.Actividad, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO actividad (nombre, costo) VALUES ($1,$2) RETURNING id`,
		a.Nombre, a.Costo,
	).Scan(&a.ID)
	if err != nil {
		return actividades.Actividad{}, err
	}
	return a, nil
}

func (r *ActividadesRepo) ObtenerPorID(ctx context.Context, id int64) (actividades.Actividad, error) {
	var a actividades.Actividad
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nombre, costo FROM actividad WHERE id = $1`, id,
	).Scan(&a.ID, &a.Nombre, &a.Costo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return actividades.Actividad{}, actividades.ErrActividadNoEncontrada
		}
		return actividades.Actividad{}, err
	}
	return a, nil
}

func (r *ActividadesRepo) Listar(ctx context.Context) ([]actividades.Actividad, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nombre, costo FROM actividad ORDER BY nombre ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]actividades.Actividad, 0)
	for rows.Next() {
		var a actividades.Actividad
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Costo); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
