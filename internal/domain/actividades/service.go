package actividades

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrDatosInvalidos        = errors.New("datos de actividad inválidos")
	ErrActividadNoEncontrada = errors.New("actividad no encontrada")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Crear(ctx context.Context, nombre string, costo float64) (Actividad, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" || costo < 0 {
		return Actividad{}, ErrDatosInvalidos
	}
	return s.repo.Crear(ctx, Actividad{Nombre: nombre, Costo: costo})
}

func (s *Service) ObtenerPorID(ctx context.Context, id int64) (Actividad, error) {
	return s.repo.ObtenerPorID(ctx, id)
}

func (s *Service) Listar(ctx context.Context) ([]Actividad, error) {
	return s.repo.Listar(ctx)
}
