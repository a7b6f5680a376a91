package actividades

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	seq  int64
	byID map[int64]Actividad
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Actividad{}}
}

func (r *testRepo) Crear(ctx context.Context, a Actividad) (Actividad, error) {
	r.seq++
	a.ID = r.seq
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) ObtenerPorID(ctx context.Context, id int64) (Actividad, error) {
	a, ok := r.byID[id]
	if !ok {
		return Actividad{}, ErrActividadNoEncontrada
	}
	return a, nil
}

func (r *testRepo) Listar(ctx context.Context) ([]Actividad, error) {
	out := make([]Actividad, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func TestService_Crear(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a, err := svc.Crear(context.Background(), "  Natación  ", 2500)
	if err != nil {
		t.Fatalf("Crear error: %v", err)
	}
	if a.ID == 0 || a.Nombre != "Natación" || a.Costo != 2500 {
		t.Fatalf("unexpected actividad: %+v", a)
	}

	// Costo cero es válido: actividad gratuita
	if _, err := svc.Crear(context.Background(), "Ajedrez", 0); err != nil {
		t.Fatalf("Crear costo cero error: %v", err)
	}
}

func TestService_Crear_RechazaDatosInvalidos(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Crear(context.Background(), "   ", 100); !errors.Is(err, ErrDatosInvalidos) {
		t.Fatalf("expected ErrDatosInvalidos sin nombre, got %v", err)
	}
	if _, err := svc.Crear(context.Background(), "Tenis", -1); !errors.Is(err, ErrDatosInvalidos) {
		t.Fatalf("expected ErrDatosInvalidos con costo negativo, got %v", err)
	}
}

func TestService_ObtenerPorID(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	a, err := svc.Crear(context.Background(), "Tenis", 3000)
	if err != nil {
		t.Fatalf("Crear error: %v", err)
	}

	got, err := svc.ObtenerPorID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("ObtenerPorID error: %v", err)
	}
	if got.Nombre != "Tenis" {
		t.Fatalf("unexpected actividad: %+v", got)
	}

	if _, err := svc.ObtenerPorID(context.Background(), 99); !errors.Is(err, ErrActividadNoEncontrada) {
		t.Fatalf("expected ErrActividadNoEncontrada, got %v", err)
	}
}
