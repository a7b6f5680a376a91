package memory

import (
	"context"
	"sort"

	"club-deportivo/internal/domain/actividades"
)

type actividadesRepo struct {
	s *Store
}

func (r *actividadesRepo) Crear(ctx context.Context, a actividades.Actividad) (actividades.Actividad, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.seqActividades++
	a.ID = r.s.seqActividades
	r.s.actividades[a.ID] = a
	return a, nil
}

func (r *actividadesRepo) ObtenerPorID(ctx context.Context, id int64) (actividades.Actividad, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.actividades[id]
	if !ok {
		return actividades.Actividad{}, actividades.ErrActividadNoEncontrada
	}
	return a, nil
}

func (r *actividadesRepo) Listar(ctx context.Context) ([]actividades.Actividad, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]actividades.Actividad, 0, len(r.s.actividades))
	for _, a := range r.s.actividades {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}
