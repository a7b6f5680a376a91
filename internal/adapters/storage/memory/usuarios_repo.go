package memory

import (
	"context"

	"club-deportivo/internal/domain/usuarios"
)

type usuariosRepo struct {
	s *Store
}

func (r *usuariosRepo) Crear(ctx context.Context, u usuarios.Usuario) (usuarios.Usuario, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existente := range r.s.usuarios {
		if existente.Usuario == u.Usuario {
			return usuarios.Usuario{}, usuarios.ErrUsuarioDuplicado
		}
	}

	r.s.seqUsuarios++
	u.ID = r.s.seqUsuarios
	r.s.usuarios[u.ID] = u
	return u, nil
}

func (r *usuariosRepo) ObtenerPorUsuario(ctx context.Context, usuario string) (usuarios.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.usuarios {
		if u.Usuario == usuario {
			return u, nil
		}
	}
	return usuarios.Usuario{}, usuarios.ErrUsuarioNoEncontrado
}
