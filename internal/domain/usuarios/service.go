package usuarios

import (
	"context"
	"errors"
	"strings"

	"club-deportivo/internal/security/password"
)

var (
	ErrDatosInvalidos      = errors.New("datos de usuario inválidos")
	ErrUsuarioDuplicado    = errors.New("nombre de usuario ya registrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
)

type Service struct {
	repo     Repository
	comparer password.Comparer
}

func NewService(repo Repository, comparer password.Comparer) *Service {
	if comparer == nil {
		comparer = password.Exact{}
	}
	return &Service{repo: repo, comparer: comparer}
}

// Autenticar valida las credenciales. Usuario inexistente y clave incorrecta
// devuelven ambos (false, nil): el resultado no distingue cuál falló, para
// no permitir enumerar usuarios. Un error de storage se devuelve como error
// (y false) para que el caller pueda loguearlo sin autenticar.
func (s *Service) Autenticar(ctx context.Context, usuario, clave string) (bool, error) {
	usuario = strings.TrimSpace(usuario)
	if usuario == "" || clave == "" {
		return false, nil
	}

	u, err := s.repo.ObtenerPorUsuario(ctx, usuario)
	if err != nil {
		if errors.Is(err, ErrUsuarioNoEncontrado) {
			return false, nil
		}
		return false, err
	}

	return s.comparer.Compare(u.Clave, clave), nil
}

// Crear registra una cuenta administrativa (bootstrap/seed).
func (s *Service) Crear(ctx context.Context, usuario, clave, rol string) (Usuario, error) {
	usuario = strings.TrimSpace(usuario)
	if usuario == "" || clave == "" {
		return Usuario{}, ErrDatosInvalidos
	}
	return s.repo.Crear(ctx, Usuario{
		Usuario: usuario,
		Clave:   clave,
		Rol:     strings.TrimSpace(rol),
	})
}
