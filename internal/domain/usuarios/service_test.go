package usuarios

import (
	"context"
	"errors"
	"testing"

	"club-deportivo/internal/security/password"
)

type testRepo struct {
	seq       int64
	porNombre map[string]Usuario
	fallaCon  error
}

func newTestRepo() *testRepo {
	return &testRepo{porNombre: map[string]Usuario{}}
}

func (r *testRepo) Crear(ctx context.Context, u Usuario) (Usuario, error) {
	if _, ok := r.porNombre[u.Usuario]; ok {
		return Usuario{}, ErrUsuarioDuplicado
	}
	r.seq++
	u.ID = r.seq
	r.porNombre[u.Usuario] = u
	return u, nil
}

func (r *testRepo) ObtenerPorUsuario(ctx context.Context, usuario string) (Usuario, error) {
	if r.fallaCon != nil {
		return Usuario{}, r.fallaCon
	}
	u, ok := r.porNombre[usuario]
	if !ok {
		return Usuario{}, ErrUsuarioNoEncontrado
	}
	return u, nil
}

func TestService_Autenticar(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	if _, err := svc.Crear(context.Background(), "admin", "12345", "Administrador"); err != nil {
		t.Fatalf("Crear error: %v", err)
	}

	ok, err := svc.Autenticar(context.Background(), "admin", "12345")
	if err != nil {
		t.Fatalf("Autenticar error: %v", err)
	}
	if !ok {
		t.Fatalf("expected credenciales válidas")
	}
}

func TestService_Autenticar_MismaRespuestaParaUsuarioYClave(t *testing.T) {
	// Clave incorrecta y usuario inexistente son indistinguibles para el caller.
	repo := newTestRepo()
	svc := NewService(repo, nil)

	if _, err := svc.Crear(context.Background(), "admin", "12345", "Administrador"); err != nil {
		t.Fatalf("Crear error: %v", err)
	}

	casos := []struct{ usuario, clave string }{
		{"admin", "malaclave"},
		{"fantasma", "12345"},
		{"", "12345"},
		{"admin", ""},
	}
	for _, c := range casos {
		ok, err := svc.Autenticar(context.Background(), c.usuario, c.clave)
		if err != nil {
			t.Fatalf("Autenticar(%q, %q) error: %v", c.usuario, c.clave, err)
		}
		if ok {
			t.Fatalf("Autenticar(%q, %q) = true, expected false", c.usuario, c.clave)
		}
	}
}

func TestService_Autenticar_ErrorDeStorageNoAutentica(t *testing.T) {
	repo := newTestRepo()
	repo.fallaCon = errors.New("db down")
	svc := NewService(repo, nil)

	ok, err := svc.Autenticar(context.Background(), "admin", "12345")
	if err == nil {
		t.Fatalf("expected error de storage")
	}
	if ok {
		t.Fatalf("nunca se autentica ante un error de storage")
	}
}

func TestService_Autenticar_ConArgon2id(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, password.Argon2id{})

	hash, err := password.Hash(password.Default, "12345")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if _, err := svc.Crear(context.Background(), "admin", hash, "Administrador"); err != nil {
		t.Fatalf("Crear error: %v", err)
	}

	ok, err := svc.Autenticar(context.Background(), "admin", "12345")
	if err != nil {
		t.Fatalf("Autenticar error: %v", err)
	}
	if !ok {
		t.Fatalf("expected credenciales válidas con hash argon2id")
	}

	ok, err = svc.Autenticar(context.Background(), "admin", "otra")
	if err != nil {
		t.Fatalf("Autenticar error: %v", err)
	}
	if ok {
		t.Fatalf("expected clave incorrecta rechazada")
	}
}

func TestService_Crear_RechazaDuplicadosYVacios(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)

	if _, err := svc.Crear(context.Background(), "admin", "12345", "Administrador"); err != nil {
		t.Fatalf("Crear error: %v", err)
	}
	if _, err := svc.Crear(context.Background(), "admin", "otra", ""); !errors.Is(err, ErrUsuarioDuplicado) {
		t.Fatalf("expected ErrUsuarioDuplicado, got %v", err)
	}
	if _, err := svc.Crear(context.Background(), "  ", "12345", ""); !errors.Is(err, ErrDatosInvalidos) {
		t.Fatalf("expected ErrDatosInvalidos, got %v", err)
	}
	if _, err := svc.Crear(context.Background(), "otro", "", ""); !errors.Is(err, ErrDatosInvalidos) {
		t.Fatalf("expected ErrDatosInvalidos sin clave, got %v", err)
	}
}
