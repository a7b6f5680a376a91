package postgres

import (
	"context"
	"database/sql"
	"errors"

	"club-deportivo/internal/domain/usuarios"
)

type UsuariosRepo struct {
	db *sql.DB
}

func NewUsuariosRepo(db *sql.DB) *UsuariosRepo {
	return &UsuariosRepo{db: db}
}

func (r *UsuariosRepo) Crear(ctx context.Context, u usuarios.Usuario) (usuarios.Usuario, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO usuarios (usuario, clave, rol) VALUES ($1,$2,$3) RETURNING id`,
		u.Usuario, u.Clave, u.Rol,
	).Scan(&u.ID)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return usuarios.Usuario{}, usuarios.ErrUsuarioDuplicado
		}
		return usuarios.Usuario{}, err
	}
	return u, nil
}

func (r *UsuariosRepo) ObtenerPorUsuario(ctx context.Context, usuario string) (usuarios.Usuario, error) {
	var u usuarios.Usuario
	err := r.db.QueryRowContext(ctx,
		`SELECT id, usuario, clave, rol FROM usuarios WHERE usuario = $1`, usuario,
	).Scan(&u.ID, &u.Usuario, &u.Clave, &u.Rol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return usuarios.Usuario{}, usuarios.ErrUsuarioNoEncontrado
		}
		return usuarios.Usuario{}, err
	}
	return u, nil
}
