package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"club-deportivo/internal/domain/clientes"
)

type ClientesRepo struct {
	db *sql.DB
}

func NewClientesRepo(db *sql.DB) *ClientesRepo {
	return &ClientesRepo{db: db}
}

const clienteCols = `id, nombre, apellido, dni, fecha_nacimiento, direccion, telefono,
	apto_fisico, asociarse, fecha_alta`

func (r *ClientesRepo) CrearConMembresia(ctx context.Context, c clientes.Cliente, m clientes.Membresia) (clientes.Cliente, error) {
	if !m.Valida() {
		if m.Socio == nil && m.NoSocio == nil {
			return clientes.Cliente{}, clientes.ErrClienteSinMembresia
		}
		return clientes.Cliente{}, clientes.ErrMembresiaDoble
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return clientes.Cliente{}, err
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO cliente (nombre, apellido, dni, fecha_nacimiento, direccion, telefono,
			apto_fisico, asociarse, fecha_alta)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		c.Nombre, c.Apellido, c.DNI, c.FechaNacimiento, c.Direccion, c.Telefono,
		boolInt(c.AptoFisico), boolInt(c.Asociarse), c.FechaAlta,
	).Scan(&c.ID)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return clientes.Cliente{}, clientes.ErrDNIDuplicado
		}
		return clientes.Cliente{}, err
	}

	if err := insertarMembresia(ctx, tx, c.ID, m); err != nil {
		return clientes.Cliente{}, err
	}

	if err := tx.Commit(); err != nil {
		return clientes.Cliente{}, err
	}
	return c, nil
}

func (r *ClientesRepo) ObtenerPorID(ctx context.Context, id int64) (clientes.Cliente, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clienteCols+` FROM cliente WHERE id = $1`, id)
	return scanCliente(row)
}

func (r *ClientesRepo) ObtenerPorDNI(ctx context.Context, dni int) (clientes.Cliente, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+clienteCols+` FROM cliente WHERE dni = $1`, dni)
	return scanCliente(row)
}

func (r *ClientesRepo) Actualizar(ctx context.Context, c clientes.Cliente) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cliente
		SET nombre = $2, apellido = $3, dni = $4, fecha_nacimiento = $5,
			direccion = $6, telefono = $7, apto_fisico = $8, asociarse = $9
		WHERE id = $1
	`,
		c.ID, c.Nombre, c.Apellido, c.DNI, c.FechaNacimiento,
		c.Direccion, c.Telefono, boolInt(c.AptoFisico), boolInt(c.Asociarse),
	)
	if err != nil {
		if pgErrCode(err) == codeUniqueViolation {
			return clientes.ErrDNIDuplicado
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clientes.ErrClienteNoEncontrado
	}
	return nil
}

func (r *ClientesRepo) Listar(ctx context.Context) ([]clientes.Cliente, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clienteCols+` FROM cliente ORDER BY apellido ASC, nombre ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClientes(rows)
}

func (r *ClientesRepo) ObtenerMembresia(ctx context.Context, clienteID int64) (clientes.Membresia, error) {
	var existe bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM cliente WHERE id = $1)`, clienteID).Scan(&existe); err != nil {
		return clientes.Membresia{}, err
	}
	if !existe {
		return clientes.Membresia{}, clientes.ErrClienteNoEncontrado
	}

	var (
		soc        clientes.Socio
		baja       sql.NullTime
		tieneSocio bool
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, fecha_inscripcion, fecha_vencimiento_cuota, numero_carnet, carnet_entregado, fecha_baja
		FROM socio WHERE id = $1
	`, clienteID).Scan(&soc.ID, &soc.FechaInscripcion, &soc.FechaVencimientoCuota,
		&soc.NumeroCarnet, &intBoolScanner{&soc.CarnetEntregado}, &baja)
	switch {
	case err == nil:
		soc.FechaBaja = nullTimePtr(baja)
		tieneSocio = true
	case errors.Is(err, sql.ErrNoRows):
		// sigue con no_socio
	default:
		return clientes.Membresia{}, err
	}

	var (
		ns           clientes.NoSocio
		bajaNS       sql.NullTime
		tieneNoSocio bool
	)
	err = r.db.QueryRowContext(ctx,
		`SELECT id, fecha_baja FROM no_socio WHERE id = $1`, clienteID).Scan(&ns.ID, &bajaNS)
	switch {
	case err == nil:
		ns.FechaBaja = nullTimePtr(bajaNS)
		tieneNoSocio = true
	case errors.Is(err, sql.ErrNoRows):
	default:
		return clientes.Membresia{}, err
	}

	switch {
	case tieneSocio && tieneNoSocio:
		return clientes.Membresia{}, clientes.ErrMembresiaDoble
	case tieneSocio:
		return clientes.MembresiaSocio(soc), nil
	case tieneNoSocio:
		return clientes.MembresiaNoSocio(ns), nil
	default:
		return clientes.Membresia{}, clientes.ErrClienteSinMembresia
	}
}

func (r *ClientesRepo) CambiarMembresia(ctx context.Context, clienteID int64, m clientes.Membresia, asociarse bool) error {
	if !m.Valida() {
		if m.Socio == nil && m.NoSocio == nil {
			return clientes.ErrClienteSinMembresia
		}
		return clientes.ErrMembresiaDoble
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE cliente SET asociarse = $2 WHERE id = $1`, clienteID, boolInt(asociarse))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return clientes.ErrClienteNoEncontrado
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM socio WHERE id = $1`, clienteID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM no_socio WHERE id = $1`, clienteID); err != nil {
		return err
	}

	if err := insertarMembresia(ctx, tx, clienteID, m); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ClientesRepo) ActualizarSocio(ctx context.Context, s clientes.Socio) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE socio
		SET fecha_inscripcion = $2, fecha_vencimiento_cuota = $3,
			numero_carnet = $4, carnet_entregado = $5, fecha_baja = $6
		WHERE id = $1
	`,
		s.ID, s.FechaInscripcion, s.FechaVencimientoCuota,
		s.NumeroCarnet, boolInt(s.CarnetEntregado), toNullDate(s.FechaBaja),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clientes.ErrSocioNoEncontrado
	}
	return nil
}

func (r *ClientesRepo) ListarMorosos(ctx context.Context, ref time.Time) ([]clientes.Cliente, error) {
	// La referencia se trunca a día: la cuota que vence hoy todavía no es mora.
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.nombre, c.apellido, c.dni, c.fecha_nacimiento, c.direccion, c.telefono,
			c.apto_fisico, c.asociarse, c.fecha_alta
		FROM cliente c
		INNER JOIN socio s ON c.id = s.id
		WHERE s.fecha_vencimiento_cuota < $1::date AND s.fecha_baja IS NULL
		ORDER BY c.apellido ASC, c.nombre ASC
	`, soloFecha(ref))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClientes(rows)
}

func insertarMembresia(ctx context.Context, tx *sql.Tx, clienteID int64, m clientes.Membresia) error {
	if m.Socio != nil {
		soc := *m.Socio
		_, err := tx.ExecContext(ctx, `
			INSERT INTO socio (id, fecha_inscripcion, fecha_vencimiento_cuota, numero_carnet, carnet_entregado, fecha_baja)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, clienteID, soc.FechaInscripcion, soc.FechaVencimientoCuota,
			soc.NumeroCarnet, boolInt(soc.CarnetEntregado), toNullDate(soc.FechaBaja))
		return err
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO no_socio (id, fecha_baja) VALUES ($1,$2)`,
		clienteID, toNullDate(m.NoSocio.FechaBaja))
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCliente(row rowScanner) (clientes.Cliente, error) {
	var (
		c          clientes.Cliente
		nacimiento sql.NullTime
	)
	err := row.Scan(&c.ID, &c.Nombre, &c.Apellido, &c.DNI, &nacimiento,
		&c.Direccion, &c.Telefono,
		&intBoolScanner{&c.AptoFisico}, &intBoolScanner{&c.Asociarse}, &c.FechaAlta)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return clientes.Cliente{}, clientes.ErrClienteNoEncontrado
		}
		return clientes.Cliente{}, err
	}
	if nacimiento.Valid {
		c.FechaNacimiento = nacimiento.Time
	}
	return c, nil
}

func scanClientes(rows *sql.Rows) ([]clientes.Cliente, error) {
	out := make([]clientes.Cliente, 0)
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
