package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"club-deportivo/internal/domain/actividades"
	"club-deportivo/internal/domain/clientes"
	"club-deportivo/internal/domain/pagos"
)

type PagosRepo struct {
	db *sql.DB
}

func NewPagosRepo(db *sql.DB) *PagosRepo {
	return &PagosRepo{db: db}
}

const cuotaCols = `id, id_socio, fecha_pago, monto, medio_pago, cantidad_cuotas,
	descuento, monto_total, fecha_vencimiento, comprobante`

func (r *PagosRepo) RegistrarCuota(ctx context.Context, c pagos.Cuota, nuevoVencimiento time.Time) (pagos.Cuota, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return pagos.Cuota{}, err
	}
	defer func() { _ = tx.Rollback() }()

	// El avance del vencimiento valida de paso que el socio exista y esté vivo.
	res, err := tx.ExecContext(ctx, `
		UPDATE socio SET fecha_vencimiento_cuota = $2
		WHERE id = $1 AND fecha_baja IS NULL
	`, c.IDSocio, nuevoVencimiento)
	if err != nil {
		return pagos.Cuota{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return pagos.Cuota{}, pagos.ErrSocioNoEncontrado
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO cuota (id_socio, fecha_pago, monto, medio_pago, cantidad_cuotas,
			descuento, monto_total, fecha_vencimiento, comprobante)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		c.IDSocio, c.FechaPago, c.Monto, c.MedioPago, c.CantidadCuotas,
		c.Descuento, c.MontoTotal, c.FechaVencimiento, c.Comprobante,
	).Scan(&c.ID)
	if err != nil {
		return pagos.Cuota{}, err
	}

	if err := tx.Commit(); err != nil {
		return pagos.Cuota{}, err
	}
	return c, nil
}

func (r *PagosRepo) RegistrarActividad(ctx context.Context, ra pagos.RegistroActividad) (pagos.RegistroActividad, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO registro_actividad (id_no_socio, id_actividad, fecha_pago, monto,
			medio_pago, cantidad_cuotas, descuento, monto_total, comprobante)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		ra.IDCliente, ra.IDActividad, ra.FechaPago, ra.Monto,
		ra.MedioPago, ra.CantidadCuotas, ra.Descuento, ra.MontoTotal, ra.Comprobante,
	).Scan(&ra.ID)
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			if strings.Contains(pgConstraint(err), "actividad") && !strings.Contains(pgConstraint(err), "no_socio") {
				return pagos.RegistroActividad{}, actividades.ErrActividadNoEncontrada
			}
			return pagos.RegistroActividad{}, clientes.ErrClienteNoEncontrado
		}
		return pagos.RegistroActividad{}, err
	}
	return ra, nil
}

func (r *PagosRepo) CuotasPorSocio(ctx context.Context, socioID int64) ([]pagos.Cuota, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+cuotaCols+` FROM cuota
		WHERE id_socio = $1
		ORDER BY fecha_pago DESC, id DESC
	`, socioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pagos.Cuota, 0)
	for rows.Next() {
		c, err := scanCuota(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PagosRepo) UltimaCuota(ctx context.Context, socioID int64) (pagos.Cuota, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+cuotaCols+` FROM cuota
		WHERE id_socio = $1
		ORDER BY fecha_pago DESC, id DESC
		LIMIT 1
	`, socioID)

	c, err := scanCuota(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pagos.Cuota{}, pagos.ErrSinCuotas
		}
		return pagos.Cuota{}, err
	}
	return c, nil
}

func (r *PagosRepo) RegistrosPorCliente(ctx context.Context, clienteID int64) ([]pagos.RegistroActividad, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, id_no_socio, id_actividad, fecha_pago, monto, medio_pago,
			cantidad_cuotas, descuento, monto_total, comprobante
		FROM registro_actividad
		WHERE id_no_socio = $1
		ORDER BY fecha_pago DESC, id DESC
	`, clienteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pagos.RegistroActividad, 0)
	for rows.Next() {
		var ra pagos.RegistroActividad
		if err := rows.Scan(&ra.ID, &ra.IDCliente, &ra.IDActividad, &ra.FechaPago, &ra.Monto,
			&ra.MedioPago, &ra.CantidadCuotas, &ra.Descuento, &ra.MontoTotal, &ra.Comprobante); err != nil {
			return nil, err
		}
		out = append(out, ra)
	}
	return out, rows.Err()
}

func scanCuota(row rowScanner) (pagos.Cuota, error) {
	var c pagos.Cuota
	err := row.Scan(&c.ID, &c.IDSocio, &c.FechaPago, &c.Monto, &c.MedioPago,
		&c.CantidadCuotas, &c.Descuento, &c.MontoTotal, &c.FechaVencimiento, &c.Comprobante)
	if err != nil {
		return pagos.Cuota{}, err
	}
	return c, nil
}
