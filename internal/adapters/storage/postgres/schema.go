package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SchemaVersion es el marcador persistido del esquema. Subirlo dispara el
// drop/recreate destructivo en EnsureSchema.
const SchemaVersion = 3

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS cliente (
		id BIGSERIAL PRIMARY KEY,
		nombre TEXT NOT NULL,
		apellido TEXT NOT NULL,
		dni BIGINT NOT NULL UNIQUE,
		fecha_nacimiento DATE,
		direccion TEXT NOT NULL DEFAULT '',
		telefono TEXT NOT NULL DEFAULT '',
		apto_fisico INT NOT NULL DEFAULT 0,
		asociarse INT NOT NULL DEFAULT 0,
		fecha_alta DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS socio (
		id BIGINT PRIMARY KEY REFERENCES cliente(id),
		fecha_inscripcion DATE NOT NULL,
		fecha_vencimiento_cuota DATE NOT NULL,
		numero_carnet INT NOT NULL DEFAULT 0,
		carnet_entregado INT NOT NULL DEFAULT 0,
		fecha_baja DATE
	)`,
	`CREATE TABLE IF NOT EXISTS no_socio (
		id BIGINT PRIMARY KEY REFERENCES cliente(id),
		fecha_baja DATE
	)`,
	`CREATE TABLE IF NOT EXISTS actividad (
		id BIGSERIAL PRIMARY KEY,
		nombre TEXT NOT NULL,
		costo REAL NOT NULL DEFAULT 0
	)`,
	// El historial de pagos referencia a cliente(id), no a la especialización:
	// la conversión socio/no_socio borra la fila de socio o no_socio y el
	// historial debe sobrevivirla. socio, no_socio y cliente comparten el id.
	`CREATE TABLE IF NOT EXISTS cuota (
		id BIGSERIAL PRIMARY KEY,
		id_socio BIGINT NOT NULL REFERENCES cliente(id),
		fecha_pago DATE NOT NULL,
		monto REAL NOT NULL,
		medio_pago TEXT NOT NULL DEFAULT '',
		cantidad_cuotas INT NOT NULL DEFAULT 1,
		descuento REAL NOT NULL DEFAULT 0,
		monto_total REAL NOT NULL,
		fecha_vencimiento DATE NOT NULL,
		comprobante TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS registro_actividad (
		id BIGSERIAL PRIMARY KEY,
		id_no_socio BIGINT NOT NULL REFERENCES cliente(id),
		id_actividad BIGINT NOT NULL REFERENCES actividad(id),
		fecha_pago DATE NOT NULL,
		monto REAL NOT NULL,
		medio_pago TEXT NOT NULL DEFAULT '',
		cantidad_cuotas INT NOT NULL DEFAULT 1,
		descuento REAL NOT NULL DEFAULT 0,
		monto_total REAL NOT NULL,
		comprobante TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
		id BIGSERIAL PRIMARY KEY,
		usuario TEXT NOT NULL UNIQUE,
		clave TEXT NOT NULL,
		rol TEXT NOT NULL DEFAULT ''
	)`,
}

// dropStatements invierte el orden de creación para respetar las FKs.
var dropStatements = []string{
	`DROP TABLE IF EXISTS registro_actividad`,
	`DROP TABLE IF EXISTS cuota`,
	`DROP TABLE IF EXISTS usuarios`,
	`DROP TABLE IF EXISTS actividad`,
	`DROP TABLE IF EXISTS no_socio`,
	`DROP TABLE IF EXISTS socio`,
	`DROP TABLE IF EXISTS cliente`,
}

// EnsureSchema crea el esquema si no existe y verifica el marcador de
// versión. Con la versión vigente es un no-op (idempotente). Con una versión
// distinta hace drop y recreate de TODAS las tablas, descartando los datos:
// es un upgrade destructivo deliberado, no una migración. No debe correr en
// concurrencia con ninguna otra operación sobre el mismo store.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_version (version INT NOT NULL)`); err != nil {
		return err
	}

	var version int
	err = tx.QueryRowContext(ctx, `SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// store nuevo
		if err := crearTodo(ctx, tx); err != nil {
			return err
		}
	case err != nil:
		return err
	case version == SchemaVersion:
		return tx.Commit()
	default:
		// versión distinta: upgrade destructivo
		for _, stmt := range dropStatements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("drop: %w", err)
			}
		}
		if err := crearTodo(ctx, tx); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM schema_version`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES ($1)`, SchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}

func crearTodo(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range createStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create: %w", err)
		}
	}
	return nil
}
