package main

import (
	"context"
	"errors"
	"log"
	"time"

	"go.uber.org/zap"

	pg "club-deportivo/internal/adapters/storage/postgres"
	"club-deportivo/internal/config"
	"club-deportivo/internal/domain/clientes"
	"club-deportivo/internal/domain/usuarios"
	"club-deportivo/internal/platform/logger"
)

// Carga de datos de arranque: cuenta administrativa y una tanda de clientes
// de muestra con socios al día, socios morosos y no socios.
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DSN == "" {
		log.Fatal("seed: DB_DSN requerido")
	}

	l, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    "club-deportivo-seed",
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	db, err := pg.Open(cfg.DSN)
	if err != nil {
		l.Fatal("postgres open", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := pg.EnsureSchema(ctx, db); err != nil {
		l.Fatal("postgres schema", zap.Error(err))
	}

	seedAdmin(ctx, l, pg.NewUsuariosRepo(db))
	seedClientes(ctx, l, pg.NewClientesRepo(db))

	l.Info("seed listo")
}

func seedAdmin(ctx context.Context, l *zap.Logger, repo *pg.UsuariosRepo) {
	_, err := repo.Crear(ctx, usuarios.Usuario{
		Usuario: "admin",
		Clave:   "12345",
		Rol:     "Administrador",
	})
	switch {
	case err == nil:
		l.Info("usuario creado", zap.String("usuario", "admin"))
	case errors.Is(err, usuarios.ErrUsuarioDuplicado):
		l.Info("usuario ya existe", zap.String("usuario", "admin"))
	default:
		l.Fatal("crear usuario", zap.Error(err))
	}
}

type clienteSeed struct {
	nombre   string
	apellido string
	dni      int
	socio    bool
	// Solo para socios: vencimiento en el pasado produce un moroso.
	vencimiento time.Time
}

func seedClientes(ctx context.Context, l *zap.Logger, repo *pg.ClientesRepo) {
	var (
		alDia  = time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
		vencda = time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		alta   = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	)

	seeds := []clienteSeed{
		{nombre: "Ana", apellido: "Gomez", dni: 11111111, socio: true, vencimiento: alDia},
		{nombre: "Luis", apellido: "Perez", dni: 22222222, socio: true, vencimiento: alDia},
		{nombre: "Maria", apellido: "Lopez", dni: 33333333, socio: true, vencimiento: alDia},
		{nombre: "Carlos", apellido: "Diaz", dni: 44444444, socio: true, vencimiento: alDia},
		{nombre: "Elena", apellido: "Ruiz", dni: 55555555, socio: true, vencimiento: alDia},
		{nombre: "Juan", apellido: "Mendez", dni: 66666666, socio: true, vencimiento: alDia},
		{nombre: "Sofia", apellido: "Castro", dni: 77777777, socio: true, vencimiento: vencda},
		{nombre: "Pedro", apellido: "Gil", dni: 88888888, socio: true, vencimiento: vencda},
		{nombre: "Laura", apellido: "Vidal", dni: 99999999, socio: true, vencimiento: vencda},
		{nombre: "Andres", apellido: "Rojas", dni: 10101010, socio: true, vencimiento: vencda},
		{nombre: "Marta", apellido: "Nuñez", dni: 11122233},
		{nombre: "Diego", apellido: "Sosa", dni: 22334455},
		{nombre: "Paula", apellido: "Vazquez", dni: 33445566},
		{nombre: "Javier", apellido: "Morales", dni: 44556677},
		{nombre: "Noelia", apellido: "Flores", dni: 55667788},
	}

	for _, s := range seeds {
		c := clientes.Cliente{
			Nombre:          s.nombre,
			Apellido:        s.apellido,
			DNI:             s.dni,
			FechaNacimiento: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			Direccion:       "Calle Falsa 123",
			Telefono:        "1155551234",
			AptoFisico:      true,
			Asociarse:       s.socio,
			FechaAlta:       alta,
		}

		var m clientes.Membresia
		if s.socio {
			m = clientes.MembresiaSocio(clientes.Socio{
				FechaInscripcion:      alta,
				FechaVencimientoCuota: s.vencimiento,
			})
		} else {
			m = clientes.MembresiaNoSocio(clientes.NoSocio{})
		}

		creado, err := repo.CrearConMembresia(ctx, c, m)
		switch {
		case err == nil:
		case errors.Is(err, clientes.ErrDNIDuplicado):
			l.Info("cliente ya existe", zap.Int("dni", s.dni))
			continue
		default:
			l.Fatal("crear cliente", zap.Int("dni", s.dni), zap.Error(err))
		}

		if s.socio {
			err := repo.ActualizarSocio(ctx, clientes.Socio{
				ID:                    creado.ID,
				FechaInscripcion:      alta,
				FechaVencimientoCuota: s.vencimiento,
				NumeroCarnet:          int(creado.ID) * 100,
				CarnetEntregado:       true,
			})
			if err != nil {
				l.Fatal("entregar carnet", zap.Int64("cliente", creado.ID), zap.Error(err))
			}
		}

		l.Info("cliente creado",
			zap.Int64("id", creado.ID),
			zap.String("apellido", s.apellido),
			zap.Bool("socio", s.socio))
	}
}
