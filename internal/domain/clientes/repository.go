package clientes

import (
	"context"
	"time"
)

// Repository es el contrato de persistencia para clientes y sus membresías.
// Las operaciones compuestas (alta, cambio de membresía) son atómicas en el
// adaptador: el store nunca observa un cliente con cero o dos
// especializaciones.
type Repository interface {
	// CrearConMembresia inserta el Cliente y su especialización en una sola
	// transacción. Devuelve el cliente con el id generado.
	// Falla con ErrDNIDuplicado si el dni ya existe.
	CrearConMembresia(ctx context.Context, c Cliente, m Membresia) (Cliente, error)

	ObtenerPorID(ctx context.Context, id int64) (Cliente, error)
	ObtenerPorDNI(ctx context.Context, dni int) (Cliente, error)
	Actualizar(ctx context.Context, c Cliente) error
	Listar(ctx context.Context) ([]Cliente, error)

	ObtenerMembresia(ctx context.Context, clienteID int64) (Membresia, error)

	// CambiarMembresia borra la especialización actual e inserta la nueva,
	// actualizando Cliente.asociarse, todo en una transacción.
	CambiarMembresia(ctx context.Context, clienteID int64, m Membresia, asociarse bool) error

	// ActualizarSocio persiste vencimiento, carnet o baja de un socio vivo.
	ActualizarSocio(ctx context.Context, s Socio) error

	// ListarMorosos devuelve los clientes socios sin baja cuyo vencimiento es
	// anterior a la fecha de referencia, ordenados por apellido.
	ListarMorosos(ctx context.Context, ref time.Time) ([]Cliente, error)
}
