package pagos

import (
	"context"
	"time"
)

// Repository persiste el libro de pagos. Las dos tablas son historial
// append-only; la única mutación permitida es el avance del vencimiento del
// socio, que va en la misma transacción que el alta de la cuota.
type Repository interface {
	// RegistrarCuota inserta la cuota y actualiza la fecha de vencimiento del
	// socio dueño en una sola transacción. Devuelve la cuota con id generado.
	RegistrarCuota(ctx context.Context, c Cuota, nuevoVencimiento time.Time) (Cuota, error)

	RegistrarActividad(ctx context.Context, ra RegistroActividad) (RegistroActividad, error)

	// CuotasPorSocio devuelve el historial ordenado por fecha de pago desc.
	CuotasPorSocio(ctx context.Context, socioID int64) ([]Cuota, error)

	// UltimaCuota devuelve la cuota más reciente del socio, o ErrSinCuotas.
	UltimaCuota(ctx context.Context, socioID int64) (Cuota, error)

	RegistrosPorCliente(ctx context.Context, clienteID int64) ([]RegistroActividad, error)
}
