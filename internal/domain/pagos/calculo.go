package pagos

import (
	"errors"
	"time"

	"club-deportivo/internal/domain/clientes"
)

var (
	ErrMontoInvalido   = errors.New("monto o descuento inválido")
	ErrCuotasInvalidas = errors.New("cantidad de cuotas inválida")
)

// CalcularTotal resuelve el total a cobrar de un pago.
//
// total = monto - descuento. La cantidad de cuotas registra cómo el cliente
// eligió fraccionar el pago y NO multiplica el total; se guarda solo para
// reportes. Descuento mayor al monto es un error, no un total negativo.
func CalcularTotal(monto, descuento float64, cantidadCuotas int) (float64, error) {
	if monto < 0 || descuento < 0 || descuento > monto {
		return 0, ErrMontoInvalido
	}
	if cantidadCuotas < 1 {
		return 0, ErrCuotasInvalidas
	}
	return monto - descuento, nil
}

// ProximoVencimiento avanza la fecha de pago un período de membresía.
// Solo aplica a cuotas sociales; los pagos de actividad no vencen.
func ProximoVencimiento(fechaPago time.Time) time.Time {
	return clientes.SumarMeses(fechaPago, clientes.PeriodoMeses)
}
