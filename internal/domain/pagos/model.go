package pagos

import "time"

// Cuota es un pago de cuota social. Las cuotas son historial append-only:
// nunca se modifican, solo las reemplaza una cuota posterior.
type Cuota struct {
	ID               int64
	IDSocio          int64
	FechaPago        time.Time
	Monto            float64
	MedioPago        string
	CantidadCuotas   int
	Descuento        float64
	MontoTotal       float64
	FechaVencimiento time.Time
	Comprobante      string
}

// RegistroActividad es el pago de una actividad suelta por un no socio.
// Análogo a Cuota pero sin vencimiento: no es un pago recurrente.
type RegistroActividad struct {
	ID             int64
	IDCliente      int64
	IDActividad    int64
	FechaPago      time.Time
	Monto          float64
	MedioPago      string
	CantidadCuotas int
	Descuento      float64
	MontoTotal     float64
	Comprobante    string
}
