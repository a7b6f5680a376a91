package clientes

import "time"

// Estado es la clasificación derivada de un cliente respecto de su membresía.
// @Enum activo, moroso, no_socio, baja
type Estado string

const (
	EstadoActivo  Estado = "activo"
	EstadoMoroso  Estado = "moroso"
	EstadoNoSocio Estado = "no_socio"
	EstadoBaja    Estado = "baja"
)

// Clasificar deriva el estado de un cliente a partir de su membresía y una
// fecha de referencia. Es una función pura de las fechas almacenadas: el
// estado nunca se cachea ni se guarda, para que lo mostrado no pueda
// divergir del libro de pagos.
//
// La comparación es por día calendario: una cuota que vence exactamente en
// la fecha de referencia sigue contando como al día (el socio tiene hasta
// el fin de ese día).
func Clasificar(m Membresia, ref time.Time) (Estado, error) {
	switch {
	case m.Socio == nil && m.NoSocio == nil:
		return "", ErrClienteSinMembresia
	case m.Socio != nil && m.NoSocio != nil:
		return "", ErrMembresiaDoble
	}

	hoy := soloFecha(ref)

	if m.NoSocio != nil {
		if dadoDeBaja(m.NoSocio.FechaBaja, hoy) {
			return EstadoBaja, nil
		}
		return EstadoNoSocio, nil
	}

	if dadoDeBaja(m.Socio.FechaBaja, hoy) {
		return EstadoBaja, nil
	}
	if soloFecha(m.Socio.FechaVencimientoCuota).Before(hoy) {
		return EstadoMoroso, nil
	}
	return EstadoActivo, nil
}

// PuedeComprarActividades decide si un cliente en el estado dado puede pagar
// actividades sueltas. Los no socios siempre pueden; para los morosos la
// decisión es una política configurable.
func PuedeComprarActividades(e Estado, morososHabilitados bool) bool {
	switch e {
	case EstadoNoSocio:
		return true
	case EstadoMoroso:
		return morososHabilitados
	default:
		return false
	}
}

func dadoDeBaja(fechaBaja *time.Time, hoy time.Time) bool {
	return fechaBaja != nil && !soloFecha(*fechaBaja).After(hoy)
}

// soloFecha trunca a día calendario en UTC para comparar fechas sin hora.
func soloFecha(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SumarMeses avanza n meses calendario. Si el día no existe en el mes
// destino (ej: 31 de enero + 1 mes), se ajusta al último día de ese mes en
// lugar de desbordar como hace time.AddDate.
func SumarMeses(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	primero := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	ultimo := primero.AddDate(0, 1, -1).Day()
	if d > ultimo {
		d = ultimo
	}
	return time.Date(primero.Year(), primero.Month(), d, 0, 0, 0, 0, time.UTC)
}
