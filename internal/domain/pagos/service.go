package pagos

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"club-deportivo/internal/domain/actividades"
	"club-deportivo/internal/domain/clientes"
)

var (
	ErrSocioNoEncontrado = errors.New("socio no encontrado")
	ErrNoHabilitado      = errors.New("cliente no habilitado para pagar actividades")
	ErrSinCuotas         = errors.New("el socio no tiene cuotas registradas")
)

// Membresias es la vista del módulo de clientes que necesita este servicio.
type Membresias interface {
	ObtenerMembresia(ctx context.Context, clienteID int64) (clientes.Membresia, error)
}

// Actividades resuelve actividades del catálogo.
type Actividades interface {
	ObtenerPorID(ctx context.Context, id int64) (actividades.Actividad, error)
}

// Politica agrupa decisiones de cobro configurables.
type Politica struct {
	// Si es true, un socio moroso puede pagar actividades sueltas como si
	// fuera no socio.
	ActividadesParaMorosos bool
}

type Service struct {
	repo        Repository
	membresias  Membresias
	actividades Actividades
	politica    Politica
	now         func() time.Time
}

func NewService(repo Repository, membresias Membresias, acts Actividades, pol Politica) *Service {
	return &Service{
		repo:        repo,
		membresias:  membresias,
		actividades: acts,
		politica:    pol,
		now:         time.Now,
	}
}

type CuotaInput struct {
	SocioID        int64
	Monto          float64
	Descuento      float64
	CantidadCuotas int
	MedioPago      string
	FechaPago      time.Time // cero = hoy
	Comprobante    string    // vacío = se genera uno
}

// RegistrarCuota registra el pago de una cuota social y corre el vencimiento
// del socio un período. El alta de la cuota y el avance del vencimiento van
// en la misma transacción: o queda todo, o no queda nada.
func (s *Service) RegistrarCuota(ctx context.Context, in CuotaInput) (Cuota, error) {
	soc, err := s.socioVivo(ctx, in.SocioID)
	if err != nil {
		return Cuota{}, err
	}

	total, err := CalcularTotal(in.Monto, in.Descuento, in.CantidadCuotas)
	if err != nil {
		return Cuota{}, err
	}

	fechaPago := in.FechaPago
	if fechaPago.IsZero() {
		fechaPago = s.now()
	}
	vencimiento := ProximoVencimiento(fechaPago)

	c := Cuota{
		IDSocio:          soc.ID,
		FechaPago:        fechaPago,
		Monto:            in.Monto,
		MedioPago:        strings.TrimSpace(in.MedioPago),
		CantidadCuotas:   in.CantidadCuotas,
		Descuento:        in.Descuento,
		MontoTotal:       total,
		FechaVencimiento: vencimiento,
		Comprobante:      comprobante(in.Comprobante),
	}

	return s.repo.RegistrarCuota(ctx, c, vencimiento)
}

type ActividadInput struct {
	ClienteID      int64
	ActividadID    int64
	Monto          float64
	Descuento      float64
	CantidadCuotas int
	MedioPago      string
	FechaPago      time.Time
	Comprobante    string
}

// RegistrarActividad registra el pago de una actividad suelta. No toca
// ningún vencimiento: no es un pago recurrente. Quién puede pagar lo decide
// la política: no socios siempre, morosos solo si están habilitados.
func (s *Service) RegistrarActividad(ctx context.Context, in ActividadInput) (RegistroActividad, error) {
	m, err := s.membresias.ObtenerMembresia(ctx, in.ClienteID)
	if err != nil {
		return RegistroActividad{}, err
	}

	estado, err := clientes.Clasificar(m, s.now())
	if err != nil {
		return RegistroActividad{}, err
	}
	if !clientes.PuedeComprarActividades(estado, s.politica.ActividadesParaMorosos) {
		return RegistroActividad{}, ErrNoHabilitado
	}

	if _, err := s.actividades.ObtenerPorID(ctx, in.ActividadID); err != nil {
		return RegistroActividad{}, err
	}

	total, err := CalcularTotal(in.Monto, in.Descuento, in.CantidadCuotas)
	if err != nil {
		return RegistroActividad{}, err
	}

	fechaPago := in.FechaPago
	if fechaPago.IsZero() {
		fechaPago = s.now()
	}

	ra := RegistroActividad{
		IDCliente:      in.ClienteID,
		IDActividad:    in.ActividadID,
		FechaPago:      fechaPago,
		Monto:          in.Monto,
		MedioPago:      strings.TrimSpace(in.MedioPago),
		CantidadCuotas: in.CantidadCuotas,
		Descuento:      in.Descuento,
		MontoTotal:     total,
		Comprobante:    comprobante(in.Comprobante),
	}

	return s.repo.RegistrarActividad(ctx, ra)
}

func (s *Service) CuotasPorSocio(ctx context.Context, socioID int64) ([]Cuota, error) {
	return s.repo.CuotasPorSocio(ctx, socioID)
}

func (s *Service) UltimaCuota(ctx context.Context, socioID int64) (Cuota, error) {
	return s.repo.UltimaCuota(ctx, socioID)
}

func (s *Service) RegistrosPorCliente(ctx context.Context, clienteID int64) ([]RegistroActividad, error) {
	return s.repo.RegistrosPorCliente(ctx, clienteID)
}

func (s *Service) socioVivo(ctx context.Context, socioID int64) (clientes.Socio, error) {
	m, err := s.membresias.ObtenerMembresia(ctx, socioID)
	if err != nil {
		if errors.Is(err, clientes.ErrClienteNoEncontrado) {
			return clientes.Socio{}, ErrSocioNoEncontrado
		}
		return clientes.Socio{}, err
	}
	if m.Socio == nil || m.Socio.FechaBaja != nil {
		return clientes.Socio{}, ErrSocioNoEncontrado
	}
	return *m.Socio, nil
}

func comprobante(ref string) string {
	if ref = strings.TrimSpace(ref); ref != "" {
		return ref
	}
	return uuid.NewString()
}
