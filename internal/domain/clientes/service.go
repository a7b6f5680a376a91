package clientes

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrDatosInvalidos      = errors.New("datos de cliente inválidos")
	ErrDNIDuplicado        = errors.New("dni ya registrado")
	ErrClienteNoEncontrado = errors.New("cliente no encontrado")
	ErrSocioNoEncontrado   = errors.New("socio no encontrado")
	ErrNoSocioNoEncontrado = errors.New("no socio no encontrado")
	ErrClienteSinMembresia = errors.New("cliente sin membresía")
	ErrMembresiaDoble      = errors.New("cliente con dos membresías")
	ErrCarnetRequerido     = errors.New("número de carnet requerido")
)

// PeriodoMeses es la duración de un período de cuota.
const PeriodoMeses = 1

// Service gobierna el ciclo de vida de la membresía: altas, conversiones,
// bajas y consultas de estado.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type AltaInput struct {
	Nombre          string
	Apellido        string
	DNI             int
	FechaNacimiento time.Time
	Direccion       string
	Telefono        string
	AptoFisico      bool
}

// Alta inscribe un cliente nuevo. Si asociarse es true queda como Socio con
// la primera cuota venciendo un período después del alta y sin carnet
// asignado; si no, queda como NoSocio. Todo en una transacción.
func (s *Service) Alta(ctx context.Context, in AltaInput, asociarse bool) (Cliente, error) {
	nombre := strings.TrimSpace(in.Nombre)
	apellido := strings.TrimSpace(in.Apellido)
	if nombre == "" || apellido == "" || in.DNI <= 0 {
		return Cliente{}, ErrDatosInvalidos
	}

	hoy := s.now()
	c := Cliente{
		Nombre:          nombre,
		Apellido:        apellido,
		DNI:             in.DNI,
		FechaNacimiento: in.FechaNacimiento,
		Direccion:       strings.TrimSpace(in.Direccion),
		Telefono:        strings.TrimSpace(in.Telefono),
		AptoFisico:      in.AptoFisico,
		Asociarse:       asociarse,
		FechaAlta:       hoy,
	}

	var m Membresia
	if asociarse {
		m = MembresiaSocio(Socio{
			FechaInscripcion:      hoy,
			FechaVencimientoCuota: SumarMeses(hoy, PeriodoMeses),
		})
	} else {
		m = MembresiaNoSocio(NoSocio{})
	}

	return s.repo.CrearConMembresia(ctx, c, m)
}

func (s *Service) ObtenerPorID(ctx context.Context, id int64) (Cliente, error) {
	return s.repo.ObtenerPorID(ctx, id)
}

func (s *Service) ObtenerPorDNI(ctx context.Context, dni int) (Cliente, error) {
	return s.repo.ObtenerPorDNI(ctx, dni)
}

func (s *Service) Listar(ctx context.Context) ([]Cliente, error) {
	return s.repo.Listar(ctx)
}

func (s *Service) ObtenerMembresia(ctx context.Context, clienteID int64) (Membresia, error) {
	return s.repo.ObtenerMembresia(ctx, clienteID)
}

// Estado clasifica un cliente contra el reloj del servicio.
func (s *Service) Estado(ctx context.Context, clienteID int64) (Estado, error) {
	m, err := s.repo.ObtenerMembresia(ctx, clienteID)
	if err != nil {
		return "", err
	}
	return Clasificar(m, s.now())
}

// ListarMorosos devuelve los socios con cuota vencida a hoy.
func (s *Service) ListarMorosos(ctx context.Context) ([]Cliente, error) {
	return s.repo.ListarMorosos(ctx, s.now())
}

// ConvertirANoSocio reemplaza la fila Socio por una NoSocio dentro de una
// transacción; el historial de cuotas del ex socio se conserva.
func (s *Service) ConvertirANoSocio(ctx context.Context, clienteID int64) error {
	m, err := s.repo.ObtenerMembresia(ctx, clienteID)
	if err != nil {
		return err
	}
	if m.Socio == nil {
		return ErrSocioNoEncontrado
	}
	return s.repo.CambiarMembresia(ctx, clienteID, MembresiaNoSocio(NoSocio{ID: clienteID}), false)
}

// ConvertirASocio reemplaza la fila NoSocio por una Socio nueva, con la
// primera cuota venciendo un período después de la conversión.
func (s *Service) ConvertirASocio(ctx context.Context, clienteID int64) error {
	m, err := s.repo.ObtenerMembresia(ctx, clienteID)
	if err != nil {
		return err
	}
	if m.NoSocio == nil {
		return ErrNoSocioNoEncontrado
	}

	hoy := s.now()
	nueva := MembresiaSocio(Socio{
		ID:                    clienteID,
		FechaInscripcion:      hoy,
		FechaVencimientoCuota: SumarMeses(hoy, PeriodoMeses),
	})
	return s.repo.CambiarMembresia(ctx, clienteID, nueva, true)
}

// Baja marca la fecha de baja del socio. No borra nada: el cliente y su
// historial quedan para los listados históricos.
func (s *Service) Baja(ctx context.Context, socioID int64, fecha time.Time) error {
	soc, err := s.socioVivo(ctx, socioID)
	if err != nil {
		return err
	}
	soc.FechaBaja = &fecha
	return s.repo.ActualizarSocio(ctx, soc)
}

// EntregarCarnet asigna el número de carnet y lo marca como entregado.
// Un carnet entregado siempre tiene número.
func (s *Service) EntregarCarnet(ctx context.Context, socioID int64, numero int) error {
	if numero <= 0 {
		return ErrCarnetRequerido
	}
	soc, err := s.socioVivo(ctx, socioID)
	if err != nil {
		return err
	}
	soc.NumeroCarnet = numero
	soc.CarnetEntregado = true
	return s.repo.ActualizarSocio(ctx, soc)
}

func (s *Service) socioVivo(ctx context.Context, socioID int64) (Socio, error) {
	m, err := s.repo.ObtenerMembresia(ctx, socioID)
	if err != nil {
		return Socio{}, err
	}
	if m.Socio == nil || m.Socio.FechaBaja != nil {
		return Socio{}, ErrSocioNoEncontrado
	}
	return *m.Socio, nil
}
