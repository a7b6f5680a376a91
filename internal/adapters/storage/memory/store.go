package memory

import (
	"sync"
	"time"

	"club-deportivo/internal/domain/actividades"
	"club-deportivo/internal/domain/clientes"
	"club-deportivo/internal/domain/pagos"
	"club-deportivo/internal/domain/usuarios"
)

// Store es el motor en memoria para dev y tests. Un solo RWMutex serializa
// las escrituras (modelo de escritor único), así las operaciones compuestas
// son atómicas y una lectura nunca ve un cliente a mitad de conversión.
type Store struct {
	mu sync.RWMutex

	clientes    map[int64]clientes.Cliente
	socios      map[int64]clientes.Socio
	noSocios    map[int64]clientes.NoSocio
	actividades map[int64]actividades.Actividad
	cuotas      map[int64]pagos.Cuota
	registros   map[int64]pagos.RegistroActividad
	usuarios    map[int64]usuarios.Usuario

	seqClientes    int64
	seqActividades int64
	seqCuotas      int64
	seqRegistros   int64
	seqUsuarios    int64
}

func NewStore() *Store {
	return &Store{
		clientes:    make(map[int64]clientes.Cliente),
		socios:      make(map[int64]clientes.Socio),
		noSocios:    make(map[int64]clientes.NoSocio),
		actividades: make(map[int64]actividades.Actividad),
		cuotas:      make(map[int64]pagos.Cuota),
		registros:   make(map[int64]pagos.RegistroActividad),
		usuarios:    make(map[int64]usuarios.Usuario),
	}
}

func (s *Store) Clientes() clientes.Repository       { return &clientesRepo{s: s} }
func (s *Store) Actividades() actividades.Repository { return &actividadesRepo{s: s} }
func (s *Store) Pagos() pagos.Repository             { return &pagosRepo{s: s} }
func (s *Store) Usuarios() usuarios.Repository       { return &usuariosRepo{s: s} }

// soloFecha trunca a día calendario; el estado se compara por fecha, no por hora.
func soloFecha(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
