package clientes

import "time"

// Cliente representa el registro de identidad de una persona en el club.
// Es la entidad raíz: todo Cliente tiene exactamente una especialización
// (Socio o NoSocio) en todo momento observable.
type Cliente struct {
	ID              int64
	Nombre          string
	Apellido        string
	DNI             int // documento nacional, único
	FechaNacimiento time.Time
	Direccion       string
	Telefono        string
	AptoFisico      bool
	Asociarse       bool
	FechaAlta       time.Time
}

// Socio es la especialización de un cliente asociado (activo o moroso).
// Comparte id con Cliente (relación 1:1).
type Socio struct {
	ID                    int64
	FechaInscripcion      time.Time
	FechaVencimientoCuota time.Time
	NumeroCarnet          int // 0 = carnet todavía no asignado
	CarnetEntregado       bool
	FechaBaja             *time.Time
}

// NoSocio es la especialización de un cliente no asociado.
type NoSocio struct {
	ID        int64
	FechaBaja *time.Time
}

// Membresia es la variante Socio | NoSocio de un cliente en memoria.
// Se proyecta a las dos tablas solo en el adaptador de storage.
// Exactamente uno de los dos punteros debe estar presente.
type Membresia struct {
	Socio   *Socio
	NoSocio *NoSocio
}

func MembresiaSocio(s Socio) Membresia {
	return Membresia{Socio: &s}
}

func MembresiaNoSocio(n NoSocio) Membresia {
	return Membresia{NoSocio: &n}
}

func (m Membresia) EsSocio() bool {
	return m.Socio != nil && m.NoSocio == nil
}

// Valida reporta si la variante tiene exactamente una especialización.
func (m Membresia) Valida() bool {
	return (m.Socio != nil) != (m.NoSocio != nil)
}
