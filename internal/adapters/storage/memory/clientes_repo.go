package memory

import (
	"context"
	"sort"
	"time"

	"club-deportivo/internal/domain/clientes"
)

type clientesRepo struct {
	s *Store
}

func (r *clientesRepo) CrearConMembresia(ctx context.Context, c clientes.Cliente, m clientes.Membresia) (clientes.Cliente, error) {
	if !m.Valida() {
		if m.Socio == nil && m.NoSocio == nil {
			return clientes.Cliente{}, clientes.ErrClienteSinMembresia
		}
		return clientes.Cliente{}, clientes.ErrMembresiaDoble
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existente := range r.s.clientes {
		if existente.DNI == c.DNI {
			return clientes.Cliente{}, clientes.ErrDNIDuplicado
		}
	}

	r.s.seqClientes++
	c.ID = r.s.seqClientes
	r.s.clientes[c.ID] = c

	if m.Socio != nil {
		soc := *m.Socio
		soc.ID = c.ID
		r.s.socios[c.ID] = soc
	} else {
		ns := *m.NoSocio
		ns.ID = c.ID
		r.s.noSocios[c.ID] = ns
	}

	return c, nil
}

func (r *clientesRepo) ObtenerPorID(ctx context.Context, id int64) (clientes.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clientes[id]
	if !ok {
		return clientes.Cliente{}, clientes.ErrClienteNoEncontrado
	}
	return c, nil
}

func (r *clientesRepo) ObtenerPorDNI(ctx context.Context, dni int) (clientes.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.clientes {
		if c.DNI == dni {
			return c, nil
		}
	}
	return clientes.Cliente{}, clientes.ErrClienteNoEncontrado
}

func (r *clientesRepo) Actualizar(ctx context.Context, c clientes.Cliente) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clientes[c.ID]; !ok {
		return clientes.ErrClienteNoEncontrado
	}
	for id, existente := range r.s.clientes {
		if id != c.ID && existente.DNI == c.DNI {
			return clientes.ErrDNIDuplicado
		}
	}
	r.s.clientes[c.ID] = c
	return nil
}

func (r *clientesRepo) Listar(ctx context.Context) ([]clientes.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clientes.Cliente, 0, len(r.s.clientes))
	for _, c := range r.s.clientes {
		out = append(out, c)
	}
	ordenarPorApellido(out)
	return out, nil
}

func (r *clientesRepo) ObtenerMembresia(ctx context.Context, clienteID int64) (clientes.Membresia, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.membresiaLocked(clienteID)
}

func (r *clientesRepo) membresiaLocked(clienteID int64) (clientes.Membresia, error) {
	if _, ok := r.s.clientes[clienteID]; !ok {
		return clientes.Membresia{}, clientes.ErrClienteNoEncontrado
	}

	soc, tieneSocio := r.s.socios[clienteID]
	ns, tieneNoSocio := r.s.noSocios[clienteID]

	switch {
	case tieneSocio && tieneNoSocio:
		return clientes.Membresia{}, clientes.ErrMembresiaDoble
	case tieneSocio:
		return clientes.MembresiaSocio(soc), nil
	case tieneNoSocio:
		return clientes.MembresiaNoSocio(ns), nil
	default:
		return clientes.Membresia{}, clientes.ErrClienteSinMembresia
	}
}

func (r *clientesRepo) CambiarMembresia(ctx context.Context, clienteID int64, m clientes.Membresia, asociarse bool) error {
	if !m.Valida() {
		if m.Socio == nil && m.NoSocio == nil {
			return clientes.ErrClienteSinMembresia
		}
		return clientes.ErrMembresiaDoble
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.clientes[clienteID]
	if !ok {
		return clientes.ErrClienteNoEncontrado
	}

	delete(r.s.socios, clienteID)
	delete(r.s.noSocios, clienteID)

	if m.Socio != nil {
		soc := *m.Socio
		soc.ID = clienteID
		r.s.socios[clienteID] = soc
	} else {
		ns := *m.NoSocio
		ns.ID = clienteID
		r.s.noSocios[clienteID] = ns
	}

	c.Asociarse = asociarse
	r.s.clientes[clienteID] = c
	return nil
}

func (r *clientesRepo) ActualizarSocio(ctx context.Context, s clientes.Socio) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.socios[s.ID]; !ok {
		return clientes.ErrSocioNoEncontrado
	}
	r.s.socios[s.ID] = s
	return nil
}

func (r *clientesRepo) ListarMorosos(ctx context.Context, ref time.Time) ([]clientes.Cliente, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	hoy := soloFecha(ref)
	out := make([]clientes.Cliente, 0)
	for id, soc := range r.s.socios {
		if soc.FechaBaja != nil {
			continue
		}
		if soloFecha(soc.FechaVencimientoCuota).Before(hoy) {
			if c, ok := r.s.clientes[id]; ok {
				out = append(out, c)
			}
		}
	}
	ordenarPorApellido(out)
	return out, nil
}

func ordenarPorApellido(cs []clientes.Cliente) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Apellido != cs[j].Apellido {
			return cs[i].Apellido < cs[j].Apellido
		}
		return cs[i].Nombre < cs[j].Nombre
	})
}
