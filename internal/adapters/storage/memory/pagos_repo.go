package memory

import (
	"context"
	"sort"
	"time"

	"club-deportivo/internal/domain/actividades"
	"club-deportivo/internal/domain/clientes"
	"club-deportivo/internal/domain/pagos"
)

type pagosRepo struct {
	s *Store
}

func (r *pagosRepo) RegistrarCuota(ctx context.Context, c pagos.Cuota, nuevoVencimiento time.Time) (pagos.Cuota, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	soc, ok := r.s.socios[c.IDSocio]
	if !ok || soc.FechaBaja != nil {
		return pagos.Cuota{}, pagos.ErrSocioNoEncontrado
	}

	r.s.seqCuotas++
	c.ID = r.s.seqCuotas
	r.s.cuotas[c.ID] = c

	soc.FechaVencimientoCuota = nuevoVencimiento
	r.s.socios[soc.ID] = soc

	return c, nil
}

func (r *pagosRepo) RegistrarActividad(ctx context.Context, ra pagos.RegistroActividad) (pagos.RegistroActividad, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clientes[ra.IDCliente]; !ok {
		return pagos.RegistroActividad{}, clientes.ErrClienteNoEncontrado
	}
	if _, ok := r.s.actividades[ra.IDActividad]; !ok {
		return pagos.RegistroActividad{}, actividades.ErrActividadNoEncontrada
	}

	r.s.seqRegistros++
	ra.ID = r.s.seqRegistros
	r.s.registros[ra.ID] = ra
	return ra, nil
}

func (r *pagosRepo) CuotasPorSocio(ctx context.Context, socioID int64) ([]pagos.Cuota, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pagos.Cuota, 0)
	for _, c := range r.s.cuotas {
		if c.IDSocio == socioID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FechaPago.After(out[j].FechaPago)
	})
	return out, nil
}

func (r *pagosRepo) UltimaCuota(ctx context.Context, socioID int64) (pagos.Cuota, error) {
	items, _ := r.CuotasPorSocio(ctx, socioID)
	if len(items) == 0 {
		return pagos.Cuota{}, pagos.ErrSinCuotas
	}
	return items[0], nil
}

func (r *pagosRepo) RegistrosPorCliente(ctx context.Context, clienteID int64) ([]pagos.RegistroActividad, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pagos.RegistroActividad, 0)
	for _, ra := range r.s.registros {
		if ra.IDCliente == clienteID {
			out = append(out, ra)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FechaPago.After(out[j].FechaPago)
	})
	return out, nil
}
