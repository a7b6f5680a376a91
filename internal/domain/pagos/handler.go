package pagos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"club-deportivo/internal/domain/actividades"
	"club-deportivo/internal/domain/clientes"
)

const fechaLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/socios/{socioID}/cuotas", func(sr chi.Router) {
		sr.Post("/", registrarCuotaHandler(svc))
		sr.Get("/", cuotasHandler(svc))
		sr.Get("/ultima", ultimaCuotaHandler(svc))
	})

	r.Route("/clientes/{clienteID}/pagos-actividad", func(cr chi.Router) {
		cr.Post("/", registrarActividadHandler(svc))
		cr.Get("/", registrosHandler(svc))
	})
}

// cuotaRequest es el cuerpo de la solicitud para registrar el pago de una cuota social.
type cuotaRequest struct {
	Monto          float64 `json:"monto"`
	Descuento      float64 `json:"descuento"`
	CantidadCuotas int     `json:"cantidad_cuotas"`
	MedioPago      string  `json:"medio_pago"`
	FechaPago      string  `json:"fecha_pago"` // YYYY-MM-DD, opcional
	Comprobante    string  `json:"comprobante"`
}

// cuotaResponse representa una cuota registrada devuelta por la API.
type cuotaResponse struct {
	ID               int64   `json:"id"`
	IDSocio          int64   `json:"id_socio"`
	FechaPago        string  `json:"fecha_pago"`
	Monto            float64 `json:"monto"`
	MedioPago        string  `json:"medio_pago"`
	CantidadCuotas   int     `json:"cantidad_cuotas"`
	Descuento        float64 `json:"descuento"`
	MontoTotal       float64 `json:"monto_total"`
	FechaVencimiento string  `json:"fecha_vencimiento"`
	Comprobante      string  `json:"comprobante"`
}

type registroActividadRequest struct {
	ActividadID    int64   `json:"actividad_id"`
	Monto          float64 `json:"monto"`
	Descuento      float64 `json:"descuento"`
	CantidadCuotas int     `json:"cantidad_cuotas"`
	MedioPago      string  `json:"medio_pago"`
	FechaPago      string  `json:"fecha_pago"`
	Comprobante    string  `json:"comprobante"`
}

type registroActividadResponse struct {
	ID             int64   `json:"id"`
	IDCliente      int64   `json:"id_cliente"`
	IDActividad    int64   `json:"id_actividad"`
	FechaPago      string  `json:"fecha_pago"`
	Monto          float64 `json:"monto"`
	MedioPago      string  `json:"medio_pago"`
	CantidadCuotas int     `json:"cantidad_cuotas"`
	Descuento      float64 `json:"descuento"`
	MontoTotal     float64 `json:"monto_total"`
	Comprobante    string  `json:"comprobante"`
}

// registrarCuotaHandler godoc
// @Summary Registrar pago de cuota social
// @Description Registra el pago de una cuota del socio indicado y corre su vencimiento un período. El total es monto menos descuento; la cantidad de cuotas solo registra el fraccionamiento elegido. Si no se envía comprobante se genera uno.
// @Tags pagos
// @Accept json
// @Produce json
// @Param socioID path int true "ID del socio"
// @Param payload body cuotaRequest true "Datos del pago; fecha_pago en formato YYYY-MM-DD (vacía = hoy)"
// @Success 201 {object} cuotaResponse
// @Failure 400 {string} string "invalid json / monto o cuotas inválidos"
// @Failure 404 {string} string "socio no encontrado o dado de baja"
// @Router /socios/{socioID}/cuotas [post]
func registrarCuotaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socioID, ok := paramID(w, r, "socioID")
		if !ok {
			return
		}

		var req cuotaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		fechaPago, ok := parseFechaOpcional(w, req.FechaPago)
		if !ok {
			return
		}

		c, err := svc.RegistrarCuota(r.Context(), CuotaInput{
			SocioID:        socioID,
			Monto:          req.Monto,
			Descuento:      req.Descuento,
			CantidadCuotas: req.CantidadCuotas,
			MedioPago:      req.MedioPago,
			FechaPago:      fechaPago,
			Comprobante:    req.Comprobante,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toCuotaResponse(c))
	}
}

func cuotasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socioID, ok := paramID(w, r, "socioID")
		if !ok {
			return
		}

		items, err := svc.CuotasPorSocio(r.Context(), socioID)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]cuotaResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCuotaResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// ultimaCuotaHandler godoc
// @Summary Última cuota de un socio
// @Description Devuelve la cuota más reciente del socio, la que determina su vencimiento vigente.
// @Tags pagos
// @Produce json
// @Param socioID path int true "ID del socio"
// @Success 200 {object} cuotaResponse
// @Failure 404 {string} string "el socio no tiene cuotas registradas"
// @Router /socios/{socioID}/cuotas/ultima [get]
func ultimaCuotaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socioID, ok := paramID(w, r, "socioID")
		if !ok {
			return
		}

		c, err := svc.UltimaCuota(r.Context(), socioID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toCuotaResponse(c))
	}
}

// registrarActividadHandler godoc
// @Summary Registrar pago de actividad suelta
// @Description Registra el pago de una actividad por un cliente. Los no socios siempre pueden pagar; un socio moroso solo si la política lo habilita; un socio al día o dado de baja nunca. No afecta ningún vencimiento de cuota.
// @Tags pagos
// @Accept json
// @Produce json
// @Param clienteID path int true "ID del cliente"
// @Param payload body registroActividadRequest true "Datos del pago"
// @Success 201 {object} registroActividadResponse
// @Failure 400 {string} string "invalid json / monto o cuotas inválidos"
// @Failure 403 {string} string "cliente no habilitado para pagar actividades"
// @Failure 404 {string} string "cliente o actividad no encontrados"
// @Router /clientes/{clienteID}/pagos-actividad [post]
func registrarActividadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clienteID, ok := paramID(w, r, "clienteID")
		if !ok {
			return
		}

		var req registroActividadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		fechaPago, ok := parseFechaOpcional(w, req.FechaPago)
		if !ok {
			return
		}

		ra, err := svc.RegistrarActividad(r.Context(), ActividadInput{
			ClienteID:      clienteID,
			ActividadID:    req.ActividadID,
			Monto:          req.Monto,
			Descuento:      req.Descuento,
			CantidadCuotas: req.CantidadCuotas,
			MedioPago:      req.MedioPago,
			FechaPago:      fechaPago,
			Comprobante:    req.Comprobante,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toRegistroResponse(ra))
	}
}

func registrosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clienteID, ok := paramID(w, r, "clienteID")
		if !ok {
			return
		}

		items, err := svc.RegistrosPorCliente(r.Context(), clienteID)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]registroActividadResponse, 0, len(items))
		for _, ra := range items {
			out = append(out, toRegistroResponse(ra))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func paramID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func parseFechaOpcional(w http.ResponseWriter, s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(fechaLayout, s)
	if err != nil {
		http.Error(w, "fecha_pago must be YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, false
	}
	return t, true
}

func toCuotaResponse(c Cuota) cuotaResponse {
	return cuotaResponse{
		ID:               c.ID,
		IDSocio:          c.IDSocio,
		FechaPago:        c.FechaPago.Format(fechaLayout),
		Monto:            c.Monto,
		MedioPago:        c.MedioPago,
		CantidadCuotas:   c.CantidadCuotas,
		Descuento:        c.Descuento,
		MontoTotal:       c.MontoTotal,
		FechaVencimiento: c.FechaVencimiento.Format(fechaLayout),
		Comprobante:      c.Comprobante,
	}
}

func toRegistroResponse(ra RegistroActividad) registroActividadResponse {
	return registroActividadResponse{
		ID:             ra.ID,
		IDCliente:      ra.IDCliente,
		IDActividad:    ra.IDActividad,
		FechaPago:      ra.FechaPago.Format(fechaLayout),
		Monto:          ra.Monto,
		MedioPago:      ra.MedioPago,
		CantidadCuotas: ra.CantidadCuotas,
		Descuento:      ra.Descuento,
		MontoTotal:     ra.MontoTotal,
		Comprobante:    ra.Comprobante,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSocioNoEncontrado),
		errors.Is(err, ErrSinCuotas),
		errors.Is(err, clientes.ErrClienteNoEncontrado),
		errors.Is(err, actividades.ErrActividadNoEncontrada):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrMontoInvalido), errors.Is(err, ErrCuotasInvalidas):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNoHabilitado):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, clientes.ErrClienteSinMembresia), errors.Is(err, clientes.ErrMembresiaDoble):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
