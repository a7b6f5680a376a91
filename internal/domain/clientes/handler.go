package clientes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const fechaLayout = "2006-01-02"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clientes", func(cr chi.Router) {
		cr.Post("/", altaHandler(svc))
		cr.Get("/", listarHandler(svc))
		cr.Get("/morosos", morososHandler(svc))
		cr.Get("/dni/{dni}", porDNIHandler(svc))
		cr.Get("/{clienteID}", obtenerHandler(svc))
		cr.Get("/{clienteID}/estado", estadoHandler(svc))
		cr.Post("/{clienteID}/convertir-a-socio", convertirASocioHandler(svc))
		cr.Post("/{clienteID}/convertir-a-no-socio", convertirANoSocioHandler(svc))
		cr.Post("/{clienteID}/baja", bajaHandler(svc))
		cr.Post("/{clienteID}/carnet", carnetHandler(svc))
	})
}

type altaRequest struct {
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	DNI             int    `json:"dni"`
	FechaNacimiento string `json:"fecha_nacimiento"` // YYYY-MM-DD
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	AptoFisico      bool   `json:"apto_fisico"`
	Asociarse       bool   `json:"asociarse"`
}

type clienteResponse struct {
	ID              int64  `json:"id"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	DNI             int    `json:"dni"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	AptoFisico      bool   `json:"apto_fisico"`
	Asociarse       bool   `json:"asociarse"`
	FechaAlta       string `json:"fecha_alta"`
}

type estadoResponse struct {
	ClienteID int64  `json:"cliente_id"`
	Estado    Estado `json:"estado"`
}

func altaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req altaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var nacimiento time.Time
		if strings.TrimSpace(req.FechaNacimiento) != "" {
			t, err := time.Parse(fechaLayout, req.FechaNacimiento)
			if err != nil {
				http.Error(w, "fecha_nacimiento must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			nacimiento = t
		}

		c, err := svc.Alta(r.Context(), AltaInput{
			Nombre:          req.Nombre,
			Apellido:        req.Apellido,
			DNI:             req.DNI,
			FechaNacimiento: nacimiento,
			Direccion:       req.Direccion,
			Telefono:        req.Telefono,
			AptoFisico:      req.AptoFisico,
		}, req.Asociarse)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toClienteResponse(c))
	}
}

func listarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Listar(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]clienteResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClienteResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func morososHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListarMorosos(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]clienteResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toClienteResponse(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func obtenerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := clienteID(w, r)
		if !ok {
			return
		}

		c, err := svc.ObtenerPorID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClienteResponse(c))
	}
}

func porDNIHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dni, err := strconv.Atoi(chi.URLParam(r, "dni"))
		if err != nil || dni <= 0 {
			http.Error(w, "invalid dni", http.StatusBadRequest)
			return
		}

		c, err := svc.ObtenerPorDNI(r.Context(), dni)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClienteResponse(c))
	}
}

func estadoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := clienteID(w, r)
		if !ok {
			return
		}

		e, err := svc.Estado(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, estadoResponse{ClienteID: id, Estado: e})
	}
}

func convertirASocioHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := clienteID(w, r)
		if !ok {
			return
		}
		if err := svc.ConvertirASocio(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func convertirANoSocioHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := clienteID(w, r)
		if !ok {
			return
		}
		if err := svc.ConvertirANoSocio(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func bajaHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := clienteID(w, r)
		if !ok {
			return
		}

		var req struct {
			Fecha string `json:"fecha"` // YYYY-MM-DD
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		fecha, err := time.Parse(fechaLayout, req.Fecha)
		if err != nil {
			http.Error(w, "fecha must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		if err := svc.Baja(r.Context(), id, fecha); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func carnetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := clienteID(w, r)
		if !ok {
			return
		}

		var req struct {
			Numero int `json:"numero"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.EntregarCarnet(r.Context(), id, req.Numero); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func clienteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "clienteID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid cliente id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func toClienteResponse(c Cliente) clienteResponse {
	return clienteResponse{
		ID:              c.ID,
		Nombre:          c.Nombre,
		Apellido:        c.Apellido,
		DNI:             c.DNI,
		FechaNacimiento: c.FechaNacimiento.Format(fechaLayout),
		Direccion:       c.Direccion,
		Telefono:        c.Telefono,
		AptoFisico:      c.AptoFisico,
		Asociarse:       c.Asociarse,
		FechaAlta:       c.FechaAlta.Format(fechaLayout),
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrClienteNoEncontrado),
		errors.Is(err, ErrSocioNoEncontrado),
		errors.Is(err, ErrNoSocioNoEncontrado):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDNIDuplicado):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrDatosInvalidos), errors.Is(err, ErrCarnetRequerido):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrClienteSinMembresia), errors.Is(err, ErrMembresiaDoble):
		// inconsistencia de datos, nunca se disimula como un estado por defecto
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
