package actividades

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/actividades", func(ar chi.Router) {
		ar.Post("/", crearHandler(svc))
		ar.Get("/", listarHandler(svc))
		ar.Get("/{actividadID}", obtenerHandler(svc))
	})
}

type actividadRequest struct {
	Nombre string  `json:"nombre"`
	Costo  float64 `json:"costo"`
}

type actividadResponse struct {
	ID     int64   `json:"id"`
	Nombre string  `json:"nombre"`
	Costo  float64 `json:"costo"`
}

func crearHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req actividadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Crear(r.Context(), req.Nombre, req.Costo)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toResponse(a))
	}
}

func listarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Listar(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]actividadResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func obtenerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "actividadID"), 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "invalid actividad id", http.StatusBadRequest)
			return
		}

		a, err := svc.ObtenerPorID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(a))
	}
}

func toResponse(a Actividad) actividadResponse {
	return actividadResponse{ID: a.ID, Nombre: a.Nombre, Costo: a.Costo}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrActividadNoEncontrada):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDatosInvalidos):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
