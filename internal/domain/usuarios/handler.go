package usuarios

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func RegisterRoutes(r chi.Router, svc *Service, log *zap.Logger) {
	r.Post("/login", loginHandler(svc, log))
}

type loginRequest struct {
	Usuario string `json:"usuario"`
	Clave   string `json:"clave"`
}

type loginResponse struct {
	OK bool `json:"ok"`
}

func loginHandler(svc *Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		ok, err := svc.Autenticar(r.Context(), req.Usuario, req.Clave)
		if err != nil {
			// falla de storage: se loguea, pero para el caller es solo "no autenticado"
			log.Error("login lookup failed", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !ok {
			// misma respuesta para usuario inexistente y clave incorrecta
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, loginResponse{OK: true})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
