package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	mem "club-deportivo/internal/adapters/storage/memory"
	pg "club-deportivo/internal/adapters/storage/postgres"
	"club-deportivo/internal/domain/actividades"
	"club-deportivo/internal/domain/clientes"
	"club-deportivo/internal/domain/pagos"
	"club-deportivo/internal/domain/usuarios"
	"club-deportivo/internal/middleware"
	"club-deportivo/internal/security/password"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, store en memoria (modo dev).
	DB *sql.DB

	// Opcional: logger de requests. nil = sin logging.
	Logger *zap.Logger

	Politica pagos.Politica

	// Opcional: comparador de claves. nil = comparación exacta.
	Comparer password.Comparer
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		clientesRepo    clientes.Repository
		actividadesRepo actividades.Repository
		pagosRepo       pagos.Repository
		usuariosRepo    usuarios.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		clientesRepo = pg.NewClientesRepo(db)
		actividadesRepo = pg.NewActividadesRepo(db)
		pagosRepo = pg.NewPagosRepo(db)
		usuariosRepo = pg.NewUsuariosRepo(db)
	} else {
		store := mem.NewStore()
		clientesRepo = store.Clientes()
		actividadesRepo = store.Actividades()
		pagosRepo = store.Pagos()
		usuariosRepo = store.Usuarios()
	}

	// Services por módulo
	clientesSvc := clientes.NewService(clientesRepo)
	actividadesSvc := actividades.NewService(actividadesRepo)
	pagosSvc := pagos.NewService(pagosRepo, clientesRepo, actividadesSvc, opts.Politica)
	usuariosSvc := usuarios.NewService(usuariosRepo, opts.Comparer)

	// Rutas por módulo
	clientes.RegisterRoutes(r, clientesSvc)
	actividades.RegisterRoutes(r, actividadesSvc)
	pagos.RegisterRoutes(r, pagosSvc)
	usuarios.RegisterRoutes(r, usuariosSvc, log)

	return r
}
