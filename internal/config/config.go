package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config agrupa toda la configuración del servicio, cargada desde el entorno.
type Config struct {
	ServerConfig
	DBConfig
	PoliticaConfig
}

type ServerConfig struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

type DBConfig struct {
	// DSN de Postgres. Si está vacío, el router usa el store en memoria (modo dev).
	DSN string `envconfig:"DB_DSN" required:"false"`
}

type PoliticaConfig struct {
	// Si es true, un socio moroso puede pagar actividades sueltas como un no socio.
	ActividadesParaMorosos bool `envconfig:"ACTIVIDADES_PARA_MOROSOS" default:"false"`
}

// Load carga primero .env (si existe) y después procesa las variables de entorno.
func Load(path string) (Config, error) {
	// .env es opcional: en producción la config llega por entorno.
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
