package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// La conversión socio/no_socio borra la fila de especialización dentro de la
// transacción. El historial de pagos no puede referenciarla: queda atado a
// cliente(id), que comparte el id y nunca se borra.
func TestEsquema_HistorialRefiereAlCliente(t *testing.T) {
	cuota := declaracionDe(t, "cuota")
	require.Contains(t, cuota, "id_socio BIGINT NOT NULL REFERENCES cliente(id)")
	require.NotContains(t, cuota, "REFERENCES socio(id)")

	registro := declaracionDe(t, "registro_actividad")
	require.Contains(t, registro, "id_no_socio BIGINT NOT NULL REFERENCES cliente(id)")
	require.NotContains(t, registro, "REFERENCES no_socio(id)")
	require.Contains(t, registro, "id_actividad BIGINT NOT NULL REFERENCES actividad(id)")
}

func declaracionDe(t *testing.T, tabla string) string {
	t.Helper()
	for _, stmt := range createStatements {
		if strings.Contains(stmt, "EXISTS "+tabla+" (") {
			return stmt
		}
	}
	t.Fatalf("no hay CREATE TABLE para %q", tabla)
	return ""
}
