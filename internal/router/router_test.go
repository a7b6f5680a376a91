package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"club-deportivo/internal/router"
)

func TestHTTP_EndToEnd_CicloDeMembresia(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Alta de socio
	socioID := crearCliente(t, ts.URL, map[string]any{
		"nombre":           "Ana",
		"apellido":         "Gomez",
		"dni":              11111111,
		"fecha_nacimiento": "1990-01-01",
		"direccion":        "Calle Falsa 123",
		"telefono":         "1155551234",
		"apto_fisico":      true,
		"asociarse":        true,
	})

	// 2) Recién inscripto, la primera cuota todavía no venció
	verificarEstado(t, ts.URL, socioID, "activo")

	// 3) Alta de actividad
	actividadID := crearActividad(t, ts.URL, "Natación", 2500)

	// 4) Pago de cuota con descuento
	{
		st, body := doReq(t, ts.URL, "POST", "/socios/"+socioID+"/cuotas", map[string]any{
			"monto":           100,
			"descuento":       10,
			"cantidad_cuotas": 3,
			"medio_pago":      "efectivo",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 registrar cuota, got %d body=%s", st, string(body))
		}

		var resp struct {
			MontoTotal       float64 `json:"monto_total"`
			FechaVencimiento string  `json:"fecha_vencimiento"`
			Comprobante      string  `json:"comprobante"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.MontoTotal != 90 {
			t.Fatalf("expected monto_total 90, got %v", resp.MontoTotal)
		}
		if resp.FechaVencimiento == "" {
			t.Fatalf("cuota sin fecha de vencimiento body=%s", string(body))
		}
		if resp.Comprobante == "" {
			t.Fatalf("cuota sin comprobante generado body=%s", string(body))
		}
	}

	// 5) Última cuota consultable
	{
		st, body := doReq(t, ts.URL, "GET", "/socios/"+socioID+"/cuotas/ultima", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 ultima cuota, got %d body=%s", st, string(body))
		}
	}

	// 6) El socio al día no paga actividades sueltas: las cubre la cuota
	{
		st, _ := doReq(t, ts.URL, "POST", "/clientes/"+socioID+"/pagos-actividad", map[string]any{
			"actividad_id":    mustInt(t, actividadID),
			"monto":           2500,
			"cantidad_cuotas": 1,
			"medio_pago":      "tarjeta",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 pago actividad de socio activo, got %d", st)
		}
	}

	// 7) Conversión a no socio: el historial de cuotas se conserva
	{
		st, body := doReq(t, ts.URL, "POST", "/clientes/"+socioID+"/convertir-a-no-socio", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 convertir a no socio, got %d body=%s", st, string(body))
		}
	}
	verificarEstado(t, ts.URL, socioID, "no_socio")
	{
		st, body := doReq(t, ts.URL, "GET", "/socios/"+socioID+"/cuotas", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 historial de ex socio, got %d body=%s", st, string(body))
		}
		var cuotas []map[string]any
		if err := json.Unmarshal(body, &cuotas); err != nil || len(cuotas) != 1 {
			t.Fatalf("expected 1 cuota en historial, got body=%s", string(body))
		}
	}

	// 8) Como no socio ya no puede pagar cuotas
	{
		st, _ := doReq(t, ts.URL, "POST", "/socios/"+socioID+"/cuotas", map[string]any{
			"monto":           100,
			"cantidad_cuotas": 1,
			"medio_pago":      "efectivo",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 cuota de no socio, got %d", st)
		}
	}

	// 9) Vuelve a asociarse
	{
		st, body := doReq(t, ts.URL, "POST", "/clientes/"+socioID+"/convertir-a-socio", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 convertir a socio, got %d body=%s", st, string(body))
		}
	}
	verificarEstado(t, ts.URL, socioID, "activo")

	// 10) Entrega de carnet
	{
		st, body := doReq(t, ts.URL, "POST", "/clientes/"+socioID+"/carnet", map[string]any{
			"numero": 100,
		})
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 entregar carnet, got %d body=%s", st, string(body))
		}
	}

	// 11) Baja del socio
	{
		st, body := doReq(t, ts.URL, "POST", "/clientes/"+socioID+"/baja", map[string]any{
			"fecha": "2024-12-31",
		})
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 baja, got %d body=%s", st, string(body))
		}
	}
	verificarEstado(t, ts.URL, socioID, "baja")

	// 12) Dado de baja no puede pagar cuotas ni actividades
	{
		st, _ := doReq(t, ts.URL, "POST", "/socios/"+socioID+"/cuotas", map[string]any{
			"monto":           100,
			"cantidad_cuotas": 1,
			"medio_pago":      "efectivo",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 cuota tras baja, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/clientes/"+socioID+"/pagos-actividad", map[string]any{
			"actividad_id":    mustInt(t, actividadID),
			"monto":           2500,
			"cantidad_cuotas": 1,
			"medio_pago":      "tarjeta",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 pago actividad tras baja, got %d", st)
		}
	}
}

func TestHTTP_NoSocio_PagaActividades(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	clienteID := crearCliente(t, ts.URL, map[string]any{
		"nombre":    "Pedro",
		"apellido":  "Gil",
		"dni":       88888888,
		"asociarse": false,
	})
	actividadID := crearActividad(t, ts.URL, "Tenis", 3000)

	verificarEstado(t, ts.URL, clienteID, "no_socio")

	// El no socio paga cada actividad por separado
	st, body := doReq(t, ts.URL, "POST", "/clientes/"+clienteID+"/pagos-actividad", map[string]any{
		"actividad_id":    mustInt(t, actividadID),
		"monto":           3000,
		"cantidad_cuotas": 1,
		"medio_pago":      "efectivo",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 pago actividad de no socio, got %d body=%s", st, string(body))
	}

	// Pero no tiene cuotas
	st, _ = doReq(t, ts.URL, "POST", "/socios/"+clienteID+"/cuotas", map[string]any{
		"monto":           100,
		"cantidad_cuotas": 1,
		"medio_pago":      "efectivo",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 cuota de no socio, got %d", st)
	}
}

func TestHTTP_Alta_RechazaDNIDuplicado(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	payload := map[string]any{
		"nombre":    "Luis",
		"apellido":  "Perez",
		"dni":       22222222,
		"asociarse": true,
	}
	crearCliente(t, ts.URL, payload)

	st, _ := doReq(t, ts.URL, "POST", "/clientes", payload)
	if st != http.StatusConflict {
		t.Fatalf("expected 409 dni duplicado, got %d", st)
	}
}

func TestHTTP_Login_CredencialesInvalidas(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/login", map[string]any{
		"usuario": "fantasma",
		"clave":   "12345",
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 usuario inexistente, got %d", st)
	}
}

func crearCliente(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/clientes", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 crear cliente, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("crear cliente: missing id body=%s", string(body))
	}
	return strconv.FormatInt(resp.ID, 10)
}

func crearActividad(t *testing.T, baseURL, nombre string, costo float64) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/actividades", map[string]any{
		"nombre": nombre,
		"costo":  costo,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 crear actividad, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("crear actividad: missing id body=%s", string(body))
	}
	return strconv.FormatInt(resp.ID, 10)
}

func verificarEstado(t *testing.T, baseURL, clienteID, esperado string) {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/clientes/"+clienteID+"/estado", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 estado, got %d body=%s", st, string(body))
	}

	var resp struct {
		Estado string `json:"estado"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Estado != esperado {
		t.Fatalf("expected estado %q, got %q", esperado, resp.Estado)
	}
}

func mustInt(t *testing.T, s string) int64 {
	t.Helper()

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		t.Fatalf("parse id %q: %v", s, err)
	}
	return n
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
