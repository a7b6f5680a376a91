package actividades

// Actividad es una actividad arancelada del club (ej: natación, tenis).
type Actividad struct {
	ID     int64
	Nombre string
	Costo  float64
}
