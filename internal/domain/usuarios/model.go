package usuarios

// Usuario es una cuenta administrativa del sistema.
type Usuario struct {
	ID      int64
	Usuario string // nombre de login, único
	Clave   string // secreto en el formato que decida el Comparer instalado
	Rol     string
}
