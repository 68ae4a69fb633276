// Package apperrors define los tipos de error que cruzan la frontera
// entre casos de uso y controladores.
package apperrors

// Validation error de validación de entrada: no fatal, bloquea la
// mutación y se muestra como mensaje transitorio al usuario.
type Validation struct {
	Message string
}

func (e *Validation) Error() string {
	return e.Message
}

// NewValidation crea un error de validación con mensaje para la UI
func NewValidation(message string) error {
	return &Validation{Message: message}
}
