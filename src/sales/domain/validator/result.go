// Package validator agrupa las validaciones puras del flujo de venta:
// producto, carrito, pago y cliente. Son funciones sin estado, cada
// una testeable por separado, con mensajes pensados para mostrarse
// directamente en la UI.
package validator

// Result resultado de una validación: válido o un mensaje para el usuario
type Result struct {
	Valid   bool   `json:"valido"`
	Message string `json:"mensaje,omitempty"`
}

func ok() Result {
	return Result{Valid: true}
}

func fail(message string) Result {
	return Result{Valid: false, Message: message}
}
