// Package notice modela los mensajes transitorios que la UI muestra
// tras cada acción (el equivalente a las alertas flotantes del POS).
package notice

// Notice mensaje transitorio con su nivel de severidad
type Notice struct {
	Message string `json:"mensaje"`
	Level   string `json:"nivel"`
}

func Success(message string) *Notice {
	return &Notice{Message: message, Level: "success"}
}

func Info(message string) *Notice {
	return &Notice{Message: message, Level: "info"}
}

func Warning(message string) *Notice {
	return &Notice{Message: message, Level: "warning"}
}

func Danger(message string) *Notice {
	return &Notice{Message: message, Level: "danger"}
}
