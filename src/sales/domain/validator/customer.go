package validator

import (
	"regexp"
	"strings"
)

// Los campos de cliente son todos opcionales: el vacío es válido.

var (
	dniPattern   = regexp.MustCompile(`^\d{7,8}$`)
	cuitPattern  = regexp.MustCompile(`^\d{2}-\d{8}-\d$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneStrip   = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// NationalID valida un DNI: exactamente 7 u 8 dígitos
func NationalID(dni string) Result {
	if dni == "" {
		return ok()
	}
	if !dniPattern.MatchString(dni) {
		return fail("DNI inválido. Debe tener 7 u 8 dígitos")
	}
	return ok()
}

// TaxID valida un CUIT con formato XX-XXXXXXXX-X
func TaxID(cuit string) Result {
	if cuit == "" {
		return ok()
	}
	if !cuitPattern.MatchString(cuit) {
		return fail("CUIT inválido. Formato: XX-XXXXXXXX-X")
	}
	return ok()
}

// Email valida la forma local@dominio.tld: un solo @, sin espacios,
// al menos un punto después del @
func Email(email string) Result {
	if email == "" {
		return ok()
	}
	if strings.Count(email, "@") != 1 || !emailPattern.MatchString(email) {
		return fail("Email inválido")
	}
	return ok()
}

// Phone valida el teléfono: entre 7 y 15 caracteres después de quitar
// espacios, paréntesis y guiones. Retorna el número normalizado.
func Phone(phone string) (string, Result) {
	if phone == "" {
		return "", ok()
	}

	stripped := phoneStrip.Replace(phone)
	if len(stripped) < 7 || len(stripped) > 15 {
		return "", fail("Teléfono inválido")
	}

	return stripped, ok()
}
