// Package slug genera códigos canónicos (minúsculas, URL-safe) a partir de un
// nombre libre. El código resultante se usa como clave primaria de empresas e
// industrias.
package slug

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmpty indica que el nombre está vacío o no deja ningún carácter usable
// tras la normalización.
var ErrEmpty = errors.New("el nombre no produce un código válido")

// foldAccents descompone (NFD), elimina las marcas diacríticas y recompone (NFC).
// "Compañía Ágil" -> "Compania Agil".
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make convierte un nombre en su código canónico: minúsculas, sin acentos,
// y cualquier secuencia de caracteres no alfanuméricos colapsada a un solo guión.
//
//	Make("Apple Computer")  -> "apple-computer"
//	Make("  IBM & Söhne  ") -> "ibm-sohne"
//
// Devuelve ErrEmpty si el resultado queda vacío.
func Make(name string) (string, error) {
	folded, _, err := transform.String(foldAccents, name)
	if err != nil {
		// Entrada no normalizable (UTF-8 corrupto): seguir con el original.
		folded = name
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteRune(r)
	}

	code := b.String()
	if code == "" {
		return "", ErrEmpty
	}
	return code, nil
}
