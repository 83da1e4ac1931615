// Package numbering genera el consecutivo de factura a partir de un formato con
// marcadores {YYYY} (año de 4 dígitos) y {NNNN} (secuencia con ceros a la izquierda).
//
// El generador es una función pura: la única dependencia externa es el reloj, que se inyecta.
package numbering

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Marcadores reconocidos en el formato.
const (
	TokenYear     = "{YYYY}"
	TokenSequence = "{NNNN}"
	TokenMonth    = "{MM}" // informativo; solo se sustituye con WithMonthSubstitution
)

// Anchos de relleno de la secuencia.
const (
	wideWidth   = 4 // el formato contiene {NNNN}
	narrowWidth = 2 // cualquier otro formato
)

// DefaultFormat formato usado cuando el perfil no define uno.
const DefaultFormat = "INV-{YYYY}-{NNNN}"

// Clock devuelve la hora actual.
type Clock func() time.Time

// Generator calcula el siguiente número de factura.
type Generator struct {
	now             Clock
	substituteMonth bool
}

// Option configura el Generator.
type Option func(*Generator)

// WithClock reemplaza time.Now (tests, zonas horarias fijas).
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.now = c
		}
	}
}

// WithMonthSubstitution sustituye también {MM} en el prefijo.
func WithMonthSubstitution() Option {
	return func(g *Generator) { g.substituteMonth = true }
}

// NewGenerator construye el generador con time.Now por defecto.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next devuelve el número siguiente a todos los existentes que comparten el prefijo del formato.
func (g *Generator) Next(format string, existing []string) string {
	return next(format, existing, g.now(), g.substituteMonth)
}

// Prefix devuelve el prefijo que tendrá el próximo número con la hora actual.
func (g *Generator) Prefix(format string) string {
	return prefix(format, g.now(), g.substituteMonth)
}

// NextNumber es la versión sin estado de Generator.Next con la fecha explícita.
func NextNumber(format string, existing []string, now time.Time) string {
	return next(format, existing, now, false)
}

// PaddingWidth devuelve 4 si el formato contiene literalmente {NNNN}, si no 2.
// La regla se basa en el contenido del formato, no en el ancho aparente de otro marcador.
func PaddingWidth(format string) int {
	if strings.Contains(format, TokenSequence) {
		return wideWidth
	}
	return narrowWidth
}

func next(format string, existing []string, now time.Time, withMonth bool) string {
	p := prefix(format, now, withMonth)

	// Números con el prefijo y sufijo entero; el resto (datos corruptos) se ignora.
	// math.MaxInt no tiene sucesor y se trata igual que un sufijo fuera de rango.
	sequences := lo.FilterMap(existing, func(number string, _ int) (int, bool) {
		rest, ok := strings.CutPrefix(number, p)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(rest)
		return n, err == nil && n < math.MaxInt
	})

	maxNum := 0
	for _, n := range sequences {
		if n > maxNum {
			maxNum = n
		}
	}

	return p + fmt.Sprintf("%0*d", PaddingWidth(format), maxNum+1)
}

// prefix es el texto anterior al primer {NNNN}, con el primer {YYYY} sustituido por el año.
func prefix(format string, now time.Time, withMonth bool) string {
	before, _, _ := strings.Cut(format, TokenSequence)
	p := strings.Replace(before, TokenYear, strconv.Itoa(now.Year()), 1)
	if withMonth {
		p = strings.Replace(p, TokenMonth, fmt.Sprintf("%02d", int(now.Month())), 1)
	}
	return p
}
