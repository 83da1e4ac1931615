package pdf

import (
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
)

// headerStyle cómo se dibuja la cabecera de la plantilla.
type headerStyle int

const (
	headerPlain  headerStyle = iota // título a la derecha, sin fondo
	headerBanner                    // franja de color a todo el ancho
	headerRule                      // título con línea de acento debajo
)

// theme estrategia visual de una plantilla.
type theme struct {
	accent      *props.Color
	muted       *props.Color
	family      string
	header      headerStyle
	filledTable bool // cabecera de tabla con fondo de acento
	titleSize   float64
}

var (
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorBlack = &props.Color{Red: 17, Green: 24, Blue: 39}
)

// themeFor resuelve la plantilla. brandColor (hex) tiñe las plantillas que usan el color de marca.
func themeFor(t entity.TemplateType, brandColor string) theme {
	brand := parseHex(brandColor, &props.Color{Red: 79, Green: 70, Blue: 229})

	switch t {
	case entity.TemplateClassic:
		return theme{accent: colorBlack, muted: colorGray, family: fontfamily.Times, header: headerRule, titleSize: 20}
	case entity.TemplateMinimal:
		return theme{accent: colorBlack, muted: colorGray, family: fontfamily.Helvetica, header: headerPlain, titleSize: 14}
	case entity.TemplateBold:
		return theme{accent: brand, muted: colorGray, family: fontfamily.Helvetica, header: headerBanner, filledTable: true, titleSize: 24}
	case entity.TemplateAgency:
		return theme{accent: colorBlack, muted: colorGray, family: fontfamily.Helvetica, header: headerBanner, filledTable: true, titleSize: 20}
	case entity.TemplateBoutique:
		return theme{accent: &props.Color{Red: 136, Green: 84, Blue: 24}, muted: colorGray, family: fontfamily.Times, header: headerRule, titleSize: 18}
	case entity.TemplateTech:
		return theme{accent: &props.Color{Red: 16, Green: 185, Blue: 129}, muted: colorGray, family: fontfamily.Courier, header: headerRule, filledTable: true, titleSize: 16}
	case entity.TemplateFinance:
		return theme{accent: &props.Color{Red: 0, Green: 70, Blue: 127}, muted: colorGray, family: fontfamily.Helvetica, header: headerBanner, filledTable: true, titleSize: 16}
	case entity.TemplateCreative:
		return theme{accent: brand, muted: colorGray, family: fontfamily.Helvetica, header: headerRule, filledTable: true, titleSize: 26}
	case entity.TemplateSimple:
		return theme{accent: colorGray, muted: colorGray, family: fontfamily.Helvetica, header: headerPlain, titleSize: 14}
	default: // modern
		return theme{accent: brand, muted: colorGray, family: fontfamily.Helvetica, header: headerRule, filledTable: true, titleSize: 20}
	}
}

// withProfileFont aplica la tipografía del perfil a las plantillas que no fijan una propia.
func (th theme) withProfileFont(t entity.TemplateType, f entity.FontFamily) theme {
	switch t {
	case entity.TemplateClassic, entity.TemplateBoutique, entity.TemplateTech:
		return th
	}
	switch f {
	case entity.FontSerif:
		th.family = fontfamily.Times
	case entity.FontMono:
		th.family = fontfamily.Courier
	}
	return th
}

// parseHex convierte "#rrggbb" o "#rgb"; devuelve def si no es válido.
func parseHex(s string, def *props.Color) *props.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return def
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return def
	}
	return &props.Color{Red: int(v >> 16 & 0xff), Green: int(v >> 8 & 0xff), Blue: int(v & 0xff)}
}
