package pdf

import (
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/stretchr/testify/assert"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
)

func TestParseHex(t *testing.T) {
	def := &props.Color{}
	assert.Equal(t, &props.Color{Red: 79, Green: 70, Blue: 229}, parseHex("#4f46e5", def))
	assert.Equal(t, &props.Color{Red: 255, Green: 0, Blue: 170}, parseHex("#f0a", def))
	assert.Same(t, def, parseHex("azul", def))
	assert.Same(t, def, parseHex("", def))
}

func TestThemeFor_ModernUsaColorDeMarca(t *testing.T) {
	th := themeFor(entity.TemplateModern, "#10b981")
	assert.Equal(t, &props.Color{Red: 16, Green: 185, Blue: 129}, th.accent)
	assert.Equal(t, themeFor(entity.TemplateType("x"), "#10b981"), th)
}

func TestWithProfileFont(t *testing.T) {
	th := themeFor(entity.TemplateModern, "").withProfileFont(entity.TemplateModern, entity.FontSerif)
	assert.Equal(t, fontfamily.Times, th.family)

	tech := themeFor(entity.TemplateTech, "").withProfileFont(entity.TemplateTech, entity.FontSerif)
	assert.Equal(t, fontfamily.Courier, tech.family)
}
