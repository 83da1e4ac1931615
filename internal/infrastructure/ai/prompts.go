package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
)

// ErrNotConfigured el proveedor no tiene API key; el caso de uso aplica el fallback.
var ErrNotConfigured = errors.New("AI: proveedor sin API key configurada")

const enhanceSystemPrompt = `You are a professional copywriter for a freelancer's invoicing system.
Rewrite invoice line item descriptions to be more professional, concise, and clear.
Keep the meaning exactly the same, just improve the tone.
Output the text only, no quotes.`

const brandPromptTemplate = `I need to extract specific branding assets for the website: %s.

Find:
1. Logo: the absolute URL of the company's logo (og:image, twitter card image or <link rel="icon">).
2. Brand Color: the primary accent color in HEX. Ignore white (#FFFFFF) and black (#000000).
3. Typography: whether the main headings are 'sans' or 'serif'.

Output a clean JSON object ONLY. No markdown formatting.
{"color": "#HEXCODE", "logo": "https://example.com/logo.png", "font": "sans"}`

func enhanceUserPrompt(draft string) string {
	return fmt.Sprintf("Input: %q", draft)
}

func brandPrompt(websiteURL string) string {
	return fmt.Sprintf(brandPromptTemplate, websiteURL)
}

// cleanText quita espacios y comillas envolventes que algunos modelos añaden.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"“”")
	return strings.TrimSpace(s)
}

type brandPayload struct {
	Color string `json:"color"`
	Logo  string `json:"logo"`
	Font  string `json:"font"`
}

// parseBrandPayload toma el objeto entre la primera '{' y la última '}' para
// tolerar texto o bloques markdown alrededor.
func parseBrandPayload(text string) (*dto.BrandAnalysisDTO, error) {
	raw := text
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start != -1 && end > start {
		raw = text[start : end+1]
	}
	var p brandPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w", err)
	}
	return &dto.BrandAnalysisDTO{
		Color:   strings.TrimSpace(p.Color),
		Font:    strings.ToLower(strings.TrimSpace(p.Font)),
		LogoURL: strings.TrimSpace(p.Logo),
	}, nil
}
