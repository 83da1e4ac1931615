package numbering

// Preset formato sugerido en la pantalla de ajustes.
type Preset struct {
	Label  string
	Format string
}

// Presets catálogo fijo de formatos. El generador acepta cualquier otro formato.
func Presets() []Preset {
	return []Preset{
		{Label: "Standard (INV-2024-0001)", Format: "INV-{YYYY}-{NNNN}"},
		{Label: "Simple (#0001)", Format: "#{NNNN}"},
		{Label: "Year Based (2024-0001)", Format: "{YYYY}-{NNNN}"},
		{Label: "Compact (INV0001)", Format: "INV{NNNN}"},
		{Label: "Dated (202410-0001)", Format: "{YYYY}{MM}-{NNNN}"},
	}
}
