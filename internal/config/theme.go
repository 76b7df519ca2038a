package config

// Theme defines the colors of human-readable output
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent  string `yaml:"accent"`  // table headers, highlights
	Title   string `yaml:"title"`   // section titles
	Subtle  string `yaml:"subtle"`  // borders, muted text
	Success string `yaml:"success"` // confirmations
	Warning string `yaml:"warning"` // price fallbacks
	Error   string `yaml:"error"`
}

// DefaultTheme returns the default purple theme
func DefaultTheme() Theme {
	return Theme{
		Preset:  "default",
		Accent:  "#874BFD",
		Title:   "#D75FD7",
		Subtle:  "#585858",
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset:  "monochrome",
		Accent:  "#FFFFFF",
		Title:   "#FFFFFF",
		Subtle:  "#808080",
		Success: "#FFFFFF",
		Warning: "#C0C0C0",
		Error:   "#FFFFFF",
	}
}

// GetPreset returns a preset theme by name
func GetPreset(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// ApplyDefaults fills in missing colors from the preset
func (t *Theme) ApplyDefaults() {
	preset := GetPreset(t.Preset)
	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	fill(&t.Accent, preset.Accent)
	fill(&t.Title, preset.Title)
	fill(&t.Subtle, preset.Subtle)
	fill(&t.Success, preset.Success)
	fill(&t.Warning, preset.Warning)
	fill(&t.Error, preset.Error)
}

// MergeFrom overrides colors with the non-empty values of other
func (t *Theme) MergeFrom(other Theme) {
	override(&t.Preset, other.Preset)
	override(&t.Accent, other.Accent)
	override(&t.Title, other.Title)
	override(&t.Subtle, other.Subtle)
	override(&t.Success, other.Success)
	override(&t.Warning, other.Warning)
	override(&t.Error, other.Error)
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
