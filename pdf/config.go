package pdf

import "time"

// Config holds PDF layout settings. Lengths are millimeters, font sizes are
// points.
type Config struct {
	PageSize      string
	Margin        float64
	LineHeight    float64
	TitleFontSize float64
	H2FontSize    float64
	H3FontSize    float64
	BodyFontSize  float64
	Font          FontSource
	// CreationDate, when set, is stamped as both creation and modification
	// time so identical input produces identical bytes.
	CreationDate time.Time
}

// DefaultConfig returns the baseline A4 layout.
func DefaultConfig() Config {
	return Config{
		PageSize:      "A4",
		Margin:        15,
		LineHeight:    6,
		TitleFontSize: 18,
		H2FontSize:    14,
		H3FontSize:    12,
		BodyFontSize:  10,
	}
}

func applyConfig(dst *Config, src Config) {
	if src.PageSize != "" {
		dst.PageSize = src.PageSize
	}
	if src.Margin > 0 {
		dst.Margin = src.Margin
	}
	if src.LineHeight > 0 {
		dst.LineHeight = src.LineHeight
	}
	if src.TitleFontSize > 0 {
		dst.TitleFontSize = src.TitleFontSize
	}
	if src.H2FontSize > 0 {
		dst.H2FontSize = src.H2FontSize
	}
	if src.H3FontSize > 0 {
		dst.H3FontSize = src.H3FontSize
	}
	if src.BodyFontSize > 0 {
		dst.BodyFontSize = src.BodyFontSize
	}
	if src.Font.Strategy != FontCoreOnly || len(src.Font.TTF) > 0 || src.Font.URL != "" || src.Font.Client != nil {
		dst.Font = src.Font
	}
	if !src.CreationDate.IsZero() {
		dst.CreationDate = src.CreationDate
	}
}
