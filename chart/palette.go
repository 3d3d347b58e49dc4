package chart

import (
	"image/color"
)

// ============================================================================
// PALETTES
// ============================================================================
// The ICA palette follows the international category colors; series colors
// cycle for multi-line charts.
// ============================================================================

var icaColors = map[string]string{
	"Buena":                        "#2ECC71",
	"Moderada":                     "#F1C40F",
	"Dañina para grupos sensibles": "#E67E22",
	"Dañina":                       "#D35400",
	"Muy dañina":                   "#E74C3C",
	"Peligrosa":                    "#8E44AD",
}

// icaFallback is used for categories outside the known scale.
const icaFallback = "#CCCCCC"

// defaultSeries is the rotation palette for multi-series charts.
var defaultSeries = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// categoryColor returns the ICA color for a severity label.
func categoryColor(category string) color.Color {
	hex, ok := icaColors[category]
	if !ok {
		hex = icaFallback
	}
	return hexColor(hex)
}

// seriesColor returns the i-th series color, cycling.
func seriesColor(i int) color.Color {
	return hexColor(defaultSeries[i%len(defaultSeries)])
}

// hexColor parses "#RRGGBB" into an opaque color. Bad input yields grey.
func hexColor(s string) color.Color {
	if len(s) != 7 || s[0] != '#' {
		return color.Gray{Y: 0xCC}
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi := hexNibble(s[1+2*i])
		lo := hexNibble(s[2+2*i])
		if hi < 0 || lo < 0 {
			return color.Gray{Y: 0xCC}
		}
		rgb[i] = uint8(hi<<4 | lo)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
}

func hexNibble(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
