package filters

import (
	"html/template"
	"strings"
)

// Split divides s on sep (comma when sep is empty), trims surrounding
// whitespace from each piece and drops empty pieces. It never fails.
func Split(s, sep string) []string {
	if sep == "" {
		sep = ","
	}

	pieces := strings.Split(s, sep)
	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// FuncMap exposes the template helpers. In templates the separator is
// optional: {{range split .Habilidades}} splits on commas.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"split": func(s string, sep ...string) []string {
			if len(sep) > 0 {
				return Split(s, sep[0])
			}
			return Split(s, "")
		},
		"join": strings.Join,
	}
}
