package web

import (
	"html/template"
	"slices"
	"strings"
	"time"
)

const (
	fullLayout   = "Monday January 2, 2006 at 3:04PM"
	mediumLayout = "Mon 01, 02, 2006 3:04PM"
)

var funcMap = template.FuncMap{
	"datetime": FormatDateTime,
	"join":     strings.Join,
	"has":      slices.Contains[[]string],
	"fielderr": func(errs map[string]string, field string) string {
		return errs[field]
	},
	"inputtime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02T15:04")
	},
}

// FormatDateTime renders show start times; format is "full" or "medium".
func FormatDateTime(t time.Time, format string) string {
	if t.IsZero() {
		return ""
	}
	switch format {
	case "full":
		return t.Format(fullLayout)
	case "medium":
		return t.Format(mediumLayout)
	default:
		return t.Format(format)
	}
}
