// Package reltime renders past timestamps as the storefront's Spanish
// relative-time labels ("Hace 2 minutos"). Thresholds and wording are an
// exact UI contract; months are 30 days and years 365 by definition here.
package reltime

import (
	"fmt"
	"math"
	"time"
)

const (
	minute = time.Minute
	hour   = time.Hour
	day    = 24 * hour
	week   = 7 * day
	month  = 30 * day
	year   = 365 * day
)

// Format renders "from" relative to "to". Future timestamps clamp to "Ahora".
// Pure and total: any pair of times yields a label.
func Format(from, to time.Time) string {
	diff := to.Sub(from)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < minute:
		return "Ahora"
	case diff < hour:
		return ago(rounded(diff, minute), "minuto", "minutos")
	case diff < day:
		return ago(rounded(diff, hour), "hora", "horas")
	case diff < week:
		return ago(rounded(diff, day), "día", "días")
	case diff < month:
		return ago(rounded(diff, week), "semana", "semanas")
	case diff < year:
		return ago(rounded(diff, month), "mes", "meses")
	default:
		return ago(rounded(diff, year), "año", "años")
	}
}

// FormatSince renders "from" relative to the current wall clock.
func FormatSince(from time.Time) string {
	return Format(from, time.Now())
}

// rounded divides with half-away-from-zero rounding, matching how the labels
// were rounded historically (90s is 2 minutos, not 1).
func rounded(diff, unit time.Duration) int {
	return int(math.Round(float64(diff) / float64(unit)))
}

func ago(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("Hace 1 %s", singular)
	}
	return fmt.Sprintf("Hace %d %s", n, plural)
}
