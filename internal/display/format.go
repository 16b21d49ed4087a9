package display

import (
	"strconv"
	"strings"
)

// HealthToColor returns "green", "yellow", or "red" for a 0-100 health value.
func HealthToColor(health float64) string {
	switch {
	case health >= 60:
		return "green"
	case health >= 30:
		return "yellow"
	default:
		return "red"
	}
}

// DangerToColor returns "green", "yellow", or "red" for a 1-10 danger level.
// Anything at 7 or above is red: guards shoot first at that point.
func DangerToColor(danger float64) string {
	switch {
	case danger < 4:
		return "green"
	case danger < 7:
		return "yellow"
	default:
		return "red"
	}
}

// FormatNumber prints whole numbers without a decimal point.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatInventory lists items, or "empty" when there are none.
func FormatInventory(items []string) string {
	if len(items) == 0 {
		return "empty"
	}
	return strings.Join(items, ", ")
}

// FormatItemCount formats the inventory size as "1 item" or "N items".
func FormatItemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " items"
}

// orUnknown substitutes "??" for missing text fields, as the server does.
func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "??"
	}
	return s
}
