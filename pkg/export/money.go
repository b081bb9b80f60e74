// Package export renders an evaluation for people: INR amounts with Indian
// digit grouping, an Excel workbook and a PDF feasibility report.
package export

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var indian = language.MustParse("en-IN")

// FormatINR renders a rupee amount rounded to whole rupees, grouped the
// Indian way (21,60,000).
func FormatINR(v float64) string {
	return "₹ " + grouped(v)
}

// PlainINR is FormatINR for outputs whose fonts lack the rupee sign.
func PlainINR(v float64) string {
	return "INR " + grouped(v)
}

func grouped(v float64) string {
	return message.NewPrinter(indian).Sprintf("%.0f", v)
}

// Title turns an enum value such as "mid_market" into "Mid Market".
func Title(s string) string {
	return cases.Title(indian).String(strings.ReplaceAll(s, "_", " "))
}
