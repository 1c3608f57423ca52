// Package enrich derives optional country facts from free-text documents.
// Every extraction rule is a pure function so the parsing behavior can be
// tested without any fetch or merge machinery around it.
package enrich

import (
	"regexp"
	"strings"
)

// Sentinels for facts that exist as fields but have no usable value.
const (
	NotAvailable = "Not available"
	Vacant       = "Vacant"
)

var (
	trailingParen   = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	trailingPercent = regexp.MustCompile(`[\s(]*\d+(\.\d+)?\s*%[\s).,;]*$`)
	leadingTitle    = regexp.MustCompile(`(?i)^(president|prime minister|chief of state|head of government)\b[:\s]*`)
	sinceQualifier  = regexp.MustCompile(`(?i)\s*\(since[^)]*\)\s*$`)
	dayMonthYear    = regexp.MustCompile(`(?i)\b\d{1,2}\s+(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{4}\b`)
	bareYear        = regexp.MustCompile(`\b\d{4}\b`)
)

// Religion extracts the leading (most-cited) religion from a distribution
// text such as "Christianity 65%, Islam 5%, other 30%".
func Religion(text string) string {
	lead := text
	if i := strings.Index(lead, ","); i >= 0 {
		lead = lead[:i]
	}
	lead = trailingParen.ReplaceAllString(lead, "")
	lead = trailingPercent.ReplaceAllString(lead, "")
	return strings.Trim(lead, " .,;:()\t\n")
}

// HeadOfState extracts a person's name from an executive-branch text such
// as "President John Doe (since 2020)". A vacant or acting office
// normalizes to the Vacant sentinel; an empty remainder to NotAvailable.
func HeadOfState(text string) string {
	s := strings.TrimSpace(text)
	s = leadingTitle.ReplaceAllString(s, "")
	s = sinceQualifier.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	lower := strings.ToLower(s)
	if strings.Contains(lower, "vacant") || strings.Contains(lower, "acting") {
		return Vacant
	}
	if s == "" {
		return NotAvailable
	}
	return s
}

// IndependenceDate extracts a date from an independence text such as
// "4 July 1776 (from Great Britain)". Lookup order: a full day-month-year
// pattern, then a bare 4-digit year, then the text before the first
// parenthesis, then the NotAvailable sentinel.
func IndependenceDate(text string) string {
	if m := dayMonthYear.FindString(text); m != "" {
		return m
	}
	if m := bareYear.FindString(text); m != "" {
		return m
	}
	lead := text
	if i := strings.Index(lead, "("); i >= 0 {
		lead = lead[:i]
	}
	lead = strings.TrimSpace(lead)
	if lead == "" {
		return NotAvailable
	}
	return lead
}
