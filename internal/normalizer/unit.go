package normalizer

import (
	"regexp"
	"strings"
)

// Unit designators are tried in order; the first match wins. The trailing
// fallback only fires on a mixed letter-digit token ("4B", "B2"), so a plain
// street-type word at the end of an address is never mistaken for a unit.
//
//nolint:gochecknoglobals // Static extraction tables
var unitPatterns = []*regexp.Regexp{
	// "#4B", "# 4B"
	regexp.MustCompile(`(?i)(?:^|\s)#\s*([0-9A-Za-z-]+)`),
	// "Unit 4B", "Apt. 4B", "APARTMENT 12", "Ste #300", "Suite 210"
	regexp.MustCompile(`(?i)(?:^|\s)(?:unit|apt|apartment|ste|suite)\.?[\s#]+([0-9A-Za-z-]+)`),
	// trailing mixed alphanumeric token
	regexp.MustCompile(`(?:^|\s)([0-9]+[A-Za-z][0-9A-Za-z]*|[A-Za-z][0-9][0-9A-Za-z]*)$`),
}

// ExtractUnit finds a unit designator inside an address string, removes it,
// and returns the cleaned address plus the captured unit token. When no
// designator is found the address comes back untouched with an empty unit.
func ExtractUnit(address string) (cleaned, unit string) {
	if address == "" {
		return "", ""
	}
	for _, p := range unitPatterns {
		loc := p.FindStringSubmatchIndex(address)
		if loc == nil {
			continue
		}
		unit = address[loc[2]:loc[3]]
		cleaned = address[:loc[0]] + address[loc[1]:]
		cleaned = strings.Join(strings.Fields(cleaned), " ")
		cleaned = strings.TrimRight(cleaned, " ,")
		return cleaned, unit
	}
	return address, ""
}
