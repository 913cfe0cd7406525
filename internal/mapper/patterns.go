package mapper

import (
	"regexp"
	"strconv"
)

// Pattern families for repeating column groups. Each family is an ordered
// list: the first pattern matching a column determines its slot, and a
// matched column is never reconsidered by a later pattern or family. Every
// pattern captures an optional ordinal; a column with no captured ordinal is
// slot 1 ("Phone" means "Phone 1").

//nolint:gochecknoglobals // Static discovery tables
var (
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^phone\s*#?\s*(\d+)?$`),
		regexp.MustCompile(`(?i)^cell(?:\s*phone)?\s*#?\s*(\d+)?$`),
		regexp.MustCompile(`(?i)^mobile(?:\s*phone)?\s*#?\s*(\d+)?$`),
		regexp.MustCompile(`(?i)^landline\s*#?\s*(\d+)?$`),
		regexp.MustCompile(`(?i)^(?:tele)?phone\s*number\s*(\d+)?$`),
	}

	emailPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^e-?mail\s*#?\s*(\d+)?$`),
		regexp.MustCompile(`(?i)^e-?mail\s*address\s*(\d+)?$`),
		regexp.MustCompile(`(?i)^owner\s*e-?mail\s*(\d+)?$`),
	}

	ownerFirstPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^owner\s*(\d+)?\s*first\s*name$`),
		regexp.MustCompile(`(?i)^first\s*name\s*(\d+)?$`),
	}

	ownerLastPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^owner\s*(\d+)?\s*last\s*name$`),
		regexp.MustCompile(`(?i)^last\s*name\s*(\d+)?$`),
	}
)

// matchOrdinal tries each pattern in priority order against a column name.
// It returns the 1-based ordinal and true on the first match; a match with
// no captured number defaults to ordinal 1.
func matchOrdinal(patterns []*regexp.Regexp, column string) (int, bool) {
	for _, p := range patterns {
		m := p.FindStringSubmatch(column)
		if m == nil {
			continue
		}
		if len(m) > 1 && m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err == nil && n > 0 {
				return n, true
			}
		}
		return 1, true
	}
	return 0, false
}
