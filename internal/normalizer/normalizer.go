// Package normalizer transforms one source row into a canonical record using
// the table's column mapping, and decides whether the record carries enough
// contact information to keep. Per-row failures never surface as errors:
// anything missing or malformed degrades to the empty string.
package normalizer

import (
	"sort"
	"strings"

	"github.com/chesapeakestays/propdata-server/internal/canonical"
	"github.com/chesapeakestays/propdata-server/internal/mapper"
)

// Normalize builds the canonical record for one row. The returned bool is
// the contact-info keep/drop decision: rows without a phone, an email, or a
// mailing address are not worth emitting.
func Normalize(row []string, m *mapper.Mapping) (canonical.Record, bool) {
	var rec canonical.Record

	value := func(c mapper.Column) string {
		if !c.Valid() || c.Index >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[c.Index])
	}

	// Direct fields copy the mapped source value verbatim.
	for field, col := range m.Fields {
		rec.Set(field, value(col))
	}

	// Name splitting applies only when the table had no first/last columns
	// at all; a mapped-but-blank name column does not trigger the fallback.
	if !m.Source(canonical.FirstName).Valid() && !m.Source(canonical.LastName).Valid() {
		if full := value(m.FullName); full != "" {
			first, last := SplitName(full)
			rec.Set(canonical.FirstName, first)
			rec.Set(canonical.LastName, last)
		}
	}

	// Unit extraction runs only when no dedicated unit column exists, and is
	// applied independently to the property and mailing address blocks.
	if !m.Source(canonical.UnitNumber).Valid() {
		if addr, unit := ExtractUnit(rec.Get(canonical.StreetAddress)); unit != "" {
			rec.Set(canonical.StreetAddress, addr)
			rec.Set(canonical.UnitNumber, unit)
		}
	}
	if !m.Source(canonical.MailingUnitNumber).Valid() {
		if addr, unit := ExtractUnit(rec.Get(canonical.MailingAddress)); unit != "" {
			rec.Set(canonical.MailingAddress, addr)
			rec.Set(canonical.MailingUnitNumber, unit)
		}
	}

	compactPhones(&rec, m.Phones, row)
	compactEmails(&rec, m.Emails, row)

	return rec, rec.HasContactInfo()
}

// compactPhones gathers the non-blank phone values, orders them by their
// discovered ordinal, and re-assigns them contiguously to Phone 1..5 so gaps
// in the source ordinals never leave holes in the output. Slots are cleared
// first; values beyond the fifth are dropped.
func compactPhones(rec *canonical.Record, slots []mapper.Slot, row []string) {
	values := collectSlots(slots, row)
	for slot := 1; slot <= canonical.PhoneSlots; slot++ {
		rec.Set(canonical.PhoneField(slot), "")
	}
	for i, v := range values {
		if i >= canonical.PhoneSlots {
			break
		}
		rec.Set(canonical.PhoneField(i+1), v)
	}
}

// compactEmails applies the same ordinal-sort-and-compact policy to the
// email slots (Email, then Email 2..5).
func compactEmails(rec *canonical.Record, slots []mapper.Slot, row []string) {
	values := collectSlots(slots, row)
	for slot := 1; slot <= canonical.EmailSlots; slot++ {
		rec.Set(canonical.EmailField(slot), "")
	}
	for i, v := range values {
		if i >= canonical.EmailSlots {
			break
		}
		rec.Set(canonical.EmailField(i+1), v)
	}
}

// collectSlots returns the present, non-blank slot values sorted ascending
// by ordinal. The sort is stable so two columns sharing an ordinal keep
// their discovery order.
func collectSlots(slots []mapper.Slot, row []string) []string {
	type entry struct {
		ordinal int
		value   string
	}
	entries := make([]entry, 0, len(slots))
	for _, s := range slots {
		if !s.Column.Valid() || s.Column.Index >= len(row) {
			continue
		}
		v := strings.TrimSpace(row[s.Column.Index])
		if v == "" {
			continue
		}
		entries = append(entries, entry{ordinal: s.Ordinal, value: v})
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].ordinal < entries[b].ordinal
	})
	values := make([]string, len(entries))
	for i, e := range entries {
		values[i] = e.value
	}
	return values
}

// SplitName splits a whole owner name on whitespace: one token is a first
// name only, two are first/last, and with three or more the first token is
// the first name and the remainder joins into the last name.
func SplitName(full string) (first, last string) {
	tokens := strings.Fields(full)
	switch len(tokens) {
	case 0:
		return "", ""
	case 1:
		return tokens[0], ""
	case 2:
		return tokens[0], tokens[1]
	default:
		return tokens[0], strings.Join(tokens[1:], " ")
	}
}
