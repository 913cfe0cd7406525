// Package mapper discovers, for a single input table, which source columns
// back which canonical fields. Discovery is a pure function of the table's
// header row: exact alias lists first, then ordinal-bearing pattern families
// for the repeating phone/email/owner groups. Each source column is assigned
// at most once.
package mapper

import (
	"sort"

	"github.com/chesapeakestays/propdata-server/internal/canonical"
)

// Column identifies a source column by header name and position. Downstream
// code reads row values by Index so no per-row string lookups happen.
type Column struct {
	Name  string
	Index int
}

// None is the sentinel for an undiscovered column.
var None = Column{Index: -1} //nolint:gochecknoglobals // Sentinel value

// Valid reports whether the column was discovered.
func (c Column) Valid() bool { return c.Index >= 0 }

// Slot is a pattern-discovered repeating column together with its ordinal
// (the numeric suffix in the source header, defaulting to 1).
type Slot struct {
	Ordinal int
	Column  Column
}

// OwnerPair is one discovered numbered owner-name pair. Either side may be
// absent when the vendor file carries only half of the pair.
type OwnerPair struct {
	Ordinal int
	First   Column
	Last    Column
}

// Mapping is the per-table association from canonical fields to source
// columns. Canonical fields with no discoverable source are absent from
// Fields. Phones and Emails keep their discovered ordinals so the normalizer
// can sort and compact them; Owners records every discovered pair even
// though only ordinal 1 is promoted, so callers can log the discarded ones.
type Mapping struct {
	Fields   map[canonical.Field]Column
	FullName Column
	Phones   []Slot
	Emails   []Slot
	Owners   []OwnerPair
}

// Map discovers the column mapping for one table's header row. It is a pure
// function: the same columns always yield the same mapping.
func Map(columns []string) Mapping {
	m := Mapping{
		Fields:   make(map[canonical.Field]Column),
		FullName: None,
	}

	claimed := make([]bool, len(columns))

	find := func(name string) int {
		for i, col := range columns {
			if !claimed[i] && col == name {
				return i
			}
		}
		return -1
	}

	// Step 1: exact-alias resolution, alias priority order per field.
	for _, fa := range fieldAliases {
		for _, alias := range fa.aliases {
			if i := find(alias); i >= 0 {
				m.Fields[fa.field] = Column{Name: columns[i], Index: i}
				claimed[i] = true
				break
			}
		}
	}

	// Step 2: pattern families over the remaining columns. Family order is
	// phone, email, owner-first, owner-last; within a family the first
	// matching pattern decides the slot and the column is claimed for good.
	owners := make(map[int]*OwnerPair)
	ownerAt := func(ordinal int) *OwnerPair {
		if p, ok := owners[ordinal]; ok {
			return p
		}
		p := &OwnerPair{Ordinal: ordinal, First: None, Last: None}
		owners[ordinal] = p
		return p
	}

	for i, col := range columns {
		if claimed[i] {
			continue
		}
		source := Column{Name: col, Index: i}

		if ordinal, ok := matchOrdinal(phonePatterns, col); ok {
			m.Phones = append(m.Phones, Slot{Ordinal: ordinal, Column: source})
			claimed[i] = true
			continue
		}
		if ordinal, ok := matchOrdinal(emailPatterns, col); ok {
			m.Emails = append(m.Emails, Slot{Ordinal: ordinal, Column: source})
			claimed[i] = true
			continue
		}
		if ordinal, ok := matchOrdinal(ownerFirstPatterns, col); ok {
			ownerAt(ordinal).First = source
			claimed[i] = true
			continue
		}
		if ordinal, ok := matchOrdinal(ownerLastPatterns, col); ok {
			ownerAt(ordinal).Last = source
			claimed[i] = true
		}
	}

	for _, p := range owners {
		m.Owners = append(m.Owners, *p)
	}
	sort.Slice(m.Owners, func(a, b int) bool {
		return m.Owners[a].Ordinal < m.Owners[b].Ordinal
	})

	// Step 3: multi-owner reduction. Only the ordinal-1 pair is promoted into
	// the canonical name fields; higher ordinals stay in Owners, unmapped.
	if p, ok := owners[1]; ok {
		if _, mapped := m.Fields[canonical.FirstName]; !mapped && p.First.Valid() {
			m.Fields[canonical.FirstName] = p.First
		}
		if _, mapped := m.Fields[canonical.LastName]; !mapped && p.Last.Valid() {
			m.Fields[canonical.LastName] = p.Last
		}
	}

	// Step 4: full-name fallback, only when no first/last mapping survived.
	_, hasFirst := m.Fields[canonical.FirstName]
	_, hasLast := m.Fields[canonical.LastName]
	if !hasFirst && !hasLast {
		for _, alias := range fullNameAliases {
			if i := find(alias); i >= 0 {
				m.FullName = Column{Name: columns[i], Index: i}
				claimed[i] = true
				break
			}
		}
	}

	return m
}

// Source returns the discovered source column for a canonical field, or
// None when the field has no mapping in this table.
func (m *Mapping) Source(f canonical.Field) Column {
	if c, ok := m.Fields[f]; ok {
		return c
	}
	return None
}

// DiscardedOwners returns the discovered owner pairs beyond ordinal 1, which
// the reduction step drops from the canonical output.
func (m *Mapping) DiscardedOwners() []OwnerPair {
	var dropped []OwnerPair
	for _, p := range m.Owners {
		if p.Ordinal != 1 {
			dropped = append(dropped, p)
		}
	}
	return dropped
}
