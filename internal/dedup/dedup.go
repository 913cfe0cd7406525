// Package dedup collapses the normalized records gathered from every input
// table into one canonical table, keeping exactly one survivor per
// duplicate-identity key.
package dedup

import "github.com/chesapeakestays/propdata-server/internal/canonical"

// Merge reduces the record list to one record per identity key. Among
// colliding records the earliest in overall order wins whole-record: later
// duplicates are discarded entirely, even when they carry contact fields the
// winner lacks. An empty input yields an empty table, never an error.
func Merge(records []canonical.Record) canonical.Table {
	seen := make(map[string]struct{}, len(records))
	out := canonical.Table{Records: make([]canonical.Record, 0, len(records))}

	for i := range records {
		key := records[i].IdentityKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.Records = append(out.Records, records[i])
	}

	return out
}
