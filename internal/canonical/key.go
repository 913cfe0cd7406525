package canonical

import (
	"crypto/md5" //#nosec G401 -- dedup identity key, not a security boundary
	"encoding/hex"
	"strings"
)

// keyFields are the components of the duplicate-identity key: the property
// address block plus the owner name. Two records matching on these are the
// same real-world entity no matter which vendor file they came from.
//
//nolint:gochecknoglobals // Static schema table
var keyFields = []Field{
	StreetAddress,
	City,
	State,
	PostalCode,
	FirstName,
	LastName,
}

// IdentityKey computes the deterministic duplicate-identity digest for a
// record. Components are lower-cased and whitespace-trimmed; empty components
// are skipped before joining, so a record missing its city still collides
// with another record missing its city.
func (r *Record) IdentityKey() string {
	parts := make([]string, 0, len(keyFields))
	for _, f := range keyFields {
		part := strings.ToLower(strings.TrimSpace(r.Get(f)))
		if part != "" {
			parts = append(parts, part)
		}
	}
	sum := md5.Sum([]byte(strings.Join(parts, "|"))) //#nosec G401
	return hex.EncodeToString(sum[:])
}
