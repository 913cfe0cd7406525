package canonical

import (
	"encoding/json"
	"strings"
)

// Record is one normalized row. Backing the record with a fixed-size array
// guarantees the invariant that every canonical field is always present: an
// unset field is the empty string, never a missing key.
type Record [FieldCount]string

// Get returns the value for a field.
func (r *Record) Get(f Field) string {
	if f < 0 || int(f) >= FieldCount {
		return ""
	}
	return r[f]
}

// Set stores a value for a field. Out-of-range fields are ignored rather
// than panicking; a malformed mapping must never abort row processing.
func (r *Record) Set(f Field, value string) {
	if f < 0 || int(f) >= FieldCount {
		return
	}
	r[f] = value
}

// Row returns the record values in canonical column order.
func (r *Record) Row() []string {
	row := make([]string, FieldCount)
	copy(row, r[:])
	return row
}

// MarshalJSON encodes the record as a JSON object with canonical field names
// as keys, in canonical order.
func (r Record) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, name := range fieldNames {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r[i])
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// HasContactInfo reports whether the record carries enough contact
// information to be worth keeping: at least one phone, at least one email,
// or a mailing address.
func (r *Record) HasContactInfo() bool {
	for slot := 1; slot <= PhoneSlots; slot++ {
		if r.Get(PhoneField(slot)) != "" {
			return true
		}
	}
	for slot := 1; slot <= EmailSlots; slot++ {
		if r.Get(EmailField(slot)) != "" {
			return true
		}
	}
	return r.Get(MailingAddress) != ""
}
