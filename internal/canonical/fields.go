// Package canonical defines the fixed output schema for normalized
// real-estate records: the ordered field set, the Record type that always
// carries every field, the duplicate-identity key, and the contact-info
// predicate that decides whether a record is worth keeping.
package canonical

// Field identifies one canonical output field. The set is closed: source
// columns are resolved to a Field once per table by the mapper, so nothing
// downstream ever dispatches on raw column-name strings.
type Field int

// Canonical fields in output column order. The order and count are a stable
// contract with downstream consumers of the exported CSV.
const (
	StreetAddress Field = iota
	UnitNumber
	City
	State
	PostalCode
	FirstName
	LastName
	MailingAddress
	MailingUnitNumber
	MailingCity
	MailingState
	MailingZip
	PropertyType
	Bedrooms
	TotalBathrooms
	BuildingSqft
	LotSizeSqft
	EstValue
	Phone1
	Phone2
	Phone3
	Phone4
	Phone5
	Email1
	Email2
	Email3
	Email4
	Email5

	// FieldCount is the number of canonical fields.
	FieldCount int = iota
)

// PhoneSlots is the number of phone output slots.
const PhoneSlots = 5

// EmailSlots is the number of email output slots.
const EmailSlots = 5

// fieldNames holds the output column header for each field, indexed by Field.
//
//nolint:gochecknoglobals // Static schema table
var fieldNames = [FieldCount]string{
	StreetAddress:     "Street Address",
	UnitNumber:        "Unit #",
	City:              "City",
	State:             "State",
	PostalCode:        "Postal Code",
	FirstName:         "First Name",
	LastName:          "Last Name",
	MailingAddress:    "Mailing Address",
	MailingUnitNumber: "Mailing Unit #",
	MailingCity:       "Mailing City",
	MailingState:      "Mailing State",
	MailingZip:        "Mailing Zip",
	PropertyType:      "Property Type",
	Bedrooms:          "Bedrooms",
	TotalBathrooms:    "Total Bathrooms",
	BuildingSqft:      "Building Sqft",
	LotSizeSqft:       "Lot Size Sqft",
	EstValue:          "Est. Value",
	Phone1:            "Phone 1",
	Phone2:            "Phone 2",
	Phone3:            "Phone 3",
	Phone4:            "Phone 4",
	Phone5:            "Phone 5",
	Email1:            "Email",
	Email2:            "Email 2",
	Email3:            "Email 3",
	Email4:            "Email 4",
	Email5:            "Email 5",
}

// Name returns the output column header for the field.
func (f Field) Name() string {
	if f < 0 || int(f) >= FieldCount {
		return ""
	}
	return fieldNames[f]
}

// String implements fmt.Stringer.
func (f Field) String() string { return f.Name() }

// Fields returns every canonical field in output order.
func Fields() []Field {
	fields := make([]Field, FieldCount)
	for i := range fields {
		fields[i] = Field(i)
	}
	return fields
}

// Header returns the canonical column headers in output order.
func Header() []string {
	header := make([]string, FieldCount)
	for i, name := range fieldNames {
		header[i] = name
	}
	return header
}

// PhoneField returns the output field for a 1-based phone slot.
// Slots outside 1..PhoneSlots return -1.
func PhoneField(slot int) Field {
	if slot < 1 || slot > PhoneSlots {
		return -1
	}
	return Phone1 + Field(slot-1)
}

// EmailField returns the output field for a 1-based email slot.
// Slot 1 is the unnumbered "Email" column.
func EmailField(slot int) Field {
	if slot < 1 || slot > EmailSlots {
		return -1
	}
	return Email1 + Field(slot-1)
}
