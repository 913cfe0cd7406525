package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chesapeakestays/propdata-server/internal/canonical"
)

func TestMapDirectAliases(t *testing.T) {
	columns := []string{
		"Address", "City", "State", "Zip",
		"Owner Mailing Address", "Owner Mailing City", "Owner Mailing State", "Owner Mailing Zip",
		"Property Type", "Bedrooms", "Bathrooms", "Living Square Feet", "Lot (Square Feet)",
	}

	m := Map(columns)

	assert.Equal(t, "Address", m.Source(canonical.StreetAddress).Name)
	assert.Equal(t, "Zip", m.Source(canonical.PostalCode).Name)
	assert.Equal(t, "Owner Mailing Address", m.Source(canonical.MailingAddress).Name)
	assert.Equal(t, "Bathrooms", m.Source(canonical.TotalBathrooms).Name)
	assert.Equal(t, "Living Square Feet", m.Source(canonical.BuildingSqft).Name)
	assert.Equal(t, "Lot (Square Feet)", m.Source(canonical.LotSizeSqft).Name)

	// Fields with no source column are absent, not mapped to empty.
	assert.False(t, m.Source(canonical.EstValue).Valid())
	assert.False(t, m.Source(canonical.UnitNumber).Valid())
}

func TestMapAliasPriorityOrder(t *testing.T) {
	// Aliases are scanned in listed priority order, not table column order:
	// "Street Address" outranks "Address" even when "Address" comes first.
	m := Map([]string{"Address", "Street Address"})
	assert.Equal(t, "Street Address", m.Source(canonical.StreetAddress).Name)

	// Only the first alias match is used; the loser stays unclaimed.
	m = Map([]string{"Property Address", "Address"})
	assert.Equal(t, "Address", m.Source(canonical.StreetAddress).Name,
		"'Address' is listed before 'Property Address'")
}

func TestMapPhonePatternDiscovery(t *testing.T) {
	m := Map([]string{"Phone 1", "Phone2", "Cell 3", "Mobile", "Landline 2"})

	require.Len(t, m.Phones, 5)
	ordinals := map[string]int{}
	for _, s := range m.Phones {
		ordinals[s.Column.Name] = s.Ordinal
	}
	assert.Equal(t, 1, ordinals["Phone 1"])
	assert.Equal(t, 2, ordinals["Phone2"])
	assert.Equal(t, 3, ordinals["Cell 3"])
	assert.Equal(t, 1, ordinals["Mobile"], "no captured ordinal defaults to 1")
	assert.Equal(t, 2, ordinals["Landline 2"])
}

func TestMapEmailPatternDiscovery(t *testing.T) {
	m := Map([]string{"Email", "Email 2", "E-Mail 3", "Owner Email 4"})

	require.Len(t, m.Emails, 4)
	for i, want := range []int{1, 2, 3, 4} {
		assert.Equal(t, want, m.Emails[i].Ordinal)
	}
}

func TestMapPatternExclusivity(t *testing.T) {
	// A column matches at most one pattern; once claimed it is never
	// reconsidered, so repeated mapping is deterministic.
	columns := []string{"Phone", "Phone"}
	m := Map(columns)
	require.Len(t, m.Phones, 2)
	assert.Equal(t, 0, m.Phones[0].Column.Index)
	assert.Equal(t, 1, m.Phones[1].Column.Index)
	assert.Equal(t, 1, m.Phones[0].Ordinal)
	assert.Equal(t, 1, m.Phones[1].Ordinal)
}

func TestMapOwnerReduction(t *testing.T) {
	columns := []string{
		"Owner 1 First Name", "Owner 1 Last Name",
		"Owner 2 First Name", "Owner 2 Last Name",
	}
	m := Map(columns)

	assert.Equal(t, "Owner 1 First Name", m.Source(canonical.FirstName).Name)
	assert.Equal(t, "Owner 1 Last Name", m.Source(canonical.LastName).Name)

	dropped := m.DiscardedOwners()
	require.Len(t, dropped, 1)
	assert.Equal(t, 2, dropped[0].Ordinal)
	assert.Equal(t, "Owner 2 First Name", dropped[0].First.Name)
}

func TestMapDirectNameBeatsOwnerPattern(t *testing.T) {
	// Exact aliases take precedence over pattern discovery for the same field.
	m := Map([]string{"First Name", "Last Name", "Owner 2 First Name"})
	assert.Equal(t, "First Name", m.Source(canonical.FirstName).Name)
	assert.Equal(t, "Last Name", m.Source(canonical.LastName).Name)
	assert.False(t, m.FullName.Valid())
}

func TestMapFullNameFallback(t *testing.T) {
	m := Map([]string{"Owner Name", "Address"})
	require.True(t, m.FullName.Valid())
	assert.Equal(t, "Owner Name", m.FullName.Name)

	// With a direct name mapping the full-name column is ignored.
	m = Map([]string{"Owner Name", "First Name", "Last Name"})
	assert.False(t, m.FullName.Valid())
}

func TestMapIdempotent(t *testing.T) {
	columns := []string{
		"Property Address", "City", "State", "Zip",
		"Owner 1 First Name", "Owner 1 Last Name", "Phone 1", "Email",
	}
	first := Map(columns)
	second := Map(columns)
	assert.Equal(t, first, second, "mapping is a pure function of the header")
}

func TestMapEmptyHeader(t *testing.T) {
	m := Map(nil)
	assert.Empty(t, m.Fields)
	assert.Empty(t, m.Phones)
	assert.Empty(t, m.Emails)
	assert.False(t, m.FullName.Valid())
}
