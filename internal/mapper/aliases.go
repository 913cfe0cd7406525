package mapper

import "github.com/chesapeakestays/propdata-server/internal/canonical"

// fieldAlias binds one canonical field to its ordered list of acceptable
// literal header spellings. Aliases are scanned in listed priority order,
// not table column order: the first alias present in the table wins.
type fieldAlias struct {
	field   canonical.Field
	aliases []string
}

// fieldAliases covers every directly-mapped canonical field. Phone and email
// columns are deliberately absent: those repeat with ordinals and are
// discovered by the pattern families in patterns.go.
//
//nolint:gochecknoglobals // Static discovery table
var fieldAliases = []fieldAlias{
	{canonical.StreetAddress, []string{
		"Street Address", "Address", "Property Address", "PROPERTY ADDRESS",
		"Site Address", "Situs Address",
	}},
	{canonical.UnitNumber, []string{
		"Unit #", "Unit", "Unit Number", "Apt #", "Apt",
	}},
	{canonical.City, []string{
		"City", "Property City", "PROPERTY CITY", "Site City", "Situs City",
	}},
	{canonical.State, []string{
		"State", "Property State", "PROPERTY STATE", "Site State", "ST",
	}},
	{canonical.PostalCode, []string{
		"Postal Code", "Zip", "Zip Code", "Property Zip", "PROPERTY ZIP",
		"Site Zip", "Zipcode",
	}},
	{canonical.FirstName, []string{
		"First Name", "Owner First Name", "OWNER FIRST NAME", "First",
	}},
	{canonical.LastName, []string{
		"Last Name", "Owner Last Name", "OWNER LAST NAME", "Last",
	}},
	{canonical.MailingAddress, []string{
		"Mailing Address", "Owner Mailing Address", "Mail Address",
		"MAILING ADDRESS", "Owner Address",
	}},
	{canonical.MailingUnitNumber, []string{
		"Mailing Unit #", "Mailing Unit", "Mail Unit #", "Mail Unit",
	}},
	{canonical.MailingCity, []string{
		"Mailing City", "Owner Mailing City", "Mail City", "MAILING CITY",
	}},
	{canonical.MailingState, []string{
		"Mailing State", "Owner Mailing State", "Mail State", "MAILING STATE",
	}},
	{canonical.MailingZip, []string{
		"Mailing Zip", "Owner Mailing Zip", "Mail Zip", "MAILING ZIP",
		"Mailing Zip Code",
	}},
	{canonical.PropertyType, []string{
		"Property Type", "PROPERTY TYPE", "Type", "Land Use",
	}},
	{canonical.Bedrooms, []string{
		"Bedrooms", "Beds", "Bedroom Count", "BEDROOMS", "Bd",
	}},
	{canonical.TotalBathrooms, []string{
		"Total Bathrooms", "Bathrooms", "Baths", "Bathroom Count",
		"BATHROOMS", "Ba",
	}},
	{canonical.BuildingSqft, []string{
		"Building Sqft", "Living Square Feet", "Building Square Feet",
		"Sqft", "Living Area", "GLA",
	}},
	{canonical.LotSizeSqft, []string{
		"Lot Size Sqft", "Lot (Square Feet)", "Lot Square Feet", "Lot Size",
		"Lot Sqft", "Lot Area",
	}},
	{canonical.EstValue, []string{
		"Est. Value", "Estimated Value", "Est Value", "AVM", "Market Value",
	}},
}

// fullNameAliases are the fallback "whole owner name in one column"
// spellings, consulted only when neither First Name nor Last Name resolved.
//
//nolint:gochecknoglobals // Static discovery table
var fullNameAliases = []string{
	"Full Name", "Owner Name", "Owner Full Name", "OWNER NAME", "Owner",
}
