package domain

import (
	"customers/pkg/result"
	"fmt"
)

// Industry is an entry of the fixed industry catalog. The numeric value is the
// entry's stable identity.
type Industry int64

const (
	// IndustryCars is the car industry.
	IndustryCars Industry = 1
	// IndustryPharmacy is the pharmacy industry.
	IndustryPharmacy Industry = 2
	// IndustryOther groups every other industry.
	IndustryOther Industry = 3
)

var industryNames = map[Industry]string{ //nolint: gochecknoglobals
	IndustryCars:     "Cars",
	IndustryPharmacy: "Pharmacy",
	IndustryOther:    "Other",
}

// Industries returns the catalog ordered by identity.
func Industries() []Industry {
	return []Industry{IndustryCars, IndustryPharmacy, IndustryOther}
}

// GetIndustry resolves an industry by its exact, case-sensitive name.
func GetIndustry(name result.Maybe[string]) result.Of[Industry] {
	if name.HasNoValue() {
		return result.FailOf[Industry]("Industry name is not specified")
	}

	for _, i := range Industries() {
		if i.Name() == name.Value() {
			return result.OkOf(i)
		}
	}

	return result.FailOf[Industry]("Industry name is invalid: " + name.Value())
}

// IndustryByID resolves a catalog entry by its identity.
func IndustryByID(id int64) (Industry, bool) {
	i := Industry(id)

	return i, i.Valid()
}

// Valid reports whether i belongs to the catalog.
func (i Industry) Valid() bool {
	_, ok := industryNames[i]

	return ok
}

// ID returns the stable identity of the entry.
func (i Industry) ID() int64 { return int64(i) }

// Name returns the catalog name, or an empty string for values outside the catalog.
func (i Industry) Name() string { return industryNames[i] }

func (i Industry) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Industry(%d)", int64(i))
	}

	return i.Name()
}

// mustBeValid panics when i is outside the catalog.
func (i Industry) mustBeValid() {
	if !i.Valid() {
		panic(fmt.Sprintf("domain: industry %d is not part of the catalog", int64(i)))
	}
}
