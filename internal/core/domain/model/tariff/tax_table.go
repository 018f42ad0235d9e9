package tariff

import (
	"errors"
	"strings"

	"ecommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrTaxTableIsNotConstructed is returned when a TaxTable was not created
	// through the NewTaxTable factory method.
	ErrTaxTableIsNotConstructed = errors.New("TaxTable must be created via NewTaxTable constructor")
)

// postalPrefixLength is the number of leading postal-code characters
// consulted for a prefix override.
const postalPrefixLength = 3

// Tax rate scopes, used wherever a flattened rate row must say which
// resolution tier it belongs to.
const (
	TaxScopeRegion       = "region"
	TaxScopePostalPrefix = "postal_prefix"
	TaxScopeDefault      = "default"
)

// TaxTable resolves the tax rate (in percent) for a jurisdiction.
//
// Resolution order, first match wins:
//  1. exact match of the postal code's 3-character prefix in the override table
//  2. case-insensitive exact match of the region in the base table
//  3. the default rate
//
// TaxTable is an immutable snapshot: the pricing engine receives one per
// call and never observes configuration changes mid-computation.
type TaxTable struct {
	// byRegion maps an upper-cased region code to a percent rate
	byRegion map[string]decimal.Decimal

	// byPostalPrefix maps a postal prefix to a percent rate, overriding byRegion
	byPostalPrefix map[string]decimal.Decimal

	// defaultRate applies when neither table matches
	defaultRate decimal.Decimal

	// isConstructed ensures the table was created via NewTaxTable
	isConstructed bool
}

// NewTaxTable creates a validated tax table. Every rate, including the
// default, must lie in [0, 100]. The input maps are copied; region keys
// are normalized to upper case.
func NewTaxTable(
	byRegion map[string]decimal.Decimal,
	byPostalPrefix map[string]decimal.Decimal,
	defaultRate decimal.Decimal,
) (TaxTable, error) {
	table := TaxTable{
		byRegion:       make(map[string]decimal.Decimal, len(byRegion)),
		byPostalPrefix: make(map[string]decimal.Decimal, len(byPostalPrefix)),
		isConstructed:  true,
	}

	if err := validateRate("defaultRate", defaultRate); err != nil {
		return TaxTable{}, err
	}
	table.defaultRate = defaultRate

	for region, rate := range byRegion {
		if region == "" {
			return TaxTable{}, errs.NewValueIsRequiredError("region")
		}
		if err := validateRate("region rate", rate); err != nil {
			return TaxTable{}, err
		}
		table.byRegion[strings.ToUpper(region)] = rate
	}

	for prefix, rate := range byPostalPrefix {
		if len(prefix) != postalPrefixLength {
			return TaxTable{}, errs.NewValueIsInvalidError("postal prefix")
		}
		if err := validateRate("postal prefix rate", rate); err != nil {
			return TaxTable{}, err
		}
		table.byPostalPrefix[prefix] = rate
	}

	return table, nil
}

// DefaultTaxTable returns the tax table used before any explicit
// configuration update, seeded with US state rates and a handful of
// metropolitan postal-prefix overrides.
func DefaultTaxTable() TaxTable {
	byRegion := map[string]decimal.Decimal{
		"CA": decimal.RequireFromString("7.25"),
		"NY": decimal.RequireFromString("8.52"),
		"TX": decimal.RequireFromString("6.25"),
		"FL": decimal.RequireFromString("6.0"),
		"IL": decimal.RequireFromString("6.25"),
		"PA": decimal.RequireFromString("6.0"),
		"OH": decimal.RequireFromString("5.75"),
		"WA": decimal.RequireFromString("6.5"),
		"MA": decimal.RequireFromString("6.25"),
		"NJ": decimal.RequireFromString("6.625"),
		"CO": decimal.RequireFromString("8.0"),
	}
	byPostalPrefix := map[string]decimal.Decimal{
		"100": decimal.RequireFromString("8.875"),
		"900": decimal.RequireFromString("9.5"),
		"941": decimal.RequireFromString("9.25"),
		"606": decimal.RequireFromString("10.25"),
		"801": decimal.RequireFromString("8.0"),
	}

	table, _ := NewTaxTable(byRegion, byPostalPrefix, decimal.RequireFromString("7.0"))
	return table
}

// Validate ensures the table was properly constructed through NewTaxTable.
func (t TaxTable) Validate() error {
	if !t.isConstructed {
		return ErrTaxTableIsNotConstructed
	}
	return nil
}

// DefaultRate returns the fallback percent rate.
func (t TaxTable) DefaultRate() decimal.Decimal {
	return t.defaultRate
}

// ByRegion returns a copy of the region table with upper-cased keys.
func (t TaxTable) ByRegion() map[string]decimal.Decimal {
	byRegion := make(map[string]decimal.Decimal, len(t.byRegion))
	for region, rate := range t.byRegion {
		byRegion[region] = rate
	}
	return byRegion
}

// ByPostalPrefix returns a copy of the postal-prefix override table.
func (t TaxTable) ByPostalPrefix() map[string]decimal.Decimal {
	byPostalPrefix := make(map[string]decimal.Decimal, len(t.byPostalPrefix))
	for prefix, rate := range t.byPostalPrefix {
		byPostalPrefix[prefix] = rate
	}
	return byPostalPrefix
}

// RateFor resolves the percent tax rate for the given region and postal
// code, following the documented precedence. It is total: unknown
// jurisdictions resolve to the default rate.
func (t TaxTable) RateFor(region, postalCode string) decimal.Decimal {
	if len(postalCode) >= postalPrefixLength {
		if rate, ok := t.byPostalPrefix[postalCode[:postalPrefixLength]]; ok {
			return rate
		}
	}
	if rate, ok := t.byRegion[strings.ToUpper(region)]; ok {
		return rate
	}
	return t.defaultRate
}

func validateRate(paramName string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError(paramName, rate.String(), "0", "100")
	}
	return nil
}
