package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductType is the closed set of configurable product families.
//
// Values are canonical-case strings. Ingest is case-insensitive (see
// ParseProductType); output always uses the canonical casing.
type ProductType string

const (
	ProductTypeCoil       ProductType = "Coil"
	ProductTypeFanCoil    ProductType = "FanCoil"
	ProductTypeUnitHeater ProductType = "UnitHeater"
)

// Material is the closed set of core materials.
type Material string

const (
	MaterialAluminum Material = "Aluminum"
	MaterialCopper   Material = "Copper"
	MaterialSteel    Material = "Steel"
)

// ConfigOption is a build option. OptionNone is an explicit "no options"
// marker: a request with an empty option list is invalid, the caller must
// say None on purpose.
type ConfigOption string

const (
	OptionNone               ConfigOption = "None"
	OptionCoating            ConfigOption = "Coating"
	OptionStainlessFasteners ConfigOption = "StainlessFasteners"
	OptionHighEfficiencyFins ConfigOption = "HighEfficiencyFins"
	OptionExpressBuild       ConfigOption = "ExpressBuild"
)

// ParseProductType resolves a case-insensitive product type name to its
// canonical value.
func ParseProductType(s string) (ProductType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coil":
		return ProductTypeCoil, true
	case "fancoil":
		return ProductTypeFanCoil, true
	case "unitheater":
		return ProductTypeUnitHeater, true
	}
	return "", false
}

// ParseMaterial resolves a case-insensitive material name to its canonical
// value.
func ParseMaterial(s string) (Material, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aluminum":
		return MaterialAluminum, true
	case "copper":
		return MaterialCopper, true
	case "steel":
		return MaterialSteel, true
	}
	return "", false
}

// ParseConfigOption resolves a case-insensitive option name to its canonical
// value. Unknown values are returned verbatim with ok=false rather than
// dropped, so the validator can report them by value.
func ParseConfigOption(s string) (ConfigOption, bool) {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "none":
		return OptionNone, true
	case "coating":
		return OptionCoating, true
	case "stainlessfasteners":
		return OptionStainlessFasteners, true
	case "highefficiencyfins":
		return OptionHighEfficiencyFins, true
	case "expressbuild":
		return OptionExpressBuild, true
	}
	return ConfigOption(trimmed), false
}

// ConfigurationRequest is a product configuration to be priced.
//
// Dimensions are inches, held as exact decimals because they feed both the
// price computation and the configuration identity hash. The struct is never
// mutated after construction.
type ConfigurationRequest struct {
	ProductType ProductType
	WidthIn     decimal.Decimal
	HeightIn    decimal.Decimal
	DepthIn     decimal.Decimal
	Material    Material
	Options     []ConfigOption
	Quantity    int
}

// LineItem is one bill-of-materials entry.
type LineItem struct {
	Code        string
	Description string
	Qty         int
}

// PricedConfiguration is the immutable result of pricing a validated
// configuration request.
//
// ConfigurationID is a pure function of the normalized request: identical
// configurations priced at different times share the id but not the
// timestamp. Prices are rounded to 2 decimal places at finalization only.
type PricedConfiguration struct {
	ConfigurationID string
	ProductType     ProductType
	Material        Material
	UnitPrice       decimal.Decimal
	ExtendedPrice   decimal.Decimal
	BOM             []LineItem
	CreatedAtUTC    time.Time
}

// HasOptionLine reports whether the bill of materials carries a line with the
// given code. Used by the document renderer and order routing to detect the
// express-build flag line.
func (p PricedConfiguration) HasOptionLine(code string) bool {
	for _, item := range p.BOM {
		if item.Code == code {
			return true
		}
	}
	return false
}
