package pricing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"coiltech/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrOutOfDomain is returned when the engine is handed a request that was
// never validated (unknown enum value, non-positive quantity). Pricing such a
// request silently would corrupt downstream documents and orders, so the
// engine refuses instead.
var ErrOutOfDomain = errors.New("configuration is outside the pricing domain")

var (
	basePricePerCubicInch = decimal.RequireFromString("0.15")
	minimumPrice          = decimal.RequireFromString("250.00")
	one                   = decimal.NewFromInt(1)
)

// quantityDiscountTiers are minimum-quantity breakpoints, highest first. The
// applicable rate is the one of the largest breakpoint <= requested quantity.
var quantityDiscountTiers = []struct {
	MinQty int
	Rate   decimal.Decimal
}{
	{50, decimal.RequireFromString("0.20")},
	{25, decimal.RequireFromString("0.15")},
	{10, decimal.RequireFromString("0.10")},
	{5, decimal.RequireFromString("0.05")},
	{1, decimal.Zero},
}

// Price derives the unit/extended price, bill of materials and configuration
// identifier for a validated request.
//
// Precondition: the caller ran validation.Validate. The engine does not
// re-validate; it only guards enum and quantity domains so an unvalidated
// request fails loudly instead of mispricing.
//
// Intermediate arithmetic is exact decimal; both prices are rounded to 2
// decimal places (half to even) only at the final step.
func Price(req entities.ConfigurationRequest) (entities.PricedConfiguration, error) {
	productMult, err := productMultiplier(req.ProductType)
	if err != nil {
		return entities.PricedConfiguration{}, err
	}
	materialMult, err := materialMultiplier(req.Material)
	if err != nil {
		return entities.PricedConfiguration{}, err
	}

	volume := req.WidthIn.Mul(req.HeightIn).Mul(req.DepthIn)
	basePrice := volume.Mul(basePricePerCubicInch)
	unitPrice := basePrice.Mul(productMult).Mul(materialMult)

	// Surcharges are summed once per list entry: a duplicated option is
	// charged twice. The bill of materials below still emits a single line
	// per distinct option.
	for _, o := range req.Options {
		if o == entities.OptionNone {
			continue
		}
		surcharge, err := optionSurcharge(o)
		if err != nil {
			return entities.PricedConfiguration{}, err
		}
		unitPrice = unitPrice.Add(surcharge)
	}

	// Price floor applies before the quantity discount.
	if unitPrice.LessThan(minimumPrice) {
		unitPrice = minimumPrice
	}

	discount, err := quantityDiscount(req.Quantity)
	if err != nil {
		return entities.PricedConfiguration{}, err
	}
	unitPrice = unitPrice.Mul(one.Sub(discount))

	extendedPrice := unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))

	return entities.PricedConfiguration{
		ConfigurationID: configurationID(req),
		ProductType:     req.ProductType,
		Material:        req.Material,
		UnitPrice:       unitPrice.RoundBank(2),
		ExtendedPrice:   extendedPrice.RoundBank(2),
		BOM:             buildBOM(req),
		CreatedAtUTC:    time.Now().UTC(),
	}, nil
}

func productMultiplier(pt entities.ProductType) (decimal.Decimal, error) {
	switch pt {
	case entities.ProductTypeCoil:
		return decimal.RequireFromString("1.0"), nil
	case entities.ProductTypeFanCoil:
		return decimal.RequireFromString("1.35"), nil
	case entities.ProductTypeUnitHeater:
		return decimal.RequireFromString("1.65"), nil
	}
	return decimal.Zero, fmt.Errorf("%w: product type %q", ErrOutOfDomain, pt)
}

func materialMultiplier(m entities.Material) (decimal.Decimal, error) {
	switch m {
	case entities.MaterialAluminum:
		return decimal.RequireFromString("1.0"), nil
	case entities.MaterialCopper:
		return decimal.RequireFromString("1.85"), nil
	case entities.MaterialSteel:
		return decimal.RequireFromString("1.25"), nil
	}
	return decimal.Zero, fmt.Errorf("%w: material %q", ErrOutOfDomain, m)
}

func optionSurcharge(o entities.ConfigOption) (decimal.Decimal, error) {
	switch o {
	case entities.OptionNone:
		return decimal.Zero, nil
	case entities.OptionCoating:
		return decimal.RequireFromString("45.00"), nil
	case entities.OptionStainlessFasteners:
		return decimal.RequireFromString("28.00"), nil
	case entities.OptionHighEfficiencyFins:
		return decimal.RequireFromString("125.00"), nil
	case entities.OptionExpressBuild:
		return decimal.RequireFromString("200.00"), nil
	}
	return decimal.Zero, fmt.Errorf("%w: option %q", ErrOutOfDomain, o)
}

func quantityDiscount(quantity int) (decimal.Decimal, error) {
	for _, tier := range quantityDiscountTiers {
		if quantity >= tier.MinQty {
			return tier.Rate, nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: quantity %d", ErrOutOfDomain, quantity)
}

func hasOption(req entities.ConfigurationRequest, o entities.ConfigOption) bool {
	for _, candidate := range req.Options {
		if candidate == o {
			return true
		}
	}
	return false
}

// buildBOM emits lines in a fixed canonical order: frame, material, then
// present options as Coating, StainlessFasteners, HighEfficiencyFins,
// ExpressBuild regardless of request order. ExpressBuild is a routing flag
// line, its quantity is always 1.
func buildBOM(req entities.ConfigurationRequest) []entities.LineItem {
	bom := []entities.LineItem{
		{Code: "FRAME-001", Description: fmt.Sprintf("%s Frame Assembly", req.ProductType), Qty: req.Quantity},
		{Code: "MAT-001", Description: fmt.Sprintf("%s Core Material", req.Material), Qty: req.Quantity},
	}

	if hasOption(req, entities.OptionCoating) {
		bom = append(bom, entities.LineItem{Code: "OPT-COAT", Description: "Protective Coating", Qty: req.Quantity})
	}
	if hasOption(req, entities.OptionStainlessFasteners) {
		bom = append(bom, entities.LineItem{Code: "OPT-SS", Description: "Stainless Steel Fasteners", Qty: req.Quantity})
	}
	if hasOption(req, entities.OptionHighEfficiencyFins) {
		bom = append(bom, entities.LineItem{Code: "OPT-HEF", Description: "High Efficiency Fins", Qty: req.Quantity})
	}
	if hasOption(req, entities.OptionExpressBuild) {
		bom = append(bom, entities.LineItem{Code: "OPT-EXP", Description: "Express Build Flag", Qty: 1})
	}

	return bom
}

// identityProjection is the canonical serialization hashed into the
// configuration id. Field order, PascalCase keys and 2-decimal dimension
// strings are all part of the contract: the same projection must hash to the
// same id byte for byte across implementations. Timestamps and computed
// prices are deliberately excluded.
type identityProjection struct {
	ProductType string   `json:"ProductType"`
	WidthIn     string   `json:"WidthIn"`
	HeightIn    string   `json:"HeightIn"`
	DepthIn     string   `json:"DepthIn"`
	Material    string   `json:"Material"`
	Options     []string `json:"Options"`
	Quantity    int      `json:"Quantity"`
}

func configurationID(req entities.ConfigurationRequest) string {
	options := make([]string, len(req.Options))
	for i, o := range req.Options {
		options[i] = string(o)
	}
	// Sorted ascending; duplicates are kept.
	sort.Strings(options)

	projection := identityProjection{
		ProductType: string(req.ProductType),
		WidthIn:     req.WidthIn.StringFixed(2),
		HeightIn:    req.HeightIn.StringFixed(2),
		DepthIn:     req.DepthIn.StringFixed(2),
		Material:    string(req.Material),
		Options:     options,
		Quantity:    req.Quantity,
	}

	payload, err := json.Marshal(projection)
	if err != nil {
		// A flat struct of strings and ints cannot fail to marshal.
		panic(err)
	}

	digest := sha256.Sum256(payload)
	return "CFG-" + hex.EncodeToString(digest[:])[:12]
}
