package validation

import (
	"fmt"
	"strings"

	"coiltech/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	MinQuantity = 1
	MaxQuantity = 1000
)

var (
	MinDimension = decimal.RequireFromString("6.0")
	MaxDimension = decimal.RequireFromString("120.0")
)

var validOptions = map[entities.ConfigOption]struct{}{
	entities.OptionNone:               {},
	entities.OptionCoating:            {},
	entities.OptionStainlessFasteners: {},
	entities.OptionHighEfficiencyFins: {},
	entities.OptionExpressBuild:       {},
}

// Validate checks a configuration request against the static business
// constraints. All violations are collected in fixed rule order (width,
// height, depth, quantity, options); no rule short-circuits another.
//
// Pure and deterministic: the outcome depends only on the input.
func Validate(req entities.ConfigurationRequest) (bool, []string) {
	var errs []string

	if outOfDimensionRange(req.WidthIn) {
		errs = append(errs, "Width must be between 6.0 and 120.0 inches.")
	}
	if outOfDimensionRange(req.HeightIn) {
		errs = append(errs, "Height must be between 6.0 and 120.0 inches.")
	}
	if outOfDimensionRange(req.DepthIn) {
		errs = append(errs, "Depth must be between 6.0 and 120.0 inches.")
	}

	if req.Quantity < MinQuantity || req.Quantity > MaxQuantity {
		errs = append(errs, "Quantity must be between 1 and 1000.")
	}

	if len(req.Options) == 0 {
		errs = append(errs, "At least one option must be specified (use None if no options).")
	} else {
		var invalid []string
		for _, o := range req.Options {
			if _, ok := validOptions[o]; !ok {
				invalid = append(invalid, string(o))
			}
		}
		if len(invalid) > 0 {
			errs = append(errs, fmt.Sprintf(
				"Invalid option values: %s. Valid options are: None, Coating, StainlessFasteners, HighEfficiencyFins, ExpressBuild",
				strings.Join(invalid, ", ")))
		}
	}

	return len(errs) == 0, errs
}

func outOfDimensionRange(d decimal.Decimal) bool {
	return d.LessThan(MinDimension) || d.GreaterThan(MaxDimension)
}
