package request

import (
	"fmt"

	"coiltech/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ConfigurationRequest is the wire payload for the pricing, validation and
// document endpoints.
//
// Enum fields ingest case-insensitively ("fancoil" and "FanCoil" are the
// same product); canonical casing is restored on output. Unknown productType
// or material values are shape errors, rejected before validation runs.
// Unknown option values are NOT shape errors: they flow through to the
// validator so each one is reported back by value.
type ConfigurationRequest struct {
	ProductType string          `json:"productType" binding:"required"`
	WidthIn     decimal.Decimal `json:"widthIn"`
	HeightIn    decimal.Decimal `json:"heightIn"`
	DepthIn     decimal.Decimal `json:"depthIn"`
	Material    string          `json:"material" binding:"required"`
	Options     []string        `json:"options"`
	Quantity    int             `json:"quantity"`
}

// ToEntity converts the wire payload into the immutable domain request.
func (r ConfigurationRequest) ToEntity() (entities.ConfigurationRequest, error) {
	productType, ok := entities.ParseProductType(r.ProductType)
	if !ok {
		return entities.ConfigurationRequest{}, fmt.Errorf("unknown productType %q; valid values are: Coil, FanCoil, UnitHeater", r.ProductType)
	}

	material, ok := entities.ParseMaterial(r.Material)
	if !ok {
		return entities.ConfigurationRequest{}, fmt.Errorf("unknown material %q; valid values are: Aluminum, Copper, Steel", r.Material)
	}

	options := make([]entities.ConfigOption, 0, len(r.Options))
	for _, raw := range r.Options {
		// ok is deliberately ignored: unknown values are kept verbatim for
		// the validator to report.
		option, _ := entities.ParseConfigOption(raw)
		options = append(options, option)
	}

	return entities.ConfigurationRequest{
		ProductType: productType,
		WidthIn:     r.WidthIn,
		HeightIn:    r.HeightIn,
		DepthIn:     r.DepthIn,
		Material:    material,
		Options:     options,
		Quantity:    r.Quantity,
	}, nil
}
