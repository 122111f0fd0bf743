package response

import (
	"time"

	"coiltech/internal/domain/entities"
)

type LineItemResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Qty         int    `json:"qty"`
}

// PricedConfigurationResponse is the wire shape of a priced configuration.
// Enum fields carry canonical casing; prices are plain JSON numbers already
// rounded to 2 decimal places by the engine.
type PricedConfigurationResponse struct {
	ConfigurationID string             `json:"configurationId"`
	ProductType     string             `json:"productType"`
	Material        string             `json:"material"`
	UnitPrice       float64            `json:"unitPrice"`
	ExtendedPrice   float64            `json:"extendedPrice"`
	BOM             []LineItemResponse `json:"bom"`
	CreatedAtUTC    time.Time          `json:"createdAtUtc"`
}

func FromPricedConfiguration(p entities.PricedConfiguration) PricedConfigurationResponse {
	bom := make([]LineItemResponse, 0, len(p.BOM))
	for _, item := range p.BOM {
		bom = append(bom, LineItemResponse{
			Code:        item.Code,
			Description: item.Description,
			Qty:         item.Qty,
		})
	}
	return PricedConfigurationResponse{
		ConfigurationID: p.ConfigurationID,
		ProductType:     string(p.ProductType),
		Material:        string(p.Material),
		UnitPrice:       p.UnitPrice.InexactFloat64(),
		ExtendedPrice:   p.ExtendedPrice.InexactFloat64(),
		BOM:             bom,
		CreatedAtUTC:    p.CreatedAtUTC,
	}
}
