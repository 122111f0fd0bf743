package documents

import (
	"context"
	"fmt"
	"strings"

	"coiltech/internal/domain/entities"
	"coiltech/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Renderer builds the two printable artifacts from a priced configuration.
// Pure presentation: every value it prints is already on the
// PricedConfiguration.
type Renderer struct{}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderSalesSheet produces the customer-facing configuration sheet: id,
// product, material, selected options and the two price lines.
func (r *Renderer) RenderSalesSheet(_ context.Context, cfg entities.PricedConfiguration) ([]byte, error) {
	m := maroto.New(config.NewBuilder().Build())

	m.AddRow(14,
		text.NewCol(12, "SALES CONFIGURATION SHEET", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(10,
		text.NewCol(12, "Configuration ID: "+cfg.ConfigurationID, props.Text{
			Size:  13,
			Style: fontstyle.Bold,
		}),
	)

	m.AddRow(16,
		col.New(12).Add(
			text.New("Product Type: "+string(cfg.ProductType), props.Text{Top: 0, Size: 11}),
			text.New("Material: "+string(cfg.Material), props.Text{Top: 6, Size: 11}),
		),
	)

	m.AddRow(8,
		text.NewCol(12, "Options:", props.Text{Size: 11, Style: fontstyle.Bold}),
	)
	m.AddRow(8,
		text.NewCol(12, optionsSummary(cfg), props.Text{Size: 10}),
	)

	m.AddRow(10,
		text.NewCol(6, "Item", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(6, "Price", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(8,
		text.NewCol(6, "Unit Price", props.Text{Size: 10}),
		text.NewCol(6, "$"+cfg.UnitPrice.StringFixed(2), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(8,
		text.NewCol(6, "Extended Price", props.Text{Size: 10}),
		text.NewCol(6, "$"+cfg.ExtendedPrice.StringFixed(2), props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(8,
		text.NewCol(6, "Created At (UTC)", props.Text{Size: 10}),
		text.NewCol(6, cfg.CreatedAtUTC.Format("2006-01-02 15:04:05"), props.Text{Size: 10, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// RenderPlantInstructions produces the shop-floor document: full bill of
// materials plus the build-lane routing flag.
func (r *Renderer) RenderPlantInstructions(_ context.Context, cfg entities.PricedConfiguration) ([]byte, error) {
	m := maroto.New(config.NewBuilder().Build())

	m.AddRow(14,
		text.NewCol(12, "PLANT MANUFACTURING INSTRUCTIONS", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Center,
		}),
	)

	m.AddRow(10,
		text.NewCol(12, "Configuration ID: "+cfg.ConfigurationID, props.Text{
			Size:  13,
			Style: fontstyle.Bold,
		}),
	)

	m.AddRow(16,
		col.New(12).Add(
			text.New("Product Type: "+string(cfg.ProductType), props.Text{Top: 0, Size: 11}),
			text.New("Material: "+string(cfg.Material), props.Text{Top: 6, Size: 11}),
		),
	)

	m.AddRow(10,
		text.NewCol(12, "Bill of Materials (BOM):", props.Text{Size: 12, Style: fontstyle.Bold}),
	)
	m.AddRow(8,
		text.NewCol(3, "Code", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(7, "Description", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(2, "Qty", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, item := range cfg.BOM {
		m.AddRow(7,
			text.NewCol(3, item.Code, props.Text{Size: 9}),
			text.NewCol(7, item.Description, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Qty), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		text.NewCol(12, "Routing Flags:", props.Text{Size: 12, Style: fontstyle.Bold}),
	)
	m.AddRow(8,
		text.NewCol(12, routingFlag(cfg), props.Text{Size: 11, Style: fontstyle.Bold}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// optionsSummary joins the descriptions of BOM lines with an OPT- code
// prefix, or "None" when no option line is present.
func optionsSummary(cfg entities.PricedConfiguration) string {
	var descriptions []string
	for _, item := range cfg.BOM {
		if strings.HasPrefix(item.Code, "OPT-") {
			descriptions = append(descriptions, item.Description)
		}
	}
	if len(descriptions) == 0 {
		return "None"
	}
	return strings.Join(descriptions, ", ")
}

func routingFlag(cfg entities.PricedConfiguration) string {
	if cfg.HasOptionLine("OPT-EXP") {
		return "EXPRESS BUILD"
	}
	return "STANDARD BUILD"
}
