package request

import (
	"strings"
	"testing"

	"coiltech/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestConfigurationRequest_ToEntity(t *testing.T) {
	r := ConfigurationRequest{
		ProductType: "fancoil",
		WidthIn:     decimal.RequireFromString("24.0"),
		HeightIn:    decimal.RequireFromString("18.0"),
		DepthIn:     decimal.RequireFromString("12.0"),
		Material:    "COPPER",
		Options:     []string{"coating", "STAINLESSFASTENERS"},
		Quantity:    10,
	}

	e, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ProductType != entities.ProductTypeFanCoil {
		t.Fatalf("expected canonical FanCoil, got %q", e.ProductType)
	}
	if e.Material != entities.MaterialCopper {
		t.Fatalf("expected canonical Copper, got %q", e.Material)
	}
	if len(e.Options) != 2 || e.Options[0] != entities.OptionCoating || e.Options[1] != entities.OptionStainlessFasteners {
		t.Fatalf("unexpected options: %v", e.Options)
	}
}

func TestConfigurationRequest_ToEntity_UnknownProductType(t *testing.T) {
	r := ConfigurationRequest{ProductType: "Chiller", Material: "Copper"}
	_, err := r.ToEntity()
	if err == nil || !strings.Contains(err.Error(), `"Chiller"`) {
		t.Fatalf("expected unknown productType error, got %v", err)
	}
}

func TestConfigurationRequest_ToEntity_UnknownMaterial(t *testing.T) {
	r := ConfigurationRequest{ProductType: "Coil", Material: "Titanium"}
	_, err := r.ToEntity()
	if err == nil || !strings.Contains(err.Error(), `"Titanium"`) {
		t.Fatalf("expected unknown material error, got %v", err)
	}
}

func TestConfigurationRequest_ToEntity_UnknownOptionsKeptVerbatim(t *testing.T) {
	r := ConfigurationRequest{
		ProductType: "Coil",
		Material:    "Steel",
		Options:     []string{"None", "TitaniumCoating"},
	}
	e, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(e.Options) != 2 {
		t.Fatalf("unexpected options: %v", e.Options)
	}
	if e.Options[1] != entities.ConfigOption("TitaniumCoating") {
		t.Fatalf("unknown option not preserved: %q", e.Options[1])
	}
}
