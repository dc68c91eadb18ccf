package carrier

import (
	"context"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// FedExConfig holds the FedEx account credentials.
type FedExConfig struct {
	Enabled       bool
	Key           string
	Password      string
	AccountNumber string
	MeterNumber   string
}

// FedExProvider returns synthetic FedEx rates.
type FedExProvider struct {
	cfg FedExConfig
}

// NewFedExProvider creates a FedEx provider with the given credentials.
func NewFedExProvider(cfg FedExConfig) *FedExProvider {
	return &FedExProvider{cfg: cfg}
}

// ID returns the provider identifier.
func (p *FedExProvider) ID() string { return "fedex" }

// Enabled reports whether the provider is switched on and fully credentialed.
func (p *FedExProvider) Enabled() bool {
	return p.cfg.Enabled && p.cfg.Key != "" && p.cfg.Password != "" &&
		p.cfg.AccountNumber != "" && p.cfg.MeterNumber != ""
}

// Quote returns the FedEx rate table for the shipment.
func (p *FedExProvider) Quote(_ context.Context, shipment model.Shipment) ([]model.CarrierQuote, error) {
	if !p.Enabled() {
		return nil, nil
	}
	meta := mockMeta(shipment)
	return []model.CarrierQuote{
		{Carrier: "fedex", Service: "Ground", Amount: 13.10, Currency: "USD", Metadata: meta()},
		{Carrier: "fedex", Service: "Overnight", Amount: 42.00, Currency: "USD", Metadata: meta()},
	}, nil
}
