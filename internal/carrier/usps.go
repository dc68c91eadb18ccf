package carrier

import (
	"context"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// USPSConfig holds the USPS Web Tools credentials.
type USPSConfig struct {
	Enabled bool
	UserID  string
}

// USPSProvider returns synthetic USPS rates.
type USPSProvider struct {
	cfg USPSConfig
}

// NewUSPSProvider creates a USPS provider with the given credentials.
func NewUSPSProvider(cfg USPSConfig) *USPSProvider {
	return &USPSProvider{cfg: cfg}
}

// ID returns the provider identifier.
func (p *USPSProvider) ID() string { return "usps" }

// Enabled reports whether the provider is switched on and credentialed.
func (p *USPSProvider) Enabled() bool {
	return p.cfg.Enabled && p.cfg.UserID != ""
}

// Quote returns the USPS rate table for the shipment.
func (p *USPSProvider) Quote(_ context.Context, shipment model.Shipment) ([]model.CarrierQuote, error) {
	if !p.Enabled() {
		return nil, nil
	}
	meta := mockMeta(shipment)
	return []model.CarrierQuote{
		{Carrier: "usps", Service: "Priority Mail", Amount: 11.80, Currency: "USD", Metadata: meta()},
		{Carrier: "usps", Service: "Express", Amount: 31.25, Currency: "USD", Metadata: meta()},
	}, nil
}
