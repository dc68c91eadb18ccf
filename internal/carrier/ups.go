package carrier

import (
	"context"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// UPSConfig holds the UPS account credentials.
type UPSConfig struct {
	Enabled   bool
	AccessKey string
	Username  string
	Password  string
}

// UPSProvider returns synthetic UPS rates. Real integration requires the UPS
// OAuth/REST rating API; this placeholder keeps the contract exercised
// end-to-end until that integration lands.
type UPSProvider struct {
	cfg UPSConfig
}

// NewUPSProvider creates a UPS provider with the given credentials.
func NewUPSProvider(cfg UPSConfig) *UPSProvider {
	return &UPSProvider{cfg: cfg}
}

// ID returns the provider identifier.
func (p *UPSProvider) ID() string { return "ups" }

// Enabled reports whether the provider is switched on and fully credentialed.
func (p *UPSProvider) Enabled() bool {
	return p.cfg.Enabled && p.cfg.AccessKey != "" && p.cfg.Username != "" && p.cfg.Password != ""
}

// Quote returns the UPS rate table for the shipment.
func (p *UPSProvider) Quote(_ context.Context, shipment model.Shipment) ([]model.CarrierQuote, error) {
	if !p.Enabled() {
		return nil, nil
	}
	meta := mockMeta(shipment)
	return []model.CarrierQuote{
		{Carrier: "ups", Service: "Ground", Amount: 12.50, Currency: "USD", Metadata: meta()},
		{Carrier: "ups", Service: "2nd Day Air", Amount: 24.30, Currency: "USD", Metadata: meta()},
	}, nil
}

// mockMeta returns a factory for per-quote metadata maps carrying a short
// shipment hash for debugging. Each quote gets its own map so pipeline rules
// never share metadata across quotes.
func mockMeta(shipment model.Shipment) func() map[string]interface{} {
	hash := shipment.Fingerprint()[:6]
	return func() map[string]interface{} {
		return map[string]interface{}{"debug": "mock:" + hash}
	}
}
