package carrier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quote-service/internal/domain/model"
)

func testShipment() model.Shipment {
	return model.Shipment{
		Origin:      "Berlin",
		Destination: "Hamburg",
		WeightKg:    12,
		DistanceKm:  290,
	}
}

func TestUPSProvider_Enabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  UPSConfig
		want bool
	}{
		{"fully configured", UPSConfig{Enabled: true, AccessKey: "k", Username: "u", Password: "p"}, true},
		{"switched off", UPSConfig{Enabled: false, AccessKey: "k", Username: "u", Password: "p"}, false},
		{"missing access key", UPSConfig{Enabled: true, Username: "u", Password: "p"}, false},
		{"missing username", UPSConfig{Enabled: true, AccessKey: "k", Password: "p"}, false},
		{"missing password", UPSConfig{Enabled: true, AccessKey: "k", Username: "u"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewUPSProvider(tt.cfg).Enabled())
		})
	}
}

func TestFedExProvider_Enabled(t *testing.T) {
	full := FedExConfig{Enabled: true, Key: "k", Password: "p", AccountNumber: "a", MeterNumber: "m"}
	assert.True(t, NewFedExProvider(full).Enabled())

	noMeter := full
	noMeter.MeterNumber = ""
	assert.False(t, NewFedExProvider(noMeter).Enabled())

	off := full
	off.Enabled = false
	assert.False(t, NewFedExProvider(off).Enabled())
}

func TestUSPSProvider_Enabled(t *testing.T) {
	assert.True(t, NewUSPSProvider(USPSConfig{Enabled: true, UserID: "uid"}).Enabled())
	assert.False(t, NewUSPSProvider(USPSConfig{Enabled: true}).Enabled())
	assert.False(t, NewUSPSProvider(USPSConfig{Enabled: false, UserID: "uid"}).Enabled())
}

func TestProviders_RateTables(t *testing.T) {
	shipment := testShipment()

	tests := []struct {
		name     string
		provider Provider
		want     []struct {
			service string
			amount  float64
		}
	}{
		{
			name:     "ups",
			provider: NewUPSProvider(UPSConfig{Enabled: true, AccessKey: "k", Username: "u", Password: "p"}),
			want: []struct {
				service string
				amount  float64
			}{{"Ground", 12.50}, {"2nd Day Air", 24.30}},
		},
		{
			name:     "fedex",
			provider: NewFedExProvider(FedExConfig{Enabled: true, Key: "k", Password: "p", AccountNumber: "a", MeterNumber: "m"}),
			want: []struct {
				service string
				amount  float64
			}{{"Ground", 13.10}, {"Overnight", 42.00}},
		},
		{
			name:     "usps",
			provider: NewUSPSProvider(USPSConfig{Enabled: true, UserID: "uid"}),
			want: []struct {
				service string
				amount  float64
			}{{"Priority Mail", 11.80}, {"Express", 31.25}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes, err := tt.provider.Quote(context.Background(), shipment)
			require.NoError(t, err)
			require.Len(t, quotes, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, tt.name, quotes[i].Carrier)
				assert.Equal(t, w.service, quotes[i].Service)
				assert.Equal(t, w.amount, quotes[i].Amount)
				assert.Equal(t, "USD", quotes[i].Currency)
				assert.Equal(t, "mock:"+shipment.Fingerprint()[:6], quotes[i].Metadata["debug"])
			}
		})
	}
}

func TestProviders_DisabledReturnNoQuotes(t *testing.T) {
	shipment := testShipment()
	providers := []Provider{
		NewUPSProvider(UPSConfig{}),
		NewFedExProvider(FedExConfig{}),
		NewUSPSProvider(USPSConfig{}),
	}

	for _, p := range providers {
		quotes, err := p.Quote(context.Background(), shipment)
		assert.NoError(t, err)
		assert.Empty(t, quotes)
	}
}

func TestRegistry_EnabledKeepsRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewUSPSProvider(USPSConfig{Enabled: true, UserID: "uid"}))
	reg.Register(NewUPSProvider(UPSConfig{})) // disabled
	reg.Register(NewFedExProvider(FedExConfig{Enabled: true, Key: "k", Password: "p", AccountNumber: "a", MeterNumber: "m"}))

	enabled := reg.Enabled()
	require.Len(t, enabled, 2)
	assert.Equal(t, "usps", enabled[0].ID())
	assert.Equal(t, "fedex", enabled[1].ID())
	assert.Len(t, reg.Providers(), 3)
}
