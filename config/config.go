// Package config provides configuration management for the quote service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/quote-service/internal/carrier"
	"github.com/guttosm/quote-service/internal/domain/model"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Pricing  PricingConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Carriers CarriersConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	LogLevel       string
	LogPretty      bool
}

// PricingConfig holds the default pricing configuration and box catalog.
type PricingConfig struct {
	Snapshot model.PricingConfig
	// BoxTypes is the fallback catalog used when no stored catalog exists.
	BoxTypes []model.BoxType
}

// CacheConfig holds the estimate result cache configuration.
type CacheConfig struct {
	Size   int
	TTL    time.Duration
	Shards int
}

// RedisConfig holds the Redis-backed carrier quote cache configuration.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	// QuoteTTL is how long cached carrier responses stay valid.
	QuoteTTL time.Duration
	// MaxAttempts bounds retries per provider call.
	MaxAttempts int
	// RetryBackoff is the sleep between provider retry attempts.
	RetryBackoff time.Duration
}

// CarriersConfig holds carrier provider credentials and timeouts.
type CarriersConfig struct {
	UPS             carrier.UPSConfig
	FedEx           carrier.FedExConfig
	USPS            carrier.USPSConfig
	ProviderTimeout time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
	// Clients maps client IDs to bcrypt secret hashes ("id:hash,id:hash").
	Clients      map[string]string
	JWTSecretKey string
	TokenTTL     time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			LogPretty:      getEnvBool("LOG_PRETTY", false),
		},
		Pricing: PricingConfig{
			Snapshot: loadPricingSnapshot(),
			BoxTypes: parseBoxTypes(getEnv("BOX_TYPES", defaultBoxTypes)),
		},
		Cache: CacheConfig{
			Size:   getEnvInt("CACHE_SIZE", 1000),
			TTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
			Shards: getEnvInt("CACHE_SHARDS", 16),
		},
		Redis: RedisConfig{
			Enabled:      getEnvBool("REDIS_ENABLED", false),
			Addr:         getEnv("REDIS_ADDR", "localhost:6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvInt("REDIS_DB", 0),
			QuoteTTL:     getEnvDuration("QUOTE_CACHE_TTL", 10*time.Minute),
			MaxAttempts:  getEnvInt("CARRIER_MAX_ATTEMPTS", 2),
			RetryBackoff: getEnvDuration("CARRIER_RETRY_BACKOFF", 150*time.Millisecond),
		},
		Carriers: CarriersConfig{
			UPS: carrier.UPSConfig{
				Enabled:   getEnvBool("UPS_ENABLED", false),
				AccessKey: getEnv("UPS_ACCESS_KEY", ""),
				Username:  getEnv("UPS_USERNAME", ""),
				Password:  getEnv("UPS_PASSWORD", ""),
			},
			FedEx: carrier.FedExConfig{
				Enabled:       getEnvBool("FEDEX_ENABLED", false),
				Key:           getEnv("FEDEX_KEY", ""),
				Password:      getEnv("FEDEX_PASSWORD", ""),
				AccountNumber: getEnv("FEDEX_ACCOUNT_NUMBER", ""),
				MeterNumber:   getEnv("FEDEX_METER_NUMBER", ""),
			},
			USPS: carrier.USPSConfig{
				Enabled: getEnvBool("USPS_ENABLED", false),
				UserID:  getEnv("USPS_USER_ID", ""),
			},
			ProviderTimeout: getEnvDuration("CARRIER_PROVIDER_TIMEOUT", 5*time.Second),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			APIKeys:      parseAPIKeys(os.Getenv("API_KEYS")),
			Clients:      parseClients(os.Getenv("AUTH_CLIENTS")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			TokenTTL:     getEnvDuration("JWT_TOKEN_TTL", 15*time.Minute),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "quote_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

// defaultBoxTypes is the built-in catalog, ordered ascending by volume.
const defaultBoxTypes = "small:20:15:10:5,medium:40:30:30:20,large:60:50:50:30"

// loadPricingSnapshot builds the default pricing configuration snapshot.
func loadPricingSnapshot() model.PricingConfig {
	return model.PricingConfig{
		PricingMode:                 getEnv("PRICING_MODE", model.ModePerKm),
		BaseFee:                     getEnvFloat("PRICING_BASE_FEE", 5),
		PerKmRate:                   getEnvFloat("PRICING_PER_KM_RATE", 1.2),
		PerMinuteRate:               getEnvFloat("PRICING_PER_MINUTE_RATE", 0.35),
		DistanceTiers:               parseDistanceTiers(os.Getenv("PRICING_DISTANCE_TIERS")),
		WeightTiers:                 parseWeightTiers(os.Getenv("PRICING_WEIGHT_TIERS")),
		DistanceTierIncludeDuration: getEnvBool("PRICING_TIER_INCLUDE_DURATION", false),
		TieredFragileIncluded:       getEnvBool("PRICING_TIER_FRAGILE_INCLUDED", false),
		FragileSurchargeFlat:        getEnvFloat("PRICING_FRAGILE_FLAT", 0),
		FragileSurchargePct:         getEnvFloat("PRICING_FRAGILE_PCT", 0),
		PriorityMultiplier:          getEnvFloat("PRICING_PRIORITY_MULTIPLIER", 0),
		AfterHoursPct:               getEnvFloat("PRICING_AFTER_HOURS_PCT", 0),
		BusinessStartHour:           getEnvInt("PRICING_BUSINESS_START_HOUR", 0),
		BusinessEndHour:             getEnvInt("PRICING_BUSINESS_END_HOUR", 0),
		DimDivisor:                  getEnvFloat("PRICING_DIM_DIVISOR", 0),
		ZoneBase:                    getEnvFloat("PRICING_ZONE_BASE", 0),
		PeakSurcharge:               getEnvFloat("PRICING_PEAK_SURCHARGE", 0),
		IsPeak:                      getEnvBool("PRICING_IS_PEAK", false),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseDistanceTiers parses "max_km:per_km_rate,..." pairs.
func parseDistanceTiers(s string) []model.DistanceTier {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]model.DistanceTier, 0, len(parts))
	for _, p := range parts {
		fields := strings.Split(strings.TrimSpace(p), ":")
		if len(fields) != 2 {
			continue
		}
		maxKm, err1 := strconv.ParseFloat(fields[0], 64)
		rate, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		result = append(result, model.DistanceTier{MaxKm: maxKm, PerKmRate: rate})
	}
	return result
}

// parseWeightTiers parses "max_kg:extra_per_km,..." pairs.
func parseWeightTiers(s string) []model.WeightTier {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]model.WeightTier, 0, len(parts))
	for _, p := range parts {
		fields := strings.Split(strings.TrimSpace(p), ":")
		if len(fields) != 2 {
			continue
		}
		maxKg, err1 := strconv.ParseFloat(fields[0], 64)
		extra, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		result = append(result, model.WeightTier{MaxKg: maxKg, ExtraPerKm: extra})
	}
	return result
}

// parseBoxTypes parses "name:length:width:height:weight_limit,..." entries.
func parseBoxTypes(s string) []model.BoxType {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]model.BoxType, 0, len(parts))
	for _, p := range parts {
		fields := strings.Split(strings.TrimSpace(p), ":")
		if len(fields) != 5 {
			continue
		}
		length, err1 := strconv.ParseFloat(fields[1], 64)
		width, err2 := strconv.ParseFloat(fields[2], 64)
		height, err3 := strconv.ParseFloat(fields[3], 64)
		limit, err4 := strconv.ParseFloat(fields[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		result = append(result, model.BoxType{
			Name:        fields[0],
			Length:      length,
			Width:       width,
			Height:      height,
			WeightLimit: limit,
		})
	}
	return result
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

// parseClients parses "client_id:bcrypt_hash,..." pairs. Bcrypt hashes
// contain no commas or colons beyond the $-delimited prefix, so the first
// colon splits id from hash.
func parseClients(s string) map[string]string {
	if s == "" {
		return nil
	}
	pairs := strings.Split(s, ",")
	result := make(map[string]string, len(pairs))
	for _, p := range pairs {
		p = strings.TrimSpace(p)
		idx := strings.Index(p, ":")
		if idx <= 0 || idx == len(p)-1 {
			continue
		}
		result[p[:idx]] = p[idx+1:]
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
