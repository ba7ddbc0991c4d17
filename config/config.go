package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultMaxAttempts         = 3
	defaultBackoffBase         = 30 * time.Second
	defaultBackoffMax          = time.Hour
	defaultGatewayTimeout      = 10 * time.Second
	defaultDedupeWindow        = time.Hour
	defaultRateLimitWindow     = time.Hour
	defaultBatchSize           = 100
	defaultBatchSchedule       = "@every 60s"
	defaultPurgeSchedule       = "@daily"
	defaultEventRetention      = 7 * 24 * time.Hour
	defaultNotificationTTL     = 30 * 24 * time.Hour
	defaultTimezone            = "UTC"
	defaultSocialRateLimit     = 3
	defaultMaxActiveDevices    = 3
	defaultMaxRegisterAttempts = 5
	defaultFirebaseSendRate    = 50
	defaultFirebaseSendBurst   = 10
	defaultSlowQueryThreshold  = 200 * time.Millisecond
	defaultMaxRequestBodySize  = "1M"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		// MaxRequestBodySize limits request bodies, e.g. "1M"
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Database struct {
		// AutoMigrate creates/updates the notification tables on startup
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

		// SlowQueryThreshold is the elapsed time above which GORM queries are logged as slow
		SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	} `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for dispatch signals
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Dispatch configuration for the notification pipeline
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Devices configuration for the device registry
	Devices *DevicesConfig `json:"devices" yaml:"devices"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Client-side pacing of multicast requests
	SendRatePerSecond float64 `json:"sendRatePerSecond" yaml:"sendRatePerSecond"`
	SendBurst         int     `json:"sendBurst" yaml:"sendBurst"`
}

// PubSubConfig defines Pub/Sub configuration for dispatch signals
type PubSubConfig struct {
	// Provider type: "memory" for in-process, "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// DispatchConfig defines the decision pipeline and retry policy
type DispatchConfig struct {
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
	BackoffBase    time.Duration `json:"backoffBase" yaml:"backoffBase"`
	BackoffMax     time.Duration `json:"backoffMax" yaml:"backoffMax"`
	GatewayTimeout time.Duration `json:"gatewayTimeout" yaml:"gatewayTimeout"`

	DedupeWindow    time.Duration `json:"dedupeWindow" yaml:"dedupeWindow"`
	RateLimitWindow time.Duration `json:"rateLimitWindow" yaml:"rateLimitWindow"`

	// RateLimits maps a category (e.g. SOCIAL) to its per-window cap. Missing or zero means unlimited.
	RateLimits map[string]int `json:"rateLimits" yaml:"rateLimits"`

	// RevokeInvalidTokens revokes devices the gateway reports as invalid or unregistered
	RevokeInvalidTokens *bool `json:"revokeInvalidTokens" yaml:"revokeInvalidTokens"`

	BatchSize     int    `json:"batchSize" yaml:"batchSize"`
	BatchSchedule string `json:"batchSchedule" yaml:"batchSchedule"`
	PurgeSchedule string `json:"purgeSchedule" yaml:"purgeSchedule"`

	EventRetention  time.Duration `json:"eventRetention" yaml:"eventRetention"`
	NotificationTTL time.Duration `json:"notificationTTL" yaml:"notificationTTL"`
	DefaultTimezone string        `json:"defaultTimezone" yaml:"defaultTimezone"`
}

// ShouldRevokeInvalidTokens reports whether invalid-token feedback revokes devices.
func (c *DispatchConfig) ShouldRevokeInvalidTokens() bool {
	return c.RevokeInvalidTokens == nil || *c.RevokeInvalidTokens
}

// RateLimitFor returns the hourly cap for a category, 0 meaning unlimited.
func (c *DispatchConfig) RateLimitFor(category string) int {
	return c.RateLimits[category]
}

// DevicesConfig defines the device registry limits
type DevicesConfig struct {
	MaxActive           int `json:"maxActive" yaml:"maxActive"`
	MaxRegisterAttempts int `json:"maxRegisterAttempts" yaml:"maxRegisterAttempts"`
}

// DefaultDispatchConfig returns the dispatch settings used when a field is not configured.
func DefaultDispatchConfig() *DispatchConfig {
	cfg := &DispatchConfig{}
	cfg.applyDefaults()

	return cfg
}

// DefaultDevicesConfig returns the device registry settings used when a field is not configured.
func DefaultDevicesConfig() *DevicesConfig {
	cfg := &DevicesConfig{}
	cfg.applyDefaults()

	return cfg
}

func (c *DispatchConfig) applyDefaults() {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.BackoffBase <= 0 {
		c.BackoffBase = defaultBackoffBase
	}
	if c.BackoffMax <= 0 {
		c.BackoffMax = defaultBackoffMax
	}
	if c.GatewayTimeout <= 0 {
		c.GatewayTimeout = defaultGatewayTimeout
	}
	if c.DedupeWindow <= 0 {
		c.DedupeWindow = defaultDedupeWindow
	}
	if c.RateLimitWindow <= 0 {
		c.RateLimitWindow = defaultRateLimitWindow
	}
	if c.RateLimits == nil {
		c.RateLimits = map[string]int{"SOCIAL": defaultSocialRateLimit}
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if strings.TrimSpace(c.BatchSchedule) == "" {
		c.BatchSchedule = defaultBatchSchedule
	}
	if strings.TrimSpace(c.PurgeSchedule) == "" {
		c.PurgeSchedule = defaultPurgeSchedule
	}
	if c.EventRetention <= 0 {
		c.EventRetention = defaultEventRetention
	}
	if c.NotificationTTL <= 0 {
		c.NotificationTTL = defaultNotificationTTL
	}
	if strings.TrimSpace(c.DefaultTimezone) == "" {
		c.DefaultTimezone = defaultTimezone
	}
}

func (c *DevicesConfig) applyDefaults() {
	if c.MaxActive <= 0 {
		c.MaxActive = defaultMaxActiveDevices
	}
	if c.MaxRegisterAttempts <= 0 {
		c.MaxRegisterAttempts = defaultMaxRegisterAttempts
	}
}

func (c *FirebaseConfig) applyDefaults() {
	if c.SendRatePerSecond <= 0 {
		c.SendRatePerSecond = defaultFirebaseSendRate
	}
	if c.SendBurst <= 0 {
		c.SendBurst = defaultFirebaseSendBurst
	}
}

// applyDefaults fills every optional section so consumers never see nil sections.
func (c *Config) applyDefaults() {
	if c.Dispatch == nil {
		c.Dispatch = &DispatchConfig{}
	}
	c.Dispatch.applyDefaults()

	if c.Devices == nil {
		c.Devices = &DevicesConfig{}
	}
	c.Devices.applyDefaults()

	if c.Firebase != nil {
		c.Firebase.applyDefaults()
	}

	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Database.SlowQueryThreshold <= 0 {
		c.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
