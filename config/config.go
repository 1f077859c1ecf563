package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	// Secrets carries key material. In deployments these come from
	// environment variables, never from the YAML file.
	Secrets struct {
		// EncryptionKey is the 32-byte AES key for personal data at rest.
		EncryptionKey string `json:"encryptionKey" yaml:"encryptionKey"`
		// DigestSecret keys the HMAC used for lookup digests.
		DigestSecret string `json:"digestSecret" yaml:"digestSecret"`
		// SigningKeyPath points at the PEM-encoded RSA private key for
		// token signing. SigningKeyPEM takes precedence when set.
		SigningKeyPath string `json:"signingKeyPath" yaml:"signingKeyPath"`
		SigningKeyPEM  string `json:"signingKeyPem" yaml:"signingKeyPem"`
		// SessionSignKey, when set, enables HMAC signing of session
		// cookie values.
		SessionSignKey string `json:"sessionSignKey" yaml:"sessionSignKey"`
	} `json:"secrets" yaml:"secrets"`

	JWT *JWTConfig `json:"jwt" yaml:"jwt"`

	Argon *ArgonConfig `json:"argon" yaml:"argon"`

	Session *SessionConfig `json:"session" yaml:"session"`

	SystemUser *SystemUserConfig `json:"systemUser" yaml:"systemUser"`

	InternalAPI *InternalAPIConfig `json:"internalApi" yaml:"internalApi"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	// AI toggles the recipe-generation scopes on user tokens.
	AI *AIConfig `json:"ai" yaml:"ai"`
}

// PostgresConfig defines the database connection and pool settings.
type PostgresConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"userName" yaml:"userName"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbName" yaml:"dbName"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
	ConnMaxIdleTime time.Duration `json:"connMaxIdleTime" yaml:"connMaxIdleTime"`
}

// DSN renders the connection string for the postgres driver.
func (c *PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.UserName, c.Password, c.DBName, sslMode)
}

// JWTConfig defines token issuance settings.
type JWTConfig struct {
	Issuer         string        `json:"issuer" yaml:"issuer"`
	Audience       string        `json:"audience" yaml:"audience"`
	Lifetime       time.Duration `json:"lifetime" yaml:"lifetime"`
	APIKeyLifetime time.Duration `json:"apiKeyLifetime" yaml:"apiKeyLifetime"`
	GracePeriod    time.Duration `json:"gracePeriod" yaml:"gracePeriod"`
	RenewalBuffer  time.Duration `json:"renewalBuffer" yaml:"renewalBuffer"`
}

// ArgonConfig defines the argon2id cost parameters for code hashing.
type ArgonConfig struct {
	Time    uint32 `json:"time" yaml:"time"`
	Memory  uint32 `json:"memory" yaml:"memory"`
	Threads uint8  `json:"threads" yaml:"threads"`
	KeyLen  uint32 `json:"keyLen" yaml:"keyLen"`
	SaltLen int    `json:"saltLen" yaml:"saltLen"`
}

// SessionConfig defines browser session settings.
type SessionConfig struct {
	CookieName string        `json:"cookieName" yaml:"cookieName"`
	Lifetime   time.Duration `json:"lifetime" yaml:"lifetime"`
	Secure     bool          `json:"secure" yaml:"secure"`
}

// SystemUserConfig identifies the built-in account the server uses for its
// own internal API calls.
type SystemUserConfig struct {
	Email string `json:"email" yaml:"email"`
	Name  string `json:"name" yaml:"name"`
}

// InternalAPIConfig defines how browser handlers reach the server's own
// JSON API.
type InternalAPIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// MailConfig selects and configures the outbound mail transport.
type MailConfig struct {
	// Provider is "smtp" or "log". The log provider writes codes to the
	// application log and is meant for development only.
	Provider string `json:"provider" yaml:"provider"`

	SMTP struct {
		Host     string `json:"host" yaml:"host"`
		Port     string `json:"port" yaml:"port"`
		UserName string `json:"userName" yaml:"userName"`
		Password string `json:"password" yaml:"password"`
		From     string `json:"from" yaml:"from"`
	} `json:"smtp" yaml:"smtp"`
}

// AIConfig toggles recipe-generation features.
type AIConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
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
