package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments, security settings
// - default: Values common across all environments, protocol constants
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Protocol ProtocolConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type StorageConfig struct {
	// Driver selects the store implementations: "memory" or "postgres".
	Driver string `envconfig:"STORAGE_DRIVER" default:"memory"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"ondc_seller"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// ProtocolConfig carries the fixed-for-this-deployment fields of the ONDC
// context block plus catalog rendering defaults. The defaults mirror the
// values the seller app is registered with on the network.
type ProtocolConfig struct {
	Domain      string `envconfig:"ONDC_DOMAIN" default:"ONDC:RET10"`
	Country     string `envconfig:"ONDC_COUNTRY" default:"IND"`
	City        string `envconfig:"ONDC_CITY" default:"std:080"`
	CoreVersion string `envconfig:"ONDC_CORE_VERSION" default:"1.2.0"`
	BapID       string `envconfig:"ONDC_BAP_ID" default:"buyer-app.ondc.org"`
	BapURI      string `envconfig:"ONDC_BAP_URI" default:"https://buyer-app.ondc.org/protocol/v1"`
	BppID       string `envconfig:"ONDC_BPP_ID" default:"seller-app.ondc.org"`
	BppURI      string `envconfig:"ONDC_BPP_URI" default:"https://seller-app.ondc.org/protocol/v1"`
	TTL         string `envconfig:"ONDC_TTL" default:"PT30S"`

	BppName         string `envconfig:"ONDC_BPP_NAME" default:"ONDC Seller App"`
	ProviderID      string `envconfig:"ONDC_PROVIDER_ID" default:"1"`
	ProviderName    string `envconfig:"ONDC_PROVIDER_NAME" default:"ONDC Seller"`
	Currency        string `envconfig:"ONDC_CURRENCY" default:"INR"`
	DefaultCategory string `envconfig:"ONDC_DEFAULT_CATEGORY" default:"electronics"`
	SearchLimit     int    `envconfig:"ONDC_SEARCH_LIMIT" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	var cfg Config
	cfg.Server.Port = "8889"
	cfg.Storage.Driver = "memory"
	cfg.Log = LogConfig{Level: "error", TimeFormat: "2006-01-02 15:04:05.000"}
	cfg.Protocol = ProtocolConfig{
		Domain:          "ONDC:RET10",
		Country:         "IND",
		City:            "std:080",
		CoreVersion:     "1.2.0",
		BapID:           "buyer-app.ondc.org",
		BapURI:          "https://buyer-app.ondc.org/protocol/v1",
		BppID:           "seller-app.ondc.org",
		BppURI:          "https://seller-app.ondc.org/protocol/v1",
		TTL:             "PT30S",
		BppName:         "ONDC Seller App",
		ProviderID:      "1",
		ProviderName:    "ONDC Seller",
		Currency:        "INR",
		DefaultCategory: "electronics",
		SearchLimit:     20,
	}
	return cfg
}
