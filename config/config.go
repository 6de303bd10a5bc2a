// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr              string   `env:"BIND_ADDR"                    flag:"bind-addr"                    flagDesc:"Bind address"`
	MongoDBURL            string   `env:"MONGODB_URL"                  flag:"mongodb-url"                  flagDesc:"MongoDB server URL"`
	Database              string   `env:"MONGODB_DATABASE"             flag:"mongodb-database"             flagDesc:"MongoDB database for data"`
	ProductsCollection    string   `env:"MONGODB_PRODUCTS_COLLECTION"  flag:"mongodb-products-collection"  flagDesc:"MongoDB collection for the product catalog"`
	CustomersCollection   string   `env:"MONGODB_CUSTOMERS_COLLECTION" flag:"mongodb-customers-collection" flagDesc:"MongoDB collection for the customer sale ledger"`
	SalesCollection       string   `env:"MONGODB_SALES_COLLECTION"     flag:"mongodb-sales-collection"     flagDesc:"MongoDB collection for the sales stats ledger"`
	CacheCollection       string   `env:"MONGODB_CACHE_COLLECTION"     flag:"mongodb-cache-collection"     flagDesc:"MongoDB collection for checkout snapshots"`
	PaypalEnv             string   `env:"PAYPAL_ENV"                   flag:"paypal-env"                   flagDesc:"PayPal environment mode (live or sandbox)"`
	PaypalLiveClientID    string   `env:"PAYPAL_LIVE_CLIENT_ID"        flag:"paypal-live-client-id"        flagDesc:"PayPal live client ID"`
	PaypalLiveSecret      string   `env:"PAYPAL_LIVE_SECRET"           flag:"paypal-live-secret"           flagDesc:"PayPal live client secret"`
	PaypalSandboxClientID string   `env:"PAYPAL_SANDBOX_CLIENT_ID"     flag:"paypal-sandbox-client-id"     flagDesc:"PayPal sandbox client ID"`
	PaypalSandboxSecret   string   `env:"PAYPAL_SANDBOX_SECRET"        flag:"paypal-sandbox-secret"        flagDesc:"PayPal sandbox client secret"`
	BrandName             string   `env:"BRAND_NAME"                   flag:"brand-name"                   flagDesc:"Store name passed to PayPal as the brand name"`
	ReturnURL             string   `env:"RETURN_URL"                   flag:"return-url"                   flagDesc:"Thank you page the buyer is sent to after approval"`
	CancelURL             string   `env:"CANCEL_URL"                   flag:"cancel-url"                   flagDesc:"Page the buyer is sent to when cancelling on PayPal"`
	NonceSecret           string   `env:"NONCE_SECRET"                 flag:"nonce-secret"                 flagDesc:"Secret used to sign checkout nonces"`
	PaymentCurrency       string   `env:"PAYMENT_CURRENCY"             flag:"payment-currency"             flagDesc:"Default store currency (ISO 4217)"`
	BaseShippingCost      string   `env:"BASE_SHIPPING_COST"           flag:"base-shipping-cost"           flagDesc:"Base shipping cost added to per-product shipping"`
	GlobalTaxRate         string   `env:"GLOBAL_TAX_RATE"              flag:"global-tax-rate"              flagDesc:"Fallback tax rate percentage"`
	EnableTax             bool     `env:"ENABLE_TAX"                   flag:"enable-tax"                   flagDesc:"Whether tax is added to buy now totals"`
	BrokerAddr            []string `env:"KAFKA_BROKER_ADDR"            flag:"broker-addr"                  flagDesc:"Kafka broker address"`
	SchemaRegistryURL     string   `env:"SCHEMA_REGISTRY_URL"          flag:"schema-registry-url"          flagDesc:"Schema registry URL"`
}

// IsLiveMode returns true when the configured PayPal environment mode is live.
// Billing plans, client IDs and merchant IDs created under one mode must never
// be reused under the other, so everything that talks to PayPal threads this
// through rather than re-reading settings.
func (c *Config) IsLiveMode() bool {
	return c.PaypalEnv == "live"
}

// PaypalCredentials returns the client ID and secret for the configured
// environment mode.
func (c *Config) PaypalCredentials() (string, string) {
	if c.IsLiveMode() {
		return c.PaypalLiveClientID, c.PaypalLiveSecret
	}
	return c.PaypalSandboxClientID, c.PaypalSandboxSecret
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:            "estore",
		ProductsCollection:  "products",
		CustomersCollection: "customers",
		SalesCollection:     "sales",
		CacheCollection:     "checkout_cache",
		PaypalEnv:           "sandbox",
		PaymentCurrency:     "USD",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
