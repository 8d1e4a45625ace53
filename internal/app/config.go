package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"

	"github.com/xenking/market-checkout/internal/domain/money"
	"github.com/xenking/market-checkout/internal/notify"
)

// Config holds the complete application configuration, loadable from
// environment variables (MARKET_ prefix) or YAML config files.
type Config struct {
	Currency   string         `default:"TL" usage:"Currency unit appended to rendered amounts" yaml:"currency"`
	StrictExit bool           `default:"false" usage:"Exit with a non-zero code when the checkout fails" yaml:"strict_exit"`
	Output     OutputConfig   `yaml:"output"`
	Scenario   ScenarioConfig `yaml:"scenario"`
}

// OutputConfig selects where checkout events are reported.
type OutputConfig struct {
	Format string `default:"text" usage:"Event output format: text, json or log" yaml:"format"`
}

// ScenarioConfig describes the checkout run performed by the demo.
type ScenarioConfig struct {
	OrderID  int64          `default:"1" usage:"Identifier of the created order" yaml:"order_id"`
	Status   string         `default:"Confirmed" usage:"Status applied to the created order" yaml:"status"`
	Payment  string         `default:"card" usage:"Payment method: card, cash or transfer" yaml:"payment"`
	Products []string       `default:"1:Elma:10,2:Armut:15" usage:"Cart products as id:name:price entries" yaml:"products"`
	Discount DiscountConfig `yaml:"discount"`
	Customer CustomerConfig `yaml:"customer"`
}

// DiscountConfig describes the discount policy. An empty type disables the
// discount step.
type DiscountConfig struct {
	Type  string `default:"percentage" usage:"Discount type: percentage, fixed or empty for none" yaml:"type"`
	Value string `default:"10" usage:"Percentage or fixed amount" yaml:"value"`
}

// CustomerConfig describes the customer. An empty kind disables the customer
// step.
type CustomerConfig struct {
	Kind        string `default:"individual" usage:"Customer kind: individual, corporate or empty for none" yaml:"kind"`
	ID          int64  `default:"1" usage:"Customer identifier" yaml:"id"`
	FullName    string `default:"Ayşe Yılmaz" usage:"Customer full name" yaml:"full_name"`
	NationalID  string `default:"12345678901" usage:"National ID of an individual customer" yaml:"national_id"`
	CompanyName string `default:"" usage:"Company name of a corporate customer" yaml:"company_name"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files. Command-line flags are not consulted.
func LoadConfig() (*Config, error) {
	return loadConfig("config.yaml", "/etc/market/config.yaml")
}

func loadConfig(files ...string) (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "MARKET",
		SkipFlags: true,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
			".yml":  aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := notify.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	return nil
}

func (c *Config) currency() money.Currency {
	return money.Currency(c.Currency)
}
