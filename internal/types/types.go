package types

import "time"

// AssetConfig is the connector configuration supplied by the host.
// It is populated once at initialization and treated as read-only afterwards.
// The envconfig names are only used when running outside the host.
type AssetConfig struct {
	Host             string        `yaml:"host" json:"host" mapstructure:"host" envconfig:"TEMPLATE_CONNECTOR_HOST"`
	APIKey           string        `yaml:"api_key" json:"api_key" mapstructure:"api_key" envconfig:"TEMPLATE_CONNECTOR_API_KEY"`
	VerifyServerCert bool          `yaml:"verify_server_cert" json:"verify_server_cert" mapstructure:"verify_server_cert" envconfig:"TEMPLATE_CONNECTOR_VERIFY_SERVER_CERT"`
	Timeout          time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout" envconfig:"TEMPLATE_CONNECTOR_TIMEOUT"`
}

// FieldDef describes a single action parameter or output field.
type FieldDef struct {
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
	Required    bool   `yaml:"required" json:"required"`
}
