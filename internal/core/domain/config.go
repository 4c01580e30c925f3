package domain

import "time"

// Config holds the settings needed to talk to the Chef server.
type Config struct {
	// ServerURL is the organization URL, e.g. https://chef.example.com/organizations/acme.
	ServerURL string `mapstructure:"server_url" validate:"required,url"`

	// ClientName is the API client (node_name in knife.rb) used to sign requests.
	ClientName string `mapstructure:"client_name" validate:"required"`

	// ClientKey is the path to the client's private key.
	ClientKey string `mapstructure:"client_key" validate:"required,file"`

	// SSLVerify disables certificate verification when false.
	SSLVerify bool `mapstructure:"ssl_verify"`

	// Timeout bounds every request to the Chef server.
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`

	// Lockfile is the lockfile name relative to the cookbook root.
	Lockfile string `mapstructure:"lockfile" validate:"required"`

	// LogFormat is "pretty" or "json".
	LogFormat string `mapstructure:"log_format" validate:"oneof=pretty json"`

	// UploadConcurrency bounds parallel sandbox file uploads.
	UploadConcurrency int `mapstructure:"upload_concurrency" validate:"min=1,max=64"`
}
