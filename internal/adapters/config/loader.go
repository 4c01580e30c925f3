// Package config loads the cheflow configuration with viper.
package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	defaultTimeout           = 30 * time.Second
	defaultUploadConcurrency = 4
	defaultLogFormat         = "pretty"
)

// Loader implements ports.ConfigLoader on top of viper.
type Loader struct {
	// SearchPaths are the directories scanned for cheflow.yaml when no explicit path is given.
	SearchPaths []string

	validate *validator.Validate
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a Loader searching the working directory, $HOME/.cheflow and /etc/cheflow.
func NewLoader() *Loader {
	return &Loader{
		SearchPaths: []string{".", "$HOME/" + domain.ConfigDirName, "/etc/cheflow"},
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads the configuration from path, or from the search paths when path is empty.
// CHEFLOW_* environment variables override file values. A missing file is not an error
// when searching; the result is still validated.
func (l *Loader) Load(path string) (domain.Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(domain.ConfigFileName)
		v.SetConfigType("yaml")
		for _, p := range l.SearchPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil && !isNotFound(err, path) {
		return domain.Config{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	v.SetEnvPrefix(domain.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg domain.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.Config{}, zerr.Wrap(domain.ErrConfigReadFailed, err.Error())
	}

	if err := l.validate.Struct(cfg); err != nil {
		return domain.Config{}, invalid(err)
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can bind it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server_url", "")
	v.SetDefault("client_name", "")
	v.SetDefault("client_key", "")
	v.SetDefault("ssl_verify", true)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("lockfile", domain.DefaultLockfileName)
	v.SetDefault("log_format", defaultLogFormat)
	v.SetDefault("upload_concurrency", defaultUploadConcurrency)
}

// isNotFound reports whether err means no configuration file exists.
// An explicit path that does not exist is an error; a failed search is not.
func isNotFound(err error, path string) bool {
	if path != "" {
		return false
	}
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// invalid converts validator errors into ErrConfigInvalid, naming the first failing key.
func invalid(err error) error {
	wrapped := zerr.Wrap(domain.ErrConfigInvalid, "configuration is incomplete")

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return zerr.With(wrapped, "reason", err.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, keyFor(fe.StructField())+" ("+fe.Tag()+")")
	}
	return zerr.With(wrapped, "fields", strings.Join(fields, ", "))
}

// keyFor maps a Config field name to its configuration key.
func keyFor(field string) string {
	switch field {
	case "ServerURL":
		return "server_url"
	case "ClientName":
		return "client_name"
	case "ClientKey":
		return "client_key"
	case "SSLVerify":
		return "ssl_verify"
	case "LogFormat":
		return "log_format"
	case "UploadConcurrency":
		return "upload_concurrency"
	default:
		return strings.ToLower(field)
	}
}
