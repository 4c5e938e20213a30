package config

import (
	"errors"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// ServeConfig carries both the go-flags and yaml views of the serve command's
// configuration: flags establish defaults, a config file overrides them.
type ServeConfig struct {
	BindIP   string `long:"bind-ip" default:"0.0.0.0" description:"IP address to listen on" yaml:"bind_ip"`
	BindPort uint16 `long:"bind-port" default:"8080" description:"port to listen on" yaml:"bind_port"`

	WordlistPath string `long:"wordlist" description:"file of extra weak words, one per line; reloaded on change" value-name:"PATH" yaml:"wordlist_path"`

	HIBP struct {
		BaseURL  string        `long:"hibp-base-url" description:"breach oracle base URL" value-name:"URL" yaml:"base_url"`
		Timeout  time.Duration `long:"hibp-timeout" default:"8s" description:"breach lookup timeout" value-name:"TIMEOUT" yaml:"timeout"`
		Disabled bool          `long:"no-breach-check" description:"never consult the breach oracle" yaml:"disabled"`
	} `group:"Breach Oracle Options" yaml:"hibp"`
}

// Overlay applies a yaml config file on top of the current values. Keys
// absent from the file keep their flag or default values.
func (c *ServeConfig) Overlay(bs []byte) error {
	return yaml.Unmarshal(bs, c)
}

func (c *ServeConfig) Validate() []error {
	var errs []error

	if c.HIBP.Timeout <= 0 {
		errs = append(errs, errors.New("breach lookup timeout must be positive"))
	}

	return errs
}
