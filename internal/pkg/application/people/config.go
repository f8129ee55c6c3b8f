package people

import (
	"io"
	"strings"
	"time"

	"github.com/diwise/people-catalog/pkg/catalog/client"
	yaml "gopkg.in/yaml.v2"
)

const (
	DefaultEndpoint string = "https://swapi.dev/api"
	DefaultPeople   string = "/people/"
)

type Config struct {
	Endpoint    string   `yaml:"endpoint"`
	People      string   `yaml:"people"`
	Timeout     string   `yaml:"timeout"`
	OnPageError string   `yaml:"onPageError"`
	Fields      []string `yaml:"fields"`
	Missing     []string `yaml:"missing"`
}

func DefaultConfig() *Config {
	return &Config{
		Endpoint:    DefaultEndpoint,
		People:      DefaultPeople,
		Timeout:     client.DefaultTimeout.String(),
		OnPageError: string(client.Skip),
		Fields:      []string{"name", "height", "mass", "hair_color"},
		Missing:     []string{"-", "None", "unknown"},
	}
}

// LoadConfiguration reads a yaml configuration. Settings that are left out keep their defaults.
func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	err = yaml.Unmarshal(buf, cfg)

	return cfg, err
}

func (cfg *Config) PeopleURL() string {
	if strings.HasPrefix(cfg.People, "http://") || strings.HasPrefix(cfg.People, "https://") {
		return cfg.People
	}

	return strings.TrimRight(cfg.Endpoint, "/") + "/" + strings.TrimLeft(cfg.People, "/")
}

func (cfg *Config) RequestTimeout() (time.Duration, error) {
	if cfg.Timeout == "" {
		return client.DefaultTimeout, nil
	}
	return time.ParseDuration(cfg.Timeout)
}

func (cfg *Config) PageErrorPolicy() (client.PageErrorPolicy, error) {
	return client.ParsePageErrorPolicy(cfg.OnPageError)
}
