package solve

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/gatetree/scanner"
)

// DefaultConfigPath is where `gatetree init` writes its configuration.
const DefaultConfigPath = ".gatetree.yaml"

const (
	OutputText = "text"
	OutputJSON = "json"
)

// defaultMaxNodes bounds the allocation a single case header can request.
const defaultMaxNodes = 1 << 20

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the content of a .gatetree.yaml file.
type Config struct {
	Name       string   `yaml:"name"`
	Output     string   `yaml:"output"`
	NoColor    bool     `yaml:"no_color"`
	Progress   bool     `yaml:"progress"`
	MaxNodes   int      `yaml:"max_nodes"`
	Extensions []string `yaml:"extensions"`
}

func DefaultConfig() Config {
	return Config{
		Name:       "gatetree",
		Output:     OutputText,
		Progress:   true,
		MaxNodes:   defaultMaxNodes,
		Extensions: append([]string(nil), scanner.DefaultExtensions...),
	}
}

// LoadConfig reads the configuration at path on top of the defaults.
// An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("parsing %s: %w", path, err)
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidConfig, OutputText, OutputJSON, c.Output)
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("%w: max_nodes must not be negative", ErrInvalidConfig)
	}
	return nil
}

// WriteConfig stores config as YAML at path.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}

// Options returns the solving options the configuration implies.
func (c Config) Options() Options {
	return Options{MaxNodes: c.MaxNodes}
}
