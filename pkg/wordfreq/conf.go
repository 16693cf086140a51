package wordfreq

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scottcagno/htable/pkg/htable"
	"github.com/scottcagno/htable/pkg/logger"
)

const (
	// table defaults
	DefaultCapacity  = 113
	DefaultMode      = htable.LinearProbing
	DefaultSnapshots = 10

	// output defaults
	DefaultOutput = OutputList
)

var ErrBadConfig = errors.New("wordfreq: invalid configuration")

// OutputMode selects the report written once the table has been built
type OutputMode uint8

const (
	OutputList  OutputMode = iota // frequency and word for every key
	OutputStats                   // statistics snapshots
	OutputTable                   // entire table, then the frequency list
)

func (o OutputMode) String() string {
	switch o {
	case OutputList:
		return "list"
	case OutputStats:
		return "stats"
	case OutputTable:
		return "table"
	}
	return fmt.Sprintf("OutputMode(%d)", uint8(o))
}

func (o OutputMode) MarshalText() ([]byte, error) {
	if o > OutputTable {
		return nil, fmt.Errorf("%w: unknown output %d", ErrBadConfig, uint8(o))
	}
	return []byte(o.String()), nil
}

func (o *OutputMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "list":
		*o = OutputList
	case "stats":
		*o = OutputStats
	case "table", "entire":
		*o = OutputTable
	default:
		return fmt.Errorf("%w: unknown output %q", ErrBadConfig, text)
	}
	return nil
}

// default config
var defaultConfig = Config{
	Capacity:  DefaultCapacity,
	Mode:      DefaultMode,
	Snapshots: DefaultSnapshots,
	Output:    DefaultOutput,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Config holds configuration settings for a word frequency run
type Config struct {
	Capacity  int            `yaml:"capacity"`  // number of slots in the table
	Mode      htable.Mode    `yaml:"mode"`      // linear or double
	Snapshots int            `yaml:"snapshots"` // statistics snapshots to print
	Output    OutputMode     `yaml:"output"`    // list, stats or table
	Verbose   bool           `yaml:"verbose"`   // debug logging
	LogLevel  logger.Level   `yaml:"log-level"` // minimum level logged, unless verbose
	Logger    *logger.Logger `yaml:"-"`
}

func (conf *Config) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Capacity: %d\n", conf.Capacity)
	fmt.Fprintf(&sb, "Mode: %s\n", conf.Mode)
	fmt.Fprintf(&sb, "Snapshots: %d\n", conf.Snapshots)
	fmt.Fprintf(&sb, "Output: %s\n", conf.Output)
	fmt.Fprintf(&sb, "Verbose: %t", conf.Verbose)
	return sb.String()
}

// CheckConfig makes sure the configuration options are correct and returns
// a copy with any missing options filled in with their defaults. A nil conf
// yields the default configuration. The provided conf is never modified.
func CheckConfig(conf *Config) (*Config, error) {
	if conf == nil {
		conf = DefaultConfig()
	} else {
		c := *conf
		conf = &c
	}
	if conf.Capacity == 0 {
		conf.Capacity = DefaultCapacity
	}
	if conf.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrBadConfig, conf.Capacity)
	}
	if conf.Snapshots == 0 {
		conf.Snapshots = DefaultSnapshots
	}
	if conf.Snapshots < 0 {
		return nil, fmt.Errorf("%w: snapshots %d", ErrBadConfig, conf.Snapshots)
	}
	if conf.Output > OutputTable {
		return nil, fmt.Errorf("%w: unknown output %d", ErrBadConfig, uint8(conf.Output))
	}
	if conf.Mode != htable.LinearProbing && conf.Mode != htable.DoubleHashing {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, htable.ErrBadMode)
	}
	if conf.Mode == htable.DoubleHashing && conf.Capacity <= 1 {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, htable.ErrDegenerateStep)
	}
	if conf.Logger == nil {
		conf.Logger = logger.DefaultLogger
	}
	return conf, nil
}

// LoadConfig reads a YAML configuration file. Options missing from the
// file keep their default values. Unknown options are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration document
func ParseConfig(data []byte) (*Config, error) {
	conf := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return CheckConfig(conf)
}
