package app

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mzki/fakedpi"
	"github.com/mzki/fakedpi/util/log"
)

const (
	// default configuration file.
	ConfigFile = "fakedpi.conf"

	LogFileStdOut  = "stdout"      // specify log outputs to stdout
	LogFileStdErr  = "stderr"      // specify log outputs to stderr
	DefaultLogFile = "fakedpi.log" // default output log file.

	LogLevelInfo  = "info"  // logging only information level.
	LogLevelDebug = "debug" // logging all levels, debug and info.

	DefaultWidth  = 800 // initial window width in logical units
	DefaultHeight = 600 // initial window height in logical units
)

// Configure for the demo application.
// To build this, use NewConfig instead of struct constructor, Config{}.
type Config struct {
	LogFile  string `toml:"logfile"`
	LogLevel string `toml:"loglevel"`

	Width  float64 `toml:"width"`  // initial window width, logical.
	Height float64 `toml:"height"` // initial window height, logical.

	// simulated DPI factor applied to the running window.
	// editing this while the demo runs takes effect immediately.
	Dpi float64 `toml:"dpi"`
}

// return default demo config.
func NewConfig() *Config {
	return &Config{
		LogFile:  DefaultLogFile,
		LogLevel: LogLevelInfo,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Dpi:      fakedpi.DefaultDpi,
	}
}

// ErrDefaultConfigGenerated implies that the specified config file is not found,
// and instead of that default config is generated and used.
var ErrDefaultConfigGenerated error = errors.New("default config generated")

// if config file exists load it and return.
// if not exists return default config and write it.
// missing keys keep their default values.
func LoadConfigOrDefault(file string) (*Config, error) {
	conf := NewConfig()
	if _, err := os.Stat(file); err != nil {
		if err := writeConfig(file, conf); err != nil {
			return nil, err
		}
		return conf, ErrDefaultConfigGenerated
	}

	meta, err := toml.DecodeFile(file, conf)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Infoln("config:", "undecoded keys exist,", undecoded)
	}
	return conf, nil
}

func writeConfig(file string, conf *Config) error {
	fp, err := os.Create(file)
	if err != nil {
		return err
	}
	defer fp.Close()
	return toml.NewEncoder(fp).Encode(conf)
}

// SetupLogConfig directs the package logger according to conf.
// The returned function must be called once, after logging is done.
func SetupLogConfig(conf *Config) (func(), error) {
	switch level := conf.LogLevel; level {
	case LogLevelInfo:
		log.SetLevel(log.InfoLevel)
	case LogLevelDebug:
		log.SetLevel(log.DebugLevel)
	default:
		log.Infof("unknown log level(%s). use 'info' level insteadly.", level)
		log.SetLevel(log.InfoLevel)
	}

	switch logfile := conf.LogFile; logfile {
	case LogFileStdOut, "":
		log.SetOutput(os.Stdout)
		return func() {}, nil
	case LogFileStdErr:
		log.SetOutput(os.Stderr)
		return func() {}, nil
	default:
		fp, err := os.Create(logfile)
		if err != nil {
			return nil, err
		}
		log.SetOutput(fp)
		return func() { fp.Close() }, nil
	}
}
