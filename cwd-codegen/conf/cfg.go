package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/elitexpro/dao-dao-contracts/cwd-codegen/codegen"
	"github.com/elitexpro/dao-dao-contracts/logger"
)

const EnvPrefix = "CWD_CODEGEN"

type Conf struct {
	LogLevel    string   `mapstructure:"log_level"`
	Root        string   `mapstructure:"root"`
	OutDir      string   `mapstructure:"out_dir"`
	SchemaDir   string   `mapstructure:"schema_dir"`
	Command     string   `mapstructure:"command"`
	Allow       []string `mapstructure:"allow"`
	MaxParallel int      `mapstructure:"max_parallel"`
	MetricsFile string   `mapstructure:"metrics_file"`
}

var defaults = map[string]any{
	"log_level":    logger.Normal,
	"root":         ".",
	"out_dir":      "types",
	"schema_dir":   codegen.DefaultSchemaDir,
	"command":      codegen.DefaultCommand,
	"allow":        []string{},
	"max_parallel": 0,
	"metrics_file": "",
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first, and CWD_CODEGEN_CONFIG may point at a
// toml file; environment variables win over both.
func Load() (*Conf, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	_ = v.BindEnv("log_level", EnvPrefix+"_LOG_LEVEL", "VERBOSITY")

	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Conf
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config invalid: %w", err)
	}
	c.Allow = splitAllow(c.Allow)
	return &c, c.validate()
}

func (c *Conf) validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q is neither silent, normal, verbose, debug nor a logrus level", c.LogLevel)
	}
	if c.Root == "" {
		return errors.New("root is empty")
	}
	if strings.TrimSpace(c.Command) == "" {
		return codegen.ErrEmptyCommand
	}
	return nil
}

// splitAllow accepts both a list and a comma separated string.
func splitAllow(in []string) []string {
	var out []string
	for _, item := range in {
		for _, name := range strings.Split(item, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
