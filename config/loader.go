package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/kbukum/gocmd/logger"
)

// Resolver finds config and env files for a service.
type Resolver struct {
	Fs afero.Fs
	// HomeConfigDir is the per-user config root, normally os.UserConfigDir().
	HomeConfigDir string
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths if provided, otherwise the first
// existing candidate from the standard locations.
func (r *Resolver) ResolveFiles(serviceName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.first(r.configCandidates(serviceName))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.first([]string{".env." + serviceName, ".env"})
	}
	return resolved
}

func (r *Resolver) configCandidates(serviceName string) []string {
	var paths []string
	for _, ext := range []string{"yml", "yaml", "json", "toml"} {
		paths = append(paths, fmt.Sprintf("./%s.%s", serviceName, ext))
	}
	paths = append(paths, "./config.yml", "./config/config.yml")
	if r.HomeConfigDir != "" {
		paths = append(paths, filepath.Join(r.HomeConfigDir, serviceName, "config.yml"))
	}
	return paths
}

func (r *Resolver) first(paths []string) string {
	for _, p := range paths {
		if exists(r.Fs, p) {
			return p
		}
	}
	return ""
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	Fs         afero.Fs
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	EnvPrefix  string // Defaults to the upper-cased service name
}

// LoaderOption is a functional option for LoadConfig.
type LoaderOption func(*LoaderConfig)

// WithFs sets the filesystem config and env files are read from.
func WithFs(fs afero.Fs) LoaderOption {
	return func(lc *LoaderConfig) { lc.Fs = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix overrides the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// LoadConfig loads configuration for a service into cfg, which must be a
// pointer to a struct with mapstructure tags. A missing config file is not an
// error; an unreadable or malformed one is.
func LoadConfig(serviceName string, cfg interface{}, opts ...LoaderOption) error {
	lc := LoaderConfig{EnvPrefix: envPrefix(serviceName)}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.Fs == nil {
		lc.Fs = afero.NewOsFs()
	}

	home, _ := os.UserConfigDir()
	resolver := &Resolver{Fs: lc.Fs, HomeConfigDir: home}
	files := resolver.ResolveFiles(serviceName, lc)

	return load(cfg, files, lc)
}

func load(cfg interface{}, files ResolvedFiles, lc LoaderConfig) error {
	log := logger.Get("config")
	v := viper.New()
	v.SetFs(lc.Fs)

	if files.ConfigFile != "" {
		if !exists(lc.Fs, files.ConfigFile) {
			log.Debug("config file not found", logger.Fields("path", files.ConfigFile))
		} else {
			v.SetConfigFile(files.ConfigFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config file %s: %w", files.ConfigFile, err)
			}
			log.Debug("loaded config file", logger.Fields("path", files.ConfigFile))
		}
	}

	if files.EnvFile != "" && exists(lc.Fs, files.EnvFile) {
		if err := loadEnvFile(lc.Fs, files.EnvFile); err != nil {
			log.Warn("failed to load .env file", logger.Fields("path", files.EnvFile, "error", err.Error()))
		}
	}

	bindEnvVars(v, lc.EnvPrefix)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshaling config: %w", err)
	}
	return nil
}

// loadEnvFile sets variables from path that are not already in the
// environment, matching godotenv.Load.
func loadEnvFile(fs afero.Fs, path string) error {
	f, err := fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	vars, err := godotenv.Parse(f)
	if err != nil {
		return err
	}
	for k, val := range vars {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, val); err != nil {
			return err
		}
	}
	return nil
}

func exists(fs afero.Fs, path string) bool {
	ok, err := afero.Exists(fs, path)
	return err == nil && ok
}

func envPrefix(serviceName string) string {
	return strings.ToUpper(strings.ReplaceAll(serviceName, "-", "_"))
}
