// Package config loads application configuration from a config file, a
// .env file and prefixed environment variables.
//
// Files are read through an afero.Fs so callers and tests can substitute an
// in-memory filesystem. Values resolve in this order, last wins: config file,
// .env file, process environment.
//
//	var cfg AppConfig
//	err := config.LoadConfig("gocmd", &cfg, config.WithConfigFile(path))
//
// Environment variables are matched by the service prefix, so GOCMD_LOGGING_LEVEL
// sets logging.level and GOCMD_PROCESS_SHELL_PATH sets process.shell_path.
package config
