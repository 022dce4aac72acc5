package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

type Environment string

const (
	Production  Environment = "prod"
	Development Environment = "dev"
)

func (e *Environment) SetValue(s string) error {
	*e = Environment(s)
	if *e != Production && *e != Development {
		return configNotLoadedErr(`only "prod" and "dev" environments are allowed`)
	}
	return nil
}

type StorageDriver string

const (
	DriverMemory   StorageDriver = "memory"
	DriverPostgres StorageDriver = "postgres"
)

func (d *StorageDriver) SetValue(s string) error {
	*d = StorageDriver(s)
	if *d != DriverMemory && *d != DriverPostgres {
		return configNotLoadedErr(`only "memory" and "postgres" storage drivers are allowed`)
	}
	return nil
}

type Config struct {
	App struct {
		Env Environment `yaml:"env" env:"ENV" env-required:""`
	} `yaml:"app" env-prefix:"APP_" env-required:""`

	Server struct {
		Host string `yaml:"host" env:"HOST" env-default:"localhost"`
		Port int    `yaml:"port" env:"PORT" env-default:"8080"`
	} `yaml:"server" env-prefix:"SERVER_"`

	Storage struct {
		Driver StorageDriver `yaml:"driver" env:"DRIVER" env-default:"memory"`
		DSN    string        `yaml:"dsn" env:"DSN"`
	} `yaml:"storage" env-prefix:"STORAGE_"`

	JWT struct {
		TokenTTL time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
		// The default secret is a development placeholder and must be
		// overridden in production deployments.
		Secret string `yaml:"secret" env:"SECRET" env-default:"your-secret-key"`
	} `yaml:"jwt" env-prefix:"JWT_"`
}

func Load(filePath string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(filePath, cfg); err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}

	if cfg.Storage.Driver == DriverPostgres && cfg.Storage.DSN == "" {
		return nil, configNotLoadedErr("postgres storage requires a dsn")
	}

	return cfg, nil
}

func MustLoad(filePath string) *Config {
	cfg, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	return cfg
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}
