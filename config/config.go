package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvFile    = ".env"

	StorageSQLite = "sqlite3"
	StorageMySQL  = "mysql"
	StorageCSV    = "csv"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"APP_NAME"`
	Version string `yaml:"version" envconfig:"APP_VERSION"`
	Env     string `yaml:"env" envconfig:"APP_ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"SERVER_PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"SERVER_READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"SERVER_IDLE_TIMEOUT"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
}

type StorageConfig struct {
	Driver          string        `yaml:"driver" envconfig:"STORAGE_DRIVER"`
	MaxOpenConns    int           `yaml:"max_open_conns" envconfig:"STORAGE_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" envconfig:"STORAGE_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" envconfig:"STORAGE_CONN_MAX_LIFETIME"`
	SQLite          SQLiteConfig  `yaml:"sqlite"`
	MySQL           MySQLConfig   `yaml:"mysql"`
	CSV             CSVConfig     `yaml:"csv"`
}

// SQLiteConfig uses DSN verbatim when set, otherwise builds a read-only DSN from Path.
type SQLiteConfig struct {
	Path string `yaml:"path" envconfig:"STORAGE_SQLITE_PATH"`
	DSN  string `yaml:"dsn" envconfig:"STORAGE_SQLITE_DSN"`
}

type MySQLConfig struct {
	Host     string `yaml:"host" envconfig:"STORAGE_MYSQL_HOST"`
	Port     string `yaml:"port" envconfig:"STORAGE_MYSQL_PORT"`
	User     string `yaml:"user" envconfig:"STORAGE_MYSQL_USER"`
	Password string `yaml:"password,omitempty" envconfig:"STORAGE_MYSQL_PASSWORD"`
	DBName   string `yaml:"dbname" envconfig:"STORAGE_MYSQL_DBNAME"`
}

type CSVConfig struct {
	StationsPath     string `yaml:"stations_path" envconfig:"STORAGE_CSV_STATIONS_PATH"`
	MeasurementsPath string `yaml:"measurements_path" envconfig:"STORAGE_CSV_MEASUREMENTS_PATH"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn,omitempty" envconfig:"SENTRY_DSN"`
	Debug bool   `yaml:"debug" envconfig:"SENTRY_DEBUG"`
}

type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, the YAML file and the environment, in that order.
type FileConfigProvider struct {
	path    string
	envFile string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{
		path:    path,
		envFile: DefaultEnvFile,
	}
}

// WithEnvFile sets the dotenv file read before the environment is processed.
func (p *FileConfigProvider) WithEnvFile(path string) *FileConfigProvider {
	p.envFile = path
	return p
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if err := p.loadEnvFile(); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read YAML config %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", p.path, err)
	}

	return nil
}

// loadEnvFile never overrides variables already present in the process environment.
func (p *FileConfigProvider) loadEnvFile() error {
	if p.envFile == "" {
		return nil
	}
	if _, err := os.Stat(p.envFile); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(p.envFile); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", p.envFile, err)
	}
	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	if config.App.Name == "" {
		return errors.New("app.name is required")
	}
	if config.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if config.Server.ReadTimeout <= 0 || config.Server.WriteTimeout <= 0 || config.Server.IdleTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}

	switch config.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q is not supported", config.Log.Format)
	}

	switch config.Storage.Driver {
	case StorageSQLite:
		if config.Storage.SQLite.Path == "" && config.Storage.SQLite.DSN == "" {
			return errors.New("storage.sqlite.path or storage.sqlite.dsn is required")
		}
	case StorageMySQL:
		if config.Storage.MySQL.Host == "" || config.Storage.MySQL.DBName == "" {
			return errors.New("storage.mysql.host and storage.mysql.dbname are required")
		}
	case StorageCSV:
		if config.Storage.CSV.StationsPath == "" || config.Storage.CSV.MeasurementsPath == "" {
			return errors.New("storage.csv.stations_path and storage.csv.measurements_path are required")
		}
	default:
		return fmt.Errorf("storage.driver %q is not supported", config.Storage.Driver)
	}

	return nil
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "climate-api",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Storage: StorageConfig{
			Driver:       StorageSQLite,
			MaxOpenConns: 4,
			MaxIdleConns: 4,
			SQLite: SQLiteConfig{
				Path: "Resources/hawaii.sqlite",
			},
			MySQL: MySQLConfig{
				Host: "localhost",
				Port: "3306",
			},
			CSV: CSVConfig{
				StationsPath:     "Resources/hawaii_stations.csv",
				MeasurementsPath: "Resources/hawaii_measurements.csv",
			},
		},
	}
}
