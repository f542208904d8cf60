package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV"`
	ShortCode  ShortCode  `yaml:"short_code" envPrefix:"SHORT_CODE_"`
	Registry   Registry   `yaml:"registry" envPrefix:"REGISTRY_"`
	Storage    Storage    `yaml:"storage" envPrefix:"STORAGE_"`
	HTTPServer HTTPServer `yaml:"http_server" envPrefix:"HTTP_SERVER_"`
	Postgres   Postgres   `yaml:"postgres" envPrefix:"POSTGRES_"`
	Log        Log        `yaml:"log" envPrefix:"LOG_"`
}

type ShortCode struct {
	Length  int    `yaml:"length" env:"LENGTH"`
	Charset string `yaml:"charset" env:"CHARSET"`
}

var defaultShortCode = ShortCode{
	Length:  7,
	Charset: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
}

type Registry struct {
	Timeout     time.Duration `yaml:"timeout" env:"TIMEOUT"`
	MaxAttempts int           `yaml:"max_attempts" env:"MAX_ATTEMPTS"`
}

var defaultRegistry = Registry{
	Timeout:     5 * time.Second,
	MaxAttempts: 5,
}

type Storage struct {
	Driver string `yaml:"driver" env:"DRIVER"`
}

var defaultStorage = Storage{
	Driver: StoragePostgres,
}

type HTTPServer struct {
	Port            int           `yaml:"port" env:"PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" env:"MAX_HEADER_BYTES"`
	CertFile        string        `yaml:"cert_file" env:"CERT_FILE"`
	KeyFile         string        `yaml:"key_file" env:"KEY_FILE"`
}

var defaultHTTPServer = HTTPServer{
	Port:            8080,
	ReadTimeout:     5 * time.Second,
	WriteTimeout:    10 * time.Second,
	IdleTimeout:     time.Minute,
	ShutdownTimeout: 10 * time.Second,
	MaxHeaderBytes:  1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Postgres struct {
	User            string        `yaml:"user" env:"USER"`
	Password        string        `yaml:"password" env:"PASSWORD"`
	Host            string        `yaml:"host" env:"HOST"`
	Port            int           `yaml:"port" env:"PORT"`
	DB              string        `yaml:"db" env:"DB"`
	SSLMode         string        `yaml:"sslmode" env:"SSLMODE"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"CONNECT_TIMEOUT"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env:"CONN_MAX_IDLE_TIME"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"CONN_MAX_LIFETIME"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"MAX_OPEN_CONNS"`
	MigrationsPath  string        `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

var defaultPostgres = Postgres{
	Host:            "localhost",
	Port:            5432,
	SSLMode:         "disable",
	ConnectTimeout:  10 * time.Second,
	ConnMaxIdleTime: 5 * time.Minute,
	ConnMaxLifetime: 30 * time.Minute,
	MaxIdleConns:    5,
	MaxOpenConns:    25,
	MigrationsPath:  "file://migrations",
}

func (p *Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

type Log struct {
	Level       string        `yaml:"level" env:"LEVEL"`
	JSON        bool          `yaml:"json" env:"JSON"`
	Concise     bool          `yaml:"concise" env:"CONCISE"`
	DedupWindow time.Duration `yaml:"dedup_window" env:"DEDUP_WINDOW"`
	DedupSize   int           `yaml:"dedup_size" env:"DEDUP_SIZE"`
}

var defaultLog = Log{
	Level:       "info",
	DedupWindow: time.Minute,
	DedupSize:   1000,
}

// Load reads the YAML file at path on top of the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	setDefaults(&cfg)

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse environment: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvDev, EnvStage, EnvProd:
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.ShortCode.Length <= 0 {
		return fmt.Errorf("short code length must be positive, got %d", c.ShortCode.Length)
	}
	if c.ShortCode.Charset == "" {
		return fmt.Errorf("short code charset must not be empty")
	}

	return nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.ShortCode = defaultShortCode
	cfg.Registry = defaultRegistry
	cfg.Storage = defaultStorage
	cfg.HTTPServer = defaultHTTPServer
	cfg.Postgres = defaultPostgres
	cfg.Log = defaultLog
}
