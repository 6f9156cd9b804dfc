package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/Peritract/meld/internal/engine"
	"github.com/Peritract/meld/pkg/logger"
	"github.com/Peritract/meld/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Переменные окружения, которые перекрывают файл
const (
	EnvConfig = "MELD_CONFIG"
	EnvPort   = "MELD_PORT"
	EnvSeed   = "MELD_SEED"
	EnvDB     = "MELD_DB"
)

const DefaultPath = "meld.yaml"

// Config - все настройки процесса
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Game    engine.Config `yaml:"game"`
	World   WorldConfig   `yaml:"world"`
	Storage StorageConfig `yaml:"storage"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	// Debug включает /debug/* эндпоинты
	Debug bool `yaml:"debug"`
}

type WorldConfig struct {
	// Area - 0 для арены, иначе глубина подземелья
	Area uint16 `yaml:"area"`
}

type StorageConfig struct {
	Database    string `yaml:"database"`
	ReplayDir   string `yaml:"replay_dir"`
	SnapshotDir string `yaml:"snapshot_dir"`
}

// Default - конфиг без файла и окружения
func Default() Config {
	return Config{
		Server: ServerConfig{Port: "8080", Debug: true},
		Game:   engine.NewConfig(),
		World:  WorldConfig{Area: 1},
		Storage: StorageConfig{
			Database:    "meld.db",
			ReplayDir:   "replays",
			SnapshotDir: "snapshots",
		},
	}
}

// Load собирает конфиг: умолчания, затем .env, YAML-файл и переменные окружения.
// Пустой path означает MELD_CONFIG или meld.yaml; отсутствие файла по умолчанию не ошибка.
func Load(path string) (Config, error) {
	log := logger.Log.WithFields(logrus.Fields{"component": "config"})

	// 1. .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("Failed to load .env")
	}

	cfg := Default()

	// 2. Файл
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := Parse(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		log.WithField("path", path).Info("Config loaded")
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		log.WithField("path", path).Debug("No config file, using defaults")
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	// 3. Окружение
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse накладывает YAML поверх cfg
func Parse(data []byte, cfg *Config) error {
	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvPort); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		// Не число - сид из строки, как для именованных миров
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			seed = utils.StringToSeed(v)
		}
		cfg.Game.Seed = seed
	}
	if v := os.Getenv(EnvDB); v != "" {
		cfg.Storage.Database = v
	}
}

func (c Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port must be set")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server.port %q is not a number", c.Server.Port)
	}
	return c.Game.Validate()
}
