package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// ModePolling и ModeWebhook — режимы получения обновлений Telegram.
	ModePolling = "polling"
	ModeWebhook = "webhook"

	// StoragePostgres и StorageMemory — типы хранилища состояния игроков.
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config содержит параметры конфигурации приложения.
// Значения читаются из YAML-файла, затем перекрываются переменными окружения
// (включая файл .env, если он существует).
type Config struct {
	Server struct {
		Host string `yaml:"host" envconfig:"SERVER_HOST"`
		Port string `yaml:"port" envconfig:"SERVER_PORT"`
	} `yaml:"server"`
	TelegramBot struct {
		Token        string        `yaml:"token" envconfig:"TELEGRAM_BOT_TOKEN"`
		Mode         string        `yaml:"mode" envconfig:"TELEGRAM_MODE"`
		PollInterval time.Duration `yaml:"poll_interval" envconfig:"TELEGRAM_POLL_INTERVAL"`
		WebhookURL   string        `yaml:"webhook_url" envconfig:"WEBHOOK_URL"`
		ListenAddr   string        `yaml:"listen_addr" envconfig:"WEBHOOK_LISTEN_ADDR"`
		AdminIDs     []int64       `yaml:"admin_ids" envconfig:"ADMIN_IDS"`
	} `yaml:"telegram_bot"`
	Database struct {
		Host     string `yaml:"host" envconfig:"DB_HOST"`
		Port     string `yaml:"port" envconfig:"DB_PORT"`
		User     string `yaml:"user" envconfig:"DB_USER"`
		Password string `yaml:"password" envconfig:"DB_PASSWORD"`
		Name     string `yaml:"dbname" envconfig:"DB_NAME"`
	} `yaml:"database"`
	Storage struct {
		Type string `yaml:"type" envconfig:"STORAGE_TYPE"`
	} `yaml:"storage"`
	QuestionsFile string `yaml:"questions_file" envconfig:"QUESTIONS_FILE"`
	Debug         bool   `yaml:"debug" envconfig:"DEBUG"`
}

// LoadConfig загружает конфигурацию из YAML-файла и переменных окружения.
func LoadConfig(filename string) (*Config, error) {
	// Загружаем переменные окружения из файла .env (если файл существует).
	_ = godotenv.Load()

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			fmt.Println("f.Close() failed ", err)
		}
	}(f)

	config := &Config{}
	if err := yaml.NewDecoder(f).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := normalize(config); err != nil {
		return nil, err
	}
	return config, nil
}

// normalize проверяет обязательные поля и подставляет значения по умолчанию.
func normalize(cfg *Config) error {
	if cfg.TelegramBot.Token == "" {
		return fmt.Errorf("telegram_bot.token is required")
	}

	mode := strings.ToLower(strings.TrimSpace(cfg.TelegramBot.Mode))
	if mode == "" {
		mode = ModePolling
	}
	switch mode {
	case ModePolling:
		if cfg.TelegramBot.PollInterval <= 0 {
			cfg.TelegramBot.PollInterval = 10 * time.Second
		}
	case ModeWebhook:
		if cfg.TelegramBot.WebhookURL == "" {
			return fmt.Errorf("telegram_bot.webhook_url is required in webhook mode")
		}
		if cfg.TelegramBot.ListenAddr == "" {
			return fmt.Errorf("telegram_bot.listen_addr is required in webhook mode")
		}
	default:
		return fmt.Errorf("invalid telegram_bot.mode %q; allowed: polling, webhook", cfg.TelegramBot.Mode)
	}
	cfg.TelegramBot.Mode = mode

	storageType := strings.ToLower(strings.TrimSpace(cfg.Storage.Type))
	if storageType == "" {
		storageType = StoragePostgres
	}
	if storageType != StoragePostgres && storageType != StorageMemory {
		return fmt.Errorf("invalid storage.type %q; allowed: postgres, memory", cfg.Storage.Type)
	}
	cfg.Storage.Type = storageType

	if cfg.QuestionsFile == "" {
		cfg.QuestionsFile = "data/questions.json"
	}
	return nil
}
