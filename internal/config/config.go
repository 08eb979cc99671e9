package config

import (
	"flag"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	// Порт на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующей короткой ссылки
	BaseURL *url.URL `env:"BASE_URL"`
	// DSN для postgres. Если не задан, используется sqlite
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь до файла sqlite
	SQLitePath string `env:"SQLITE_PATH"`
	// Ключ подписи JWT токенов
	JWTSecret string `env:"JWT_SECRET"`
	// Срок действия токена доступа
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	// Срок действия токена обновления
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"`
	Logger          *logrus.Logger
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config
	logger := initLogger()

	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	loadsFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	conf.Logger = logger

	if conf.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return conf, nil
}

// loadsFlags парсит флаги командной строки.
func loadsFlags(flagsConfig *Config) {
	flag.StringVar(&flagsConfig.ServerAddress, "a", "localhost:8080", "Адрес сервера")
	flag.StringVar(&flagsConfig.DatabaseDSN, "d", "", "DSN для подключения к postgres")
	flag.StringVar(&flagsConfig.SQLitePath, "s", "bookmarks.db", "Путь до файла sqlite")

	bDesc := "Базовый адрес результирующей короткой ссылки (по умолчанию Scheme://Host запущенного сервера)"
	flag.Func("b", bDesc, func(rawURL string) error {
		parsedURL, err := url.ParseRequestURI(rawURL)
		if err != nil {
			return errors.Wrap(err, "failed to parse base url")
		}

		// создаем новый инстанс, отсекая тем самым Path и Query если они заданы в базовом урле.
		flagsConfig.BaseURL = &url.URL{
			Scheme: parsedURL.Scheme,
			Host:   parsedURL.Host,
		}
		return nil
	})

	flag.Parse()
}

// mergeConfig сливает структуры для env и флагов. Значения из окружения в приоритете.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	baseURL := envConfig.BaseURL
	if baseURL == nil {
		baseURL = flagsConfig.BaseURL
	}
	return &Config{
		ServerAddress:   defaultIfBlank(envConfig.ServerAddress, flagsConfig.ServerAddress),
		BaseURL:         baseURL,
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		SQLitePath:      defaultIfBlank(envConfig.SQLitePath, flagsConfig.SQLitePath),
		JWTSecret:       envConfig.JWTSecret,
		AccessTokenTTL:  envConfig.AccessTokenTTL,
		RefreshTokenTTL: envConfig.RefreshTokenTTL,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
