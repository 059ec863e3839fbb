// Package config предоставляет управление конфигурацией приложения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Paths содержит пути к входному и выходному файлам.
// Относительные пути отсчитываются от каталога программы.
type Paths struct {
	Input     string `yaml:"input"`
	InputXLSX string `yaml:"input_xlsx"` // используется, если Input не найден
	Output    string `yaml:"output"`
}

// Locale содержит настройки отображения дат.
type Locale struct {
	Timezone string `yaml:"timezone"`
}

// Document содержит оформление выходного документа.
type Document struct {
	LinkColor     string `yaml:"link_color"`
	LinkUnderline *bool  `yaml:"link_underline"`
	FontName      string `yaml:"font_name"`
	FontSizePt    int    `yaml:"font_size_pt"`
}

// Output содержит дополнительные способы вывода.
type Output struct {
	Preview bool `yaml:"preview"` // печатать строки отчета в консоль
}

// Logging содержит конфигурацию логирования
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Config содержит конфигурацию приложения
type Config struct {
	Paths    Paths    `yaml:"paths"`
	Locale   Locale   `yaml:"locale"`
	Document Document `yaml:"document"`
	Output   Output   `yaml:"output"`
	Logging  Logging  `yaml:"logging"`
}

// Имена файлов настроек рядом с программой.
const (
	FileName    = "config.yml"
	EnvFileName = ".env"
)

// Переменные окружения, переопределяющие файл настроек.
const (
	EnvInput    = "REPORT_INPUT"
	EnvOutput   = "REPORT_OUTPUT"
	EnvTimezone = "REPORT_TIMEZONE"
	EnvLogLevel = "REPORT_LOG_LEVEL"
)

var hexColorRegex = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// LoadConfig загружает конфигурацию из каталога программы: сначала значения по умолчанию,
// затем config.yml, затем переменные окружения (включая .env). Ни один из файлов не обязателен.
func LoadConfig(baseDir string) (*Config, error) {
	if err := godotenv.Load(filepath.Join(baseDir, EnvFileName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("не вдалося прочитати %s: %w", EnvFileName, err)
	}

	cfg := defaultConfig()
	if err := loadFromYAML(filepath.Join(baseDir, FileName), cfg); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	return cfg, nil
}

func defaultConfig() *Config {
	underline := DefaultLinkUnderline
	return &Config{
		Paths: Paths{
			Input:     DefaultInputFile,
			InputXLSX: DefaultInputXLSXFile,
			Output:    DefaultOutputFile,
		},
		Locale: Locale{Timezone: DefaultTimezone},
		Document: Document{
			LinkColor:     DefaultLinkColor,
			LinkUnderline: &underline,
			FontName:      DefaultFontName,
			FontSizePt:    DefaultFontSizePt,
		},
		Logging: Logging{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// loadFromYAML накладывает значения из YAML-файла на cfg. Отсутствие файла не ошибка.
func loadFromYAML(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("не вдалося прочитати файл конфігурації %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("не вдалося розібрати YAML конфігурацію: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvInput); v != "" {
		cfg.Paths.Input = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Paths.Output = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		cfg.Locale.Timezone = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
}

// Location возвращает часовой пояс для отображения дат.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Locale.Timezone)
	if err != nil {
		return nil, fmt.Errorf("невідомий часовий пояс %q: %w", c.Locale.Timezone, err)
	}
	return loc, nil
}

// Underline сообщает, подчеркивать ли ссылки.
func (c *Config) Underline() bool {
	if c.Document.LinkUnderline == nil {
		return DefaultLinkUnderline
	}
	return *c.Document.LinkUnderline
}

// ResolvePath делает относительный путь абсолютным относительно baseDir.
func ResolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// Validate проверяет, являются ли значения конфигурации допустимыми
func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input не може бути порожнім")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output не може бути порожнім")
	}

	if c.Locale.Timezone == "" {
		return fmt.Errorf("locale.timezone не може бути порожнім")
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	if !hexColorRegex.MatchString(c.Document.LinkColor) {
		return fmt.Errorf("document.link_color має бути шістьма шістнадцятковими цифрами, наприклад 0000FF")
	}
	if c.Document.FontSizePt < 0 {
		return fmt.Errorf("document.font_size_pt не може бути від'ємним")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// all good
	default:
		return fmt.Errorf("logging.level має бути одним із: debug, info, warn, error")
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format має бути text або json")
	}

	return nil
}
