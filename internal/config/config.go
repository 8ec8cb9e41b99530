package config

import "os"

const (
	DefaultOutputDir = "output"
	APIKeyEnv        = "OPENAI_API_KEY"
)

// Config содержит параметры одного запуска.
type Config struct {
	ConfigPath string
	Prompt     string
	OutputDir  string

	// APIKey зарезервирован под клиент внешнего сервиса генерации видео.
	APIKey       string
	BuildVersion string
}

// FromEnv заполняет поля, которые берутся из окружения.
func (c *Config) FromEnv() {
	c.APIKey = os.Getenv(APIKeyEnv)
}

// HasInput сообщает, передан ли хотя бы один источник описания сцены.
func (c *Config) HasInput() bool {
	return c.ConfigPath != "" || c.Prompt != ""
}
