package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Config описывает параметры демонстрационного сценария.
type Config struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Scenario struct {
		StartPayload string `yaml:"start_payload"`
		FirstTask    string `yaml:"first_task"`
		SecondTask   string `yaml:"second_task"`
	} `yaml:"scenario"`
}

// Default возвращает эталонный сценарий.
func Default() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Scenario.StartPayload = "Di hola!"
	cfg.Scenario.FirstTask = "Envia un email"
	cfg.Scenario.SecondTask = "Guarda un reporte"
	return cfg
}

// Load читает конфиг из файла YAML, поверх значений по умолчанию.
// Пустой путь означает значения по умолчанию без чтения файла.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- путь задается оператором.
	if err != nil {
		return cfg, err
	}
	if len(data) == 0 {
		return cfg, errors.New("config file is empty")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
