package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/lana/internal/system"
)

// Scene - конфигурация сцены. Из файла читается только scene_description,
// остальные ключи игнорируются.
type Scene struct {
	SceneDescription string `json:"scene_description" yaml:"scene_description"`
}

// LoadOutcome классифицирует результат загрузки конфигурации сцены.
type LoadOutcome int

const (
	Loaded LoadOutcome = iota
	NotFound
	ParseError
	ReadError
)

func (o LoadOutcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case NotFound:
		return "not_found"
	case ParseError:
		return "parse_error"
	case ReadError:
		return "read_error"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Recoverable сообщает, можно ли продолжать работу с пустой сценой.
// Все неуспешные исходы загрузки восстанавливаемые.
func (o LoadOutcome) Recoverable() bool {
	return o != Loaded
}

// LoadScene читает конфигурацию сцены из JSON или YAML файла.
// Если path - директория, берется самый свежий файл сцены в ней.
// При любой ошибке возвращается пустая Scene и исход, описывающий причину;
// ошибка несет подробности для лога и не должна прерывать запуск.
func LoadScene(path string) (Scene, LoadOutcome, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Scene{}, NotFound, fmt.Errorf("configuration file not found at %s", path)
		}
		return Scene{}, ReadError, fmt.Errorf("cannot access configuration %s: %w", path, err)
	}

	if info.IsDir() {
		latest, err := system.FindLatestScene(path)
		if err != nil {
			return Scene{}, NotFound, err
		}
		path = latest
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Scene{}, NotFound, fmt.Errorf("configuration file not found at %s", path)
		}
		return Scene{}, ReadError, fmt.Errorf("cannot read configuration %s: %w", path, err)
	}

	scene, err := parseScene(path, data)
	if err != nil {
		return Scene{}, ParseError, err
	}
	return scene, Loaded, nil
}

func parseScene(path string, data []byte) (Scene, error) {
	var scene Scene
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &scene); err != nil {
			return Scene{}, fmt.Errorf("invalid YAML in configuration file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &scene); err != nil {
			return Scene{}, fmt.Errorf("invalid JSON in configuration file: %w", err)
		}
	}
	return scene, nil
}
