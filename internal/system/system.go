package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var sceneExtensions = []string{".json", ".yaml", ".yml"}

// EnsureDir создает директорию вместе с родительскими. Повторный вызов
// для существующей директории не является ошибкой.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// IsSceneFile проверяет расширение файла конфигурации сцены.
func IsSceneFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range sceneExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FindLatestScene возвращает самый свежий по времени изменения
// файл сцены (.json, .yaml, .yml) в директории dir.
func FindLatestScene(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !IsSceneFile(f.Name()) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if latestFile == "" || info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no scene files found in %s", dir)
	}

	return latestFile, nil
}
