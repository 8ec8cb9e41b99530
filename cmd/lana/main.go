package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ivlev/lana/internal/config"
	"github.com/ivlev/lana/internal/director"
	"github.com/ivlev/lana/internal/engine"
)

// version задается при сборке: -ldflags "-X main.version=..."
var version = "dev"

const examples = `
Examples:
  lana --config scenes/kazakh_scene.json
  lana --prompt "A beautiful sunset scene" --output ./my_video
  lana --config scenes/kazakh_scene.json --output ./kazakh_video
`

func main() {
	// .env необязателен
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	fs := flag.NewFlagSet("lana", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "LANA - Generate visual motion videos from text descriptions")
		fmt.Fprintln(stderr, "\nUsage: lana (--config PATH | --prompt TEXT) [--output DIR]")
		fs.PrintDefaults()
		fmt.Fprint(stderr, examples)
	}

	configPtr := fs.String("config", "", "Путь к JSON/YAML файлу сцены или папке со сценами (берется самый свежий)")
	promptPtr := fs.String("prompt", "", "Описание сцены текстом")
	outputPtr := fs.String("output", config.DefaultOutputDir, "Папка для результатов")
	versionPtr := fs.Bool("version", false, "Показать версию и выйти")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *versionPtr {
		fmt.Fprintf(stdout, "lana %s\n", version)
		return 0
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return 2
	}

	cfg := &config.Config{
		ConfigPath:   *configPtr,
		Prompt:       *promptPtr,
		OutputDir:    *outputPtr,
		BuildVersion: version,
	}
	cfg.FromEnv()

	if !cfg.HasInput() {
		fmt.Fprintln(stderr, "Error: either --config or --prompt must be provided")
		fs.Usage()
		return 2
	}

	scene, ok := resolveScene(cfg, logger)
	if !ok {
		fmt.Fprintln(stderr, "Error: No 'scene_description' found in config file")
		return 1
	}

	project := engine.NewProject(cfg, director.NewDirector(), stdout)
	if _, err := project.Run(scene, cfg.OutputDir); err != nil {
		fmt.Fprintf(stderr, "\nError: %v\n", err)
		return 1
	}

	return 0
}

// resolveScene выбирает описание сцены: конфигурация имеет приоритет над --prompt.
// Ошибки загрузки конфигурации только логируются, дальше работаем с пустой сценой.
func resolveScene(cfg *config.Config, logger *log.Logger) (string, bool) {
	if cfg.ConfigPath == "" {
		return cfg.Prompt, cfg.Prompt != ""
	}

	scene, outcome, err := config.LoadScene(cfg.ConfigPath)
	switch outcome {
	case config.NotFound:
		logger.Printf("[!] Warning: %v", err)
	case config.ParseError, config.ReadError:
		logger.Printf("[-] Error: %v", err)
	}

	return scene.SceneDescription, scene.SceneDescription != ""
}
