package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"ball-tracker/internal/domain/entity"
)

type Config struct {
	InputVideo     string
	QuadrantVideos map[entity.Quadrant]string

	ResultCSV    string
	ResultSQLite string
	ResultStore  string

	VisionBackend string
	MinDuration   int
	Parallel      bool

	ShowPreview   bool
	SnapshotDir   string
	SnapshotEvery int

	Tuning   entity.Tuning
	LogLevel zerolog.Level

	TelegramToken  string
	TelegramChatID int64
}

var defaultQuadrantVideos = []string{"quadrant1.avi", "quadrant2.avi", "quadrant3.avi", "quadrant4.avi"}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		InputVideo:    envOr("INPUT_VIDEO", "crop.avi"),
		ResultCSV:     envOr("RESULT_CSV", "result.csv"),
		ResultSQLite:  os.Getenv("RESULT_SQLITE"),
		ResultStore:   os.Getenv("RESULT_STORE"),
		VisionBackend: envOr("VISION_BACKEND", "auto"),
		SnapshotDir:   os.Getenv("SNAPSHOT_DIR"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		Tuning:        entity.DefaultTuning(),
	}

	var err error
	if cfg.QuadrantVideos, err = parseQuadrantVideos(os.Getenv("QUADRANT_VIDEOS")); err != nil {
		return nil, err
	}
	if cfg.MinDuration, err = envInt("MIN_DURATION", entity.DefaultMinDuration); err != nil {
		return nil, err
	}
	if cfg.MinDuration < 0 {
		return nil, fmt.Errorf("MIN_DURATION must not be negative, got %d", cfg.MinDuration)
	}
	if cfg.SnapshotEvery, err = envInt("SNAPSHOT_EVERY", 30); err != nil {
		return nil, err
	}
	if cfg.Parallel, err = envBool("PARALLEL"); err != nil {
		return nil, err
	}
	if cfg.ShowPreview, err = envBool("SHOW_PREVIEW"); err != nil {
		return nil, err
	}

	switch cfg.VisionBackend {
	case "auto", "gocv", "native":
	default:
		return nil, fmt.Errorf("VISION_BACKEND: unknown backend %q", cfg.VisionBackend)
	}
	switch cfg.ResultStore {
	case "", "memory":
	default:
		return nil, fmt.Errorf("RESULT_STORE: unknown store %q", cfg.ResultStore)
	}

	if cfg.LogLevel, err = zerolog.ParseLevel(envOr("LOG_LEVEL", "info")); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		if cfg.TelegramChatID, err = strconv.ParseInt(chatID, 10, 64); err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID: %w", err)
		}
	}

	if path := os.Getenv("TUNING_FILE"); path != "" {
		if cfg.Tuning, err = LoadTuning(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// LoadTuning читает YAML поверх значений по умолчанию.
// Отсутствующие в файле поля остаются по умолчанию, таблица цветов заменяется целиком.
func LoadTuning(path string) (entity.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Tuning{}, fmt.Errorf("read tuning file: %w", err)
	}

	tuning := entity.DefaultTuning()
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return entity.Tuning{}, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	if err := tuning.Validate(); err != nil {
		return entity.Tuning{}, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return tuning, nil
}

func parseQuadrantVideos(raw string) (map[entity.Quadrant]string, error) {
	paths := defaultQuadrantVideos
	if raw != "" {
		paths = strings.Split(raw, ",")
	}
	if len(paths) != len(entity.Quadrants) {
		return nil, fmt.Errorf("QUADRANT_VIDEOS: expected %d paths, got %d", len(entity.Quadrants), len(paths))
	}

	videos := make(map[entity.Quadrant]string, len(paths))
	for i, q := range entity.Quadrants {
		p := strings.TrimSpace(paths[i])
		if p == "" {
			return nil, fmt.Errorf("QUADRANT_VIDEOS: empty path for quadrant %d", q)
		}
		videos[q] = p
	}
	return videos, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envBool(key string) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, errors.Unwrap(err))
	}
	return b, nil
}
