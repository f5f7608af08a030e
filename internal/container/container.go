package container

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"ball-tracker/config"
	telegram "ball-tracker/internal/api"
	app "ball-tracker/internal/application"
	"ball-tracker/internal/domain/port"
	"ball-tracker/internal/infrastructure/media"
	"ball-tracker/internal/infrastructure/storage"
	"ball-tracker/internal/infrastructure/vision"
)

type Container struct {
	Backend  vision.Backend
	Tracking *app.TrackingService
	Pipeline *app.PipelineService
	Job      app.Job

	// Memory заполнено при RESULT_STORE=memory
	Memory *storage.MemoryResultStore

	closers []func() error
}

// New собирает зависимости по конфигурации
func New(cfg *config.Config) (*Container, error) {
	c := &Container{
		Backend: vision.Backend(cfg.VisionBackend).Resolve(),
		Job:     app.Job{Input: cfg.InputVideo, Outputs: cfg.QuadrantVideos},
	}

	detector, opener, splitter, err := c.buildVision(cfg)
	if err != nil {
		return nil, err
	}

	store, err := c.buildStore(cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	preview, err := c.buildPreview(cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	notifier, err := c.buildNotifier(cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	classifier := app.NewColorClassifier(cfg.Tuning.Colors)
	c.Tracking = app.NewTrackingService(detector, classifier, store, preview, cfg.MinDuration)
	c.Pipeline = app.NewPipelineService(splitter, opener, c.Tracking, notifier, cfg.Parallel)

	log.Info().
		Str("backend", string(c.Backend)).
		Bool("parallel", cfg.Parallel).
		Int("min_duration", cfg.MinDuration).
		Msg("container ready")

	return c, nil
}

func (c *Container) buildVision(cfg *config.Config) (port.CircleDetector, port.SourceOpener, port.VideoSplitter, error) {
	switch c.Backend {
	case vision.BackendGoCV:
		detector, err := vision.NewHoughDetector(cfg.Tuning.Detector)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("hough detector: %w", err)
		}
		opener, err := vision.NewCaptureOpener()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("capture: %w", err)
		}
		splitter, err := vision.NewSplitter("XVID")
		if err != nil {
			return nil, nil, nil, fmt.Errorf("splitter: %w", err)
		}
		return detector, opener, splitter, nil

	case vision.BackendNative:
		return vision.NewNativeDetector(cfg.Tuning.Detector),
			media.NewFFmpegOpener(nil),
			media.NewFFmpegSplitter(nil),
			nil
	}

	return nil, nil, nil, fmt.Errorf("unknown vision backend %q", c.Backend)
}

func (c *Container) buildStore(cfg *config.Config) (port.ResultStore, error) {
	if cfg.ResultStore == "memory" {
		c.Memory = storage.NewMemoryResultStore()
		return c.Memory, nil
	}

	var stores storage.MultiStore
	if cfg.ResultCSV != "" {
		stores = append(stores, storage.NewCSVResultStore(cfg.ResultCSV))
	}
	if cfg.ResultSQLite != "" {
		db, err := storage.NewSQLiteResultStore(cfg.ResultSQLite)
		if err != nil {
			return nil, fmt.Errorf("sqlite store: %w", err)
		}
		c.closers = append(c.closers, db.Close)
		stores = append(stores, db)
		log.Info().Str("run_id", db.RunID()).Str("path", cfg.ResultSQLite).Msg("sqlite store opened")
	}

	switch len(stores) {
	case 0:
		return nil, errors.New("no result store configured: set RESULT_CSV, RESULT_SQLITE or RESULT_STORE=memory")
	case 1:
		return stores[0], nil
	}
	return stores, nil
}

func (c *Container) buildPreview(cfg *config.Config) (port.Preview, error) {
	if !cfg.ShowPreview && cfg.SnapshotDir == "" {
		return nil, nil
	}
	if cfg.Parallel && cfg.ShowPreview {
		log.Warn().Msg("preview window is disabled in parallel mode")
		cfg.ShowPreview = false
	}

	if cfg.ShowPreview {
		if c.Backend != vision.BackendGoCV {
			log.Warn().Msg("preview window requires gocv backend, falling back to snapshots")
		} else {
			w, err := vision.NewWindow("Ball tracker", cfg.Tuning.DisplayScale)
			if err != nil {
				return nil, fmt.Errorf("preview window: %w", err)
			}
			c.closers = append(c.closers, w.Close)
			return w, nil
		}
	}

	if cfg.SnapshotDir == "" {
		return nil, nil
	}
	snapshots, err := media.NewSnapshotWriter(cfg.SnapshotDir, cfg.SnapshotEvery, cfg.Tuning.DisplayScale)
	if err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (c *Container) buildNotifier(cfg *config.Config) (port.ReportNotifier, error) {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return nil, nil
	}

	var attachments []string
	if cfg.ResultStore != "memory" && cfg.ResultCSV != "" {
		attachments = append(attachments, cfg.ResultCSV)
	}
	n, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID, attachments...)
	if err != nil {
		return nil, fmt.Errorf("telegram notifier: %w", err)
	}
	return n, nil
}

// Close освобождает окно и базу
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
