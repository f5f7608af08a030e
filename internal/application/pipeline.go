package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// Job описывает один прогон: исходное видео и файлы квадрантов.
type Job struct {
	Input   string                     // исходное видео, пусто если квадранты уже нарезаны
	Outputs map[entity.Quadrant]string // видео каждого квадранта
}

// PipelineService нарезает видео и обрабатывает квадранты.
type PipelineService struct {
	splitter port.VideoSplitter
	opener   port.SourceOpener
	tracking *TrackingService
	notifier port.ReportNotifier
	parallel bool
}

// NewPipelineService создаёт сервис. splitter и notifier могут быть nil.
func NewPipelineService(
	splitter port.VideoSplitter,
	opener port.SourceOpener,
	tracking *TrackingService,
	notifier port.ReportNotifier,
	parallel bool,
) *PipelineService {
	return &PipelineService{
		splitter: splitter,
		opener:   opener,
		tracking: tracking,
		notifier: notifier,
		parallel: parallel,
	}
}

// Run выполняет прогон. Квадранты обрабатываются по порядку 1..4,
// при parallel одновременно; хранилище должно само сериализовать Append.
func (s *PipelineService) Run(ctx context.Context, job Job) ([]*entity.QuadrantReport, error) {
	if s.opener == nil {
		return nil, errors.New("source opener is not configured")
	}

	if job.Input != "" {
		if s.splitter == nil {
			return nil, errors.New("video splitter is not configured")
		}
		info, err := s.splitter.Split(ctx, job.Input, job.Outputs)
		if err != nil {
			return nil, fmt.Errorf("split %s: %w", job.Input, err)
		}
		log.Info().
			Str("input", job.Input).
			Int("width", info.Width).
			Int("height", info.Height).
			Float64("fps", info.FPS).
			Msg("video split into quadrants")
	}

	quadrants := make([]entity.Quadrant, 0, len(entity.Quadrants))
	for _, q := range entity.Quadrants {
		if _, ok := job.Outputs[q]; ok {
			quadrants = append(quadrants, q)
		}
	}
	if len(quadrants) == 0 {
		return nil, errors.New("no quadrant videos to process")
	}

	reports := make([]*entity.QuadrantReport, len(quadrants))

	if s.parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, q := range quadrants {
			i, q := i, q
			g.Go(func() error {
				report, err := s.processOne(gctx, q, job.Outputs[q])
				if err != nil {
					return err
				}
				reports[i] = report
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, q := range quadrants {
			report, err := s.processOne(ctx, q, job.Outputs[q])
			if err != nil {
				return nil, err
			}
			reports[i] = report
		}
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(ctx, reports); err != nil {
			log.Error().Err(err).Msg("failed to send report")
		}
	}

	return reports, nil
}

func (s *PipelineService) processOne(ctx context.Context, q entity.Quadrant, path string) (*entity.QuadrantReport, error) {
	log.Info().Int("quadrant", int(q)).Str("path", path).Msg("processing quadrant")

	source, err := s.opener.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("quadrant %d: open %s: %w", q, path, err)
	}
	defer source.Close()

	return s.tracking.ProcessQuadrant(ctx, q, source)
}
