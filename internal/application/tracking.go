package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"ball-tracker/internal/domain/entity"
	"ball-tracker/internal/domain/port"
)

// TrackingService обрабатывает видео одного квадранта: детекция, цвет, интервалы присутствия.
type TrackingService struct {
	detector    port.CircleDetector
	classifier  *ColorClassifier
	store       port.ResultStore
	preview     port.Preview
	minDuration int
}

// NewTrackingService создаёт сервис. preview может быть nil.
func NewTrackingService(
	detector port.CircleDetector,
	classifier *ColorClassifier,
	store port.ResultStore,
	preview port.Preview,
	minDuration int,
) *TrackingService {
	return &TrackingService{
		detector:    detector,
		classifier:  classifier,
		store:       store,
		preview:     preview,
		minDuration: minDuration,
	}
}

// ProcessQuadrant читает кадры до конца видео и сохраняет интервалы длиннее minDuration.
func (s *TrackingService) ProcessQuadrant(ctx context.Context, q entity.Quadrant, source port.FrameSource) (*entity.QuadrantReport, error) {
	if s.detector == nil {
		return nil, errors.New("detector is not configured")
	}
	if s.store == nil {
		return nil, errors.New("result store is not configured")
	}

	fps := source.FPS()
	if fps <= 0 {
		return nil, fmt.Errorf("quadrant %d: %w (%v)", q, entity.ErrInvalidFrameRate, fps)
	}

	report := &entity.QuadrantReport{
		Quadrant: q,
		FPS:      fps,
		Colors:   make(map[entity.ColorLabel]int),
	}
	tracker := entity.NewPresenceTracker(fps)
	logger := log.With().Int("quadrant", int(q)).Logger()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		frame, ok, err := source.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("quadrant %d: read frame: %w", q, err)
		}
		if !ok {
			break
		}
		report.Frames++

		circles, err := s.detector.Detect(ctx, frame)
		if err != nil {
			return nil, fmt.Errorf("quadrant %d: detect frame %d: %w", q, frame.Index, err)
		}

		detections := make([]entity.Detection, 0, len(circles))
		for _, c := range circles {
			det := s.classifier.Classify(frame.Image, c)
			detections = append(detections, det)
			report.Centers = append(report.Centers, c.Center)
			report.Colors[det.Label]++
		}

		if in, closed := tracker.Observe(frame.Index, len(circles) > 0); closed {
			logger.Debug().Int("entry", in.Entry).Int("exit", in.Exit).Msg("ball left")
		} else if len(detections) > 0 && report.Entries != tracker.Entries() {
			report.Entries = tracker.Entries()
			logger.Debug().
				Int("frame", frame.Index).
				Str("color", string(detections[0].Label)).
				Str("mean", detections[0].Mean.Hex()).
				Msg("ball entered")
		}

		if s.preview != nil && s.preview.Show(ctx, q, frame, detections) {
			logger.Info().Int("frame", frame.Index).Msg("stopped from preview")
			report.Stopped = true
			break
		}
	}

	if in, ok := tracker.Flush(); ok {
		logger.Debug().Int("entry", in.Entry).Int("exit", in.Exit).Msg("ball still present at end of video")
	}

	report.Entries = tracker.Entries()
	report.Intervals = tracker.Intervals()
	report.Records = entity.FilterIntervals(q, report.Intervals, s.minDuration)

	if err := s.store.Append(ctx, report.Records); err != nil {
		return nil, fmt.Errorf("quadrant %d: store results: %w", q, err)
	}

	logger.Info().
		Int("frames", report.Frames).
		Int("intervals", len(report.Intervals)).
		Int("records", len(report.Records)).
		Msg("quadrant processed")

	return report, nil
}
