package media

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"ball-tracker/internal/domain/port"
)

// ProbeFunc возвращает JSON ffprobe для файла
type ProbeFunc func(path string) (string, error)

// DefaultProbe вызывает ffprobe через ffmpeg-go
func DefaultProbe(path string) (string, error) {
	return ffmpeg.Probe(path)
}

// videoProbe нас интересуют только видеопотоки
type videoProbe struct {
	Streams []struct {
		CodecType    string `json:"codec_type"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		NbFrames     string `json:"nb_frames"`
		AvgFrameRate string `json:"avg_frame_rate"`
		RFrameRate   string `json:"r_frame_rate"`
	} `json:"streams"`
}

// parseProbe достаёт размеры, fps и число кадров первого видеопотока
func parseProbe(data string) (port.VideoInfo, error) {
	var probe videoProbe
	if err := json.Unmarshal([]byte(data), &probe); err != nil {
		return port.VideoInfo{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	for _, s := range probe.Streams {
		if s.CodecType != "video" {
			continue
		}
		info := port.VideoInfo{Width: s.Width, Height: s.Height}

		fps, err := parseRate(s.AvgFrameRate)
		if err != nil || fps <= 0 {
			fps, err = parseRate(s.RFrameRate)
		}
		if err != nil {
			return port.VideoInfo{}, err
		}
		info.FPS = fps

		if n, err := strconv.Atoi(s.NbFrames); err == nil {
			info.Frames = n
		}
		return info, nil
	}

	return port.VideoInfo{}, errors.New("no video stream found")
}

// parseRate разбирает частоту вида "30000/1001" или "25"
func parseRate(rate string) (float64, error) {
	if rate == "" || rate == "0/0" {
		return 0, fmt.Errorf("unknown frame rate %q", rate)
	}

	num, den, found := strings.Cut(rate, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("frame rate %q: %w", rate, err)
	}
	if !found {
		return n, nil
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, fmt.Errorf("frame rate %q: %w", rate, err)
	}
	if d == 0 {
		return 0, fmt.Errorf("frame rate %q: zero denominator", rate)
	}
	return n / d, nil
}
