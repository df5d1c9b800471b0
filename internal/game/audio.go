package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ambient-backdrop/internal/config"
)

var errUnsupported = errors.New("unsupported file type")

// soundtrack is a looping audio file whose loudness drives the glow pulse.
type soundtrack struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	tap      *visualTap
	ctrl     *beep.Ctrl
}

// openSoundtrack decodes path by extension. Nothing is played yet.
func openSoundtrack(path string) (*soundtrack, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, fmt.Errorf("%s: %w %q", path, errUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// streamer -> loop -> tap -> ctrl
	tap := newVisualTap(beep.Loop(-1, streamer), config.VisualRingSize)
	return &soundtrack{
		file:     f,
		streamer: streamer,
		format:   format,
		tap:      tap,
		ctrl:     &beep.Ctrl{Streamer: tap},
	}, nil
}

// play initialises the speaker for the track's sample rate and starts it.
func (s *soundtrack) play() error {
	bufferSize := s.format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(s.format.SampleRate, bufferSize); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(s.ctrl)
	return nil
}

// level is the current pulse input in [0,1].
func (s *soundtrack) level() float64 {
	speaker.Lock()
	paused := s.ctrl.Paused
	speaker.Unlock()
	if paused {
		return 0
	}
	return s.tap.level(pulseWindow)
}

func (s *soundtrack) Close() error {
	speaker.Lock()
	s.ctrl.Paused = true
	s.ctrl.Streamer = nil
	speaker.Unlock()
	speaker.Clear()
	err := s.streamer.Close()
	if cerr := s.file.Close(); err == nil && !errors.Is(cerr, os.ErrClosed) {
		err = cerr
	}
	return err
}

// pickSoundtrack asks for an audio file. A cancelled dialog returns "".
func pickSoundtrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose a soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return filename, err
}
