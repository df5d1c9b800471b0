package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

func TestOpenSoundtrackRejectsUnknownExtension(t *testing.T) {
	_, err := openSoundtrack("ambience.ogg")
	if !errors.Is(err, errUnsupported) {
		t.Fatalf("err = %v, want %v", err, errUnsupported)
	}
}

func TestOpenSoundtrackMissingFile(t *testing.T) {
	_, err := openSoundtrack(filepath.Join(t.TempDir(), "missing.wav"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not exist", err)
	}
}

func TestOpenSoundtrackWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hum.WAV")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: 22050, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Silence(2205), format); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	track, err := openSoundtrack(path)
	if err != nil {
		t.Fatal(err)
	}
	if track.format.SampleRate != format.SampleRate {
		t.Errorf("sample rate = %v, want %v", track.format.SampleRate, format.SampleRate)
	}
	if got := track.level(); got != 0 {
		t.Errorf("level of an unplayed track = %v, want 0", got)
	}
	if err := track.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
