package speech

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/uuid"
)

// WAV encoding constants
const (
	DefaultSampleRate = 16000

	WAVBitDepth    = 16
	WAVChannels    = 1
	WAVFormatPCM   = 1
	TempFilePrefix = "RecordTemp_"
	TempFileExt    = ".wav"
)

// Clip is a mono 16-bit PCM recording
type Clip struct {
	Samples    []int16
	SampleRate int
}

// Duration returns the length of the clip
func (c *Clip) Duration() time.Duration {
	if c == nil || c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(c.Samples)) * time.Second / time.Duration(c.SampleRate)
}

// Empty reports whether the clip holds no samples
func (c *Clip) Empty() bool {
	return c == nil || len(c.Samples) == 0
}

// WriteWAV encodes the clip as a WAV file at path
func (c *Clip) WriteWAV(path string) error {
	if c.Empty() {
		return fmt.Errorf("clip is empty")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create wav file: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, c.SampleRate, WAVBitDepth, WAVChannels, WAVFormatPCM)

	data := make([]int, len(c.Samples))
	for i, s := range c.Samples {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: WAVChannels, SampleRate: c.SampleRate},
		Data:           data,
		SourceBitDepth: WAVBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav: %w", err)
	}
	return nil
}

// WriteTempWAV writes the clip to a uniquely named file in dir (os.TempDir
// when empty). The caller removes the file.
func (c *Clip) WriteTempWAV(dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, TempFilePrefix+uuid.NewString()+TempFileExt)
	if err := c.WriteWAV(path); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
