package pcm

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
)

// playPollInterval is how often playback completion is checked.
const playPollInterval = 50 * time.Millisecond

// Play streams encoded PCM from r to the default audio device, mono at the
// given rate, until r reaches EOF or ctx is cancelled. Cancellation is an
// orderly stop and returns nil.
func Play(ctx context.Context, r io.Reader, sampleRate int, format Format) error {
	otoFormat := oto.FormatUnsignedInt8
	if format == FormatS16LE {
		otoFormat = oto.FormatSignedInt16LE
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       otoFormat,
	})
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	player := otoCtx.NewPlayer(r)
	defer player.Close()
	player.Play()

	ticker := time.NewTicker(playPollInterval)
	defer ticker.Stop()
	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
	return nil
}
