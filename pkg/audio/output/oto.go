// ABOUTME: Oto-based audio sink implementation
// ABOUTME: Streams PCM through a pipe with software volume control
package output

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log"

	"github.com/ebitengine/oto/v3"
)

// Oto sink implementation using the oto library
type Oto struct {
	ctx        context.Context
	cancel     context.CancelFunc
	otoCtx     *oto.Context
	player     *oto.Player
	pipeReader *io.PipeReader
	pipeWriter *io.PipeWriter
	sampleRate int
	channels   int
	volume     int
	muted      bool
	ready      bool
}

// NewOto creates a sink backed by the system audio device.
func NewOto(sampleRate, channels, bufferSize int) (Sink, error) {
	ctx, cancel := context.WithCancel(context.Background())

	o := &Oto{
		ctx:    ctx,
		cancel: cancel,
		volume: 100,
		muted:  false,
	}

	if err := o.open(sampleRate, channels, bufferSize); err != nil {
		cancel()
		return nil, err
	}

	return o, nil
}

// open initializes the oto context and streaming pipe
func (o *Oto) open(sampleRate, channels, bufferSize int) error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.sampleRate = sampleRate
	o.channels = channels

	// Pipe for continuous streaming; the persistent player drains it
	o.pipeReader, o.pipeWriter = io.Pipe()
	o.player = o.otoCtx.NewPlayer(o.pipeReader)
	if bufferSize > 0 {
		o.player.SetBufferSize(bufferSize)
	}

	log.Printf("Audio sink initialized: %dHz, %d channels, %d byte buffer",
		sampleRate, channels, bufferSize)

	return nil
}

// Start begins playback
func (o *Oto) Start() error {
	if o.player == nil {
		return fmt.Errorf("sink not initialized")
	}
	o.player.Play()
	o.ready = true
	return nil
}

// Write outputs interleaved int16 samples (blocks until written)
func (o *Oto) Write(samples []int16) (int, error) {
	if !o.ready {
		return 0, fmt.Errorf("sink not started")
	}

	volumed := applyVolume(samples, o.volume, o.muted)

	// Convert int16 samples to bytes for the pipe
	buf := make([]byte, len(volumed)*2)
	for i, sample := range volumed {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(sample))
	}

	if _, err := o.pipeWriter.Write(buf); err != nil {
		return 0, fmt.Errorf("pipe write failed: %w", err)
	}

	return len(samples), nil
}

// Stop halts playback without releasing the device
func (o *Oto) Stop() error {
	if o.player != nil {
		o.player.Pause()
	}
	o.ready = false
	return nil
}

// Close releases sink resources
func (o *Oto) Close() error {
	if o.pipeWriter != nil {
		o.pipeWriter.Close()
		o.pipeWriter = nil
	}
	if o.player != nil {
		o.player.Close()
		o.player = nil
	}
	if o.pipeReader != nil {
		o.pipeReader.Close()
		o.pipeReader = nil
	}
	if o.otoCtx != nil {
		o.otoCtx.Suspend()
		o.ready = false
	}
	o.cancel()
	return nil
}

// SetVolume sets the volume (0-100)
func (o *Oto) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	o.volume = volume
	log.Printf("Volume set to %d", volume)
}

// SetMuted sets mute state
func (o *Oto) SetMuted(muted bool) {
	o.muted = muted
	log.Printf("Muted: %v", muted)
}

// GetVolume returns current volume
func (o *Oto) GetVolume() int {
	return o.volume
}

// IsMuted returns mute state
func (o *Oto) IsMuted() bool {
	return o.muted
}

// applyVolume applies volume and mute to samples
func applyVolume(samples []int16, volume int, muted bool) []int16 {
	multiplier := getVolumeMultiplier(volume, muted)

	result := make([]int16, len(samples))
	for i, sample := range samples {
		result[i] = int16(float64(sample) * multiplier)
	}

	return result
}

// getVolumeMultiplier calculates volume multiplier
func getVolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	return float64(volume) / 100.0
}
