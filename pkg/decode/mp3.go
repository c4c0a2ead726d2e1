// ABOUTME: MP3 decoder driver
// ABOUTME: Pulls an MPEG stream through the feed using hajimehoshi/go-mp3
package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/CommonsLab/openplayer-go/pkg/audio"
	"github.com/hajimehoshi/go-mp3"
)

// MP3 drives a feed from an MPEG audio stream.
type MP3 struct{}

// NewMP3 creates an MP3 driver.
func NewMP3() Driver {
	return &MP3{}
}

// Codec names the encoded format
func (d *MP3) Codec() string { return "mp3" }

// Run decodes the bound source until it is exhausted or the feed stops.
func (d *MP3) Run(feed Feed) error {
	defer feed.OnSessionEnd()

	dec, err := mp3.NewDecoder(&feedReader{feed: feed})
	if err != nil {
		return fmt.Errorf("failed to read mp3 header: %w", err)
	}

	// go-mp3 always emits 16-bit little-endian stereo
	info := audio.StreamInfo{
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}
	if err := feed.OnHeaderComplete(info); err != nil {
		return err
	}

	buf := make([]byte, 8192)
	pcm := make([]int16, len(buf)/2)
	for {
		feed.OnIterationStart()

		n, err := dec.Read(buf)
		if n > 0 {
			samples := n / 2
			for i := 0; i < samples; i++ {
				pcm[i] = int16(binary.LittleEndian.Uint16(buf[i*2:]))
			}
			feed.PushOutput(pcm[:samples])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("mp3 decode failed: %w", err)
		}
	}
}
