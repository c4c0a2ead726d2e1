// ABOUTME: Ogg Vorbis decoder driver
// ABOUTME: Pulls an ogg stream through the feed using jfreymuth/oggvorbis
package decode

import (
	"fmt"
	"io"

	"github.com/CommonsLab/openplayer-go/pkg/audio"
	"github.com/jfreymuth/oggvorbis"
)

// Vorbis drives a feed from an Ogg Vorbis stream.
type Vorbis struct{}

// NewVorbis creates a Vorbis driver.
func NewVorbis() Driver {
	return &Vorbis{}
}

// Codec names the encoded format
func (d *Vorbis) Codec() string { return "vorbis" }

// Run decodes the bound source until it is exhausted or the feed stops.
func (d *Vorbis) Run(feed Feed) error {
	defer feed.OnSessionEnd()

	// NewReader parses all three vorbis headers, pulling the bytes
	// through the feed while the phase is still reading-header
	dec, err := oggvorbis.NewReader(&feedReader{feed: feed})
	if err != nil {
		return fmt.Errorf("failed to read vorbis header: %w", err)
	}

	info := audio.StreamInfo{
		SampleRate: dec.SampleRate(),
		Channels:   dec.Channels(),
		Vendor:     dec.CommentHeader().Vendor,
	}
	if err := feed.OnHeaderComplete(info); err != nil {
		return err
	}

	frames := make([]float32, 4096)
	pcm := make([]int16, 4096)
	for {
		feed.OnIterationStart()

		n, err := dec.Read(frames)
		if n > 0 {
			for i := 0; i < n; i++ {
				pcm[i] = floatToInt16(frames[i])
			}
			feed.PushOutput(pcm[:n])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("vorbis decode failed: %w", err)
		}
	}
}
