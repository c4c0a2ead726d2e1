// ABOUTME: Opus decoder driver
// ABOUTME: Decodes length-prefixed opus packets pulled through the feed
package decode

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/CommonsLab/openplayer-go/pkg/audio"
	"gopkg.in/hraban/opus.v2"
)

// maxOpusFrame is the largest opus frame size (120ms at 48kHz)
const maxOpusFrame = 5760

// Opus drives a feed from a stream of length-prefixed opus packets: each
// packet is preceded by its size as a big-endian uint16, the framing used
// by the cast tool in this repo.
type Opus struct {
	sampleRate int
	channels   int
}

// NewOpus creates an Opus driver decoding at 48kHz stereo, the rate opus
// always operates at internally.
func NewOpus() Driver {
	return &Opus{sampleRate: 48000, channels: 2}
}

// Codec names the encoded format
func (d *Opus) Codec() string { return "opus" }

// Run decodes the bound source until it is exhausted or the feed stops.
func (d *Opus) Run(feed Feed) error {
	defer feed.OnSessionEnd()

	dec, err := opus.NewDecoder(d.sampleRate, d.channels)
	if err != nil {
		return fmt.Errorf("failed to create opus decoder: %w", err)
	}

	// Opus packets carry no comment header; the format is fixed by the
	// codec itself
	info := audio.StreamInfo{
		SampleRate: d.sampleRate,
		Channels:   d.channels,
		Vendor:     "libopus",
	}
	if err := feed.OnHeaderComplete(info); err != nil {
		return err
	}

	r := &feedReader{feed: feed}
	pcm := make([]int16, maxOpusFrame*d.channels)
	for {
		feed.OnIterationStart()

		var frameLen uint16
		if err := binary.Read(r, binary.BigEndian, &frameLen); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil
			}
			return fmt.Errorf("failed to read opus frame header: %w", err)
		}

		packet := make([]byte, frameLen)
		if _, err := io.ReadFull(r, packet); err != nil {
			// A truncated trailing packet ends the stream
			return nil
		}

		n, err := dec.Decode(packet, pcm)
		if err != nil {
			return fmt.Errorf("opus decode failed: %w", err)
		}
		feed.PushOutput(pcm[:n*d.channels])
	}
}
