// ABOUTME: Input source helpers
// ABOUTME: Opens local files as decode feed sources
package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Open returns a byte source for the given location: a ws:// or wss:// URL
// dials a stream endpoint, anything else opens a local file. The feed
// closes the source once at session end.
func Open(location string) (io.ReadCloser, error) {
	if strings.HasPrefix(location, "ws://") || strings.HasPrefix(location, "wss://") {
		return Dial(location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	return f, nil
}
