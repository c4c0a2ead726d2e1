// ABOUTME: Tests for player application orchestration
// ABOUTME: Tests construction and play/pause/stop transitions
package app

import (
	"testing"

	"github.com/CommonsLab/openplayer-go/pkg/player"
)

func TestNew(t *testing.T) {
	p := New(Config{Name: "test-player", NoTUI: true})

	if p == nil {
		t.Fatal("expected player to be created")
	}
	if !p.state.IsStopped() {
		t.Errorf("expected initial phase stopped, got %v", p.state.Get())
	}
}

func TestPlayRequiresReadySession(t *testing.T) {
	p := New(Config{NoTUI: true})

	// No session: Play must not advance the phase
	p.Play()
	if !p.state.IsStopped() {
		t.Errorf("Play advanced phase without a session: %v", p.state.Get())
	}
}

func TestTogglePause(t *testing.T) {
	p := New(Config{NoTUI: true})
	p.state.Set(player.ReadyToPlay)

	p.TogglePause()
	if !p.state.IsPlaying() {
		t.Fatalf("expected Playing after toggle, got %v", p.state.Get())
	}

	p.TogglePause()
	if p.state.Get() != player.ReadyToPlay {
		t.Fatalf("expected ReadyToPlay after second toggle, got %v", p.state.Get())
	}
}

func TestPauseOnlyWhilePlaying(t *testing.T) {
	p := New(Config{NoTUI: true})
	p.state.Set(player.ReadingHeader)

	p.Pause()
	if p.state.Get() != player.ReadingHeader {
		t.Errorf("Pause changed phase while reading header: %v", p.state.Get())
	}
}

func TestPickDriver(t *testing.T) {
	p := New(Config{NoTUI: true})

	d, err := p.pickDriver("music.ogg")
	if err != nil {
		t.Fatalf("pickDriver: %v", err)
	}
	if d.Codec() != "vorbis" {
		t.Errorf("expected vorbis driver, got %s", d.Codec())
	}

	// Codec override wins over the extension
	p.config.Codec = "opus"
	d, err = p.pickDriver("music.ogg")
	if err != nil {
		t.Fatalf("pickDriver with override: %v", err)
	}
	if d.Codec() != "opus" {
		t.Errorf("expected opus driver, got %s", d.Codec())
	}
}
