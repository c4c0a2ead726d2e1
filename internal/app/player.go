// ABOUTME: Main player application orchestration
// ABOUTME: Wires source, decoder driver, decode feed, sink, and UI together
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/CommonsLab/openplayer-go/internal/discovery"
	"github.com/CommonsLab/openplayer-go/internal/ui"
	"github.com/CommonsLab/openplayer-go/pkg/audio/output"
	"github.com/CommonsLab/openplayer-go/pkg/decode"
	"github.com/CommonsLab/openplayer-go/pkg/player"
	"github.com/CommonsLab/openplayer-go/pkg/source"
	tea "github.com/charmbracelet/bubbletea"
)

// Config holds player configuration
type Config struct {
	// Location is a file path or ws:// URL; empty means discover a
	// stream endpoint via mDNS
	Location string

	// Codec overrides driver selection ("vorbis", "mp3", "opus")
	Codec string

	// Name is the player name advertised on the network
	Name string

	// NoTUI disables the terminal UI
	NoTUI bool

	// Port is the mDNS advertisement port
	Port int
}

// Player represents the main player application
type Player struct {
	config  Config
	codec   string
	state   *player.State
	events  *player.Events
	feed    *player.Feed
	control *ui.Control
	tuiProg *tea.Program
	ctx     context.Context
	cancel  context.CancelFunc
}

// New creates a new player
func New(config Config) *Player {
	ctx, cancel := context.WithCancel(context.Background())

	state := player.NewState()
	events := player.NewEvents(64)

	return &Player{
		config:  config,
		state:   state,
		events:  events,
		feed:    player.NewFeed(state, events, output.NewOto),
		control: ui.NewControl(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start runs one playback session to completion
func (p *Player) Start() error {
	location := p.config.Location
	if location == "" {
		endpoint, err := p.discover()
		if err != nil {
			return err
		}
		location = endpoint.URL()
	}

	driver, err := p.pickDriver(location)
	if err != nil {
		return err
	}
	p.codec = driver.Codec()

	src, err := source.Open(location)
	if err != nil {
		return err
	}

	if err := p.feed.BindSource(src); err != nil {
		return err
	}

	if !p.config.NoTUI {
		tuiProg, err := ui.Run(p.control)
		if err != nil {
			return fmt.Errorf("failed to start TUI: %w", err)
		}
		p.tuiProg = tuiProg
		go p.tuiProg.Run()
	}

	go p.handleEvents()
	go p.handleControl()

	p.feed.OnStartReadingHeader()

	// The driver loop owns its goroutine; it ends the session itself
	done := make(chan error, 1)
	go func() { done <- driver.Run(p.feed) }()

	select {
	case err := <-done:
		p.cancel()
		if p.tuiProg != nil {
			p.tuiProg.Quit()
		}
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
		log.Printf("Session %s finished: %dms played", p.feed.SessionID(), p.feed.WrittenMillis())
		return nil
	case <-p.ctx.Done():
		p.feed.OnSessionEnd()
		<-done
		if p.tuiProg != nil {
			p.tuiProg.Quit()
		}
		return nil
	}
}

// discover waits for an mDNS stream endpoint
func (p *Player) discover() (*discovery.Endpoint, error) {
	mgr := discovery.NewManager(discovery.Config{
		PlayerName: p.config.Name,
		Port:       p.config.Port,
	})
	defer mgr.Stop()

	mgr.Advertise()
	mgr.Browse()

	log.Printf("Browsing for stream endpoints...")

	select {
	case endpoint := <-mgr.Endpoints():
		return endpoint, nil
	case <-time.After(30 * time.Second):
		return nil, fmt.Errorf("no stream endpoint found")
	case <-p.ctx.Done():
		return nil, p.ctx.Err()
	}
}

// pickDriver selects a decoder driver for the location
func (p *Player) pickDriver(location string) (decode.Driver, error) {
	if p.config.Codec != "" {
		return decode.ForCodec(p.config.Codec)
	}
	return decode.ForPath(location)
}

// handleEvents forwards feed notifications to the log and TUI
func (p *Player) handleEvents() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case ev := <-p.events.C():
			p.applyEvent(ev)
		}
	}
}

// applyEvent reacts to one playback notification
func (p *Player) applyEvent(ev player.Event) {
	switch ev.Type {
	case player.EventReadingHeader:
		log.Printf("Session %s: reading header", ev.Session)
		p.updateTUI(ui.StatusMsg{Phase: "reading header", Session: ev.Session})

	case player.EventReadyToPlay:
		info, _ := p.feed.StreamInfo()
		log.Printf("Session %s: ready to play (%s)", ev.Session, info)
		p.updateTUI(ui.StatusMsg{
			Phase:      "playing",
			Codec:      p.codec,
			SampleRate: info.SampleRate,
			Channels:   info.Channels,
			Vendor:     info.Vendor,
			Session:    ev.Session,
		})
		// Start playback as soon as the stream is ready
		p.Play()

	case player.EventPlayUpdate:
		p.updateTUI(ui.StatusMsg{Elapsed: ev.Seconds})

	case player.EventError:
		log.Printf("Session %s: absorbed failure: %v", ev.Session, ev.Err)
		p.updateTUI(ui.StatusMsg{Err: ev.Err.Error()})
	}
}

// handleControl applies TUI playback commands
func (p *Player) handleControl() {
	for {
		select {
		case <-p.ctx.Done():
			return
		case <-p.control.Toggle:
			p.TogglePause()
		case <-p.control.Stop:
			p.Stop()
		}
	}
}

// updateTUI sends a status message if the TUI is running
func (p *Player) updateTUI(msg ui.StatusMsg) {
	if p.tuiProg != nil {
		p.tuiProg.Send(msg)
	}
}

// Play resumes (or starts) playback if a session is ready.
func (p *Player) Play() {
	if p.state.Get() == player.ReadyToPlay {
		p.state.Set(player.Playing)
		p.updateTUI(ui.StatusMsg{Phase: "playing"})
	}
}

// Pause gates playback; the decode thread blocks on the next callback.
func (p *Player) Pause() {
	if p.state.IsPlaying() {
		p.state.Set(player.ReadyToPlay)
		p.updateTUI(ui.StatusMsg{Phase: "paused"})
	}
}

// TogglePause flips between playing and paused.
func (p *Player) TogglePause() {
	if p.state.IsPlaying() {
		p.Pause()
	} else {
		p.Play()
	}
}

// Stop ends the session and releases its resources.
func (p *Player) Stop() {
	p.feed.OnSessionEnd()
	p.cancel()
}
