// ABOUTME: Entry point for the OpenPlayer CLI
// ABOUTME: Parses flags and runs one playback session
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/CommonsLab/openplayer-go/internal/app"
	"github.com/CommonsLab/openplayer-go/internal/version"
)

var (
	input      = flag.String("input", "", "File path or ws:// stream URL (empty: discover via mDNS)")
	codec      = flag.String("codec", "", "Codec override: vorbis, mp3, or opus")
	name       = flag.String("name", "", "Player friendly name (default: hostname-openplayer)")
	port       = flag.Int("port", 8937, "Port for mDNS advertisement")
	logFile    = flag.String("log-file", "openplayer.log", "Log file path")
	noTUI      = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
	streamLogs = flag.Bool("stream-logs", false, "Alias for -no-tui")
)

func main() {
	flag.Parse()

	useTUI := !(*noTUI || *streamLogs)

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		// Streaming logs mode: log to both stdout and file
		multiWriter := io.MultiWriter(os.Stdout, f)
		log.SetOutput(multiWriter)
	}

	// Determine player name
	playerName := *name
	if playerName == "" {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		playerName = hostname + "-openplayer"
	}

	log.Printf("%s %s starting as %q", version.Product, version.Version, playerName)

	player := app.New(app.Config{
		Location: *input,
		Codec:    *codec,
		Name:     playerName,
		NoTUI:    !useTUI,
		Port:     *port,
	})

	// Stop the session cleanly on interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Printf("Interrupted, stopping session")
		player.Stop()
	}()

	if err := player.Start(); err != nil {
		log.Fatalf("player failed: %v", err)
	}
}
