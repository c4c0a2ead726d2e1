// ABOUTME: Entry point for the cast tool
// ABOUTME: Serves a local audio file to players over websocket
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/CommonsLab/openplayer-go/internal/discovery"
	"github.com/gorilla/websocket"
)

var (
	file    = flag.String("file", "", "Audio file to cast (required)")
	port    = flag.Int("port", 8938, "Port to serve the stream on")
	name    = flag.String("name", "openplayer-cast", "Endpoint name advertised via mDNS")
	chunkKB = flag.Int("chunk-kb", 4, "Stream chunk size in KiB")
	paceMs  = flag.Int("pace-ms", 20, "Delay between chunks in milliseconds")
)

var upgrader = websocket.Upgrader{}

func main() {
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	if _, err := os.Stat(*file); err != nil {
		log.Fatalf("cannot cast %s: %v", *file, err)
	}

	mgr := discovery.NewManager(discovery.Config{
		PlayerName: *name,
		Port:       *port,
		StreamMode: true,
	})
	if err := mgr.Advertise(); err != nil {
		log.Printf("mDNS advertisement failed: %v", err)
	}
	defer mgr.Stop()

	http.HandleFunc("/stream", streamHandler)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Casting %s on %s/stream", *file, addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}

// streamHandler pushes the file to one player as binary messages
func streamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	f, err := os.Open(*file)
	if err != nil {
		log.Printf("failed to open %s: %v", *file, err)
		return
	}
	defer f.Close()

	log.Printf("Streaming to %s", r.RemoteAddr)

	buf := make([]byte, *chunkKB*1024)
	pace := time.Duration(*paceMs) * time.Millisecond
	for {
		n, err := f.Read(buf)
		if n > 0 {
			if err := conn.WriteMessage(websocket.BinaryMessage, buf[:n]); err != nil {
				log.Printf("player went away: %v", err)
				return
			}
		}
		if err != nil {
			break
		}
		time.Sleep(pace)
	}

	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	log.Printf("Finished streaming to %s", r.RemoteAddr)
}
