// ABOUTME: mDNS discovery of OpenPlayer stream endpoints
// ABOUTME: Handles player advertisement and endpoint browsing
package discovery

import (
	"context"
	"fmt"
	"log"
	"net"

	"github.com/hashicorp/mdns"
)

const (
	playerService = "_openplayer._tcp"
	streamService = "_openplayer-stream._tcp"
)

// Config holds discovery configuration
type Config struct {
	PlayerName string
	Port       int
	StreamMode bool // If true, advertise as a stream endpoint instead of a player
}

// Manager handles mDNS operations
type Manager struct {
	config    Config
	ctx       context.Context
	cancel    context.CancelFunc
	endpoints chan *Endpoint
}

// Endpoint describes a discovered stream source
type Endpoint struct {
	Name string
	Host string
	Port int
}

// URL returns the websocket address of the endpoint's stream.
func (e *Endpoint) URL() string {
	return fmt.Sprintf("ws://%s:%d/stream", e.Host, e.Port)
}

// NewManager creates a discovery manager
func NewManager(config Config) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		config:    config,
		ctx:       ctx,
		cancel:    cancel,
		endpoints: make(chan *Endpoint, 10),
	}
}

// Advertise announces this player via mDNS
func (m *Manager) Advertise() error {
	ips, err := getLocalIPs()
	if err != nil {
		return fmt.Errorf("failed to get local IPs: %w", err)
	}

	serviceType := playerService
	if m.config.StreamMode {
		serviceType = streamService
	}

	service, err := mdns.NewMDNSService(
		m.config.PlayerName,
		serviceType,
		"",
		"",
		m.config.Port,
		ips,
		[]string{"path=/openplayer"},
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return fmt.Errorf("failed to create mdns server: %w", err)
	}

	log.Printf("Advertising mDNS service: %s on port %d (type: %s)",
		m.config.PlayerName, m.config.Port, serviceType)

	go func() {
		<-m.ctx.Done()
		server.Shutdown()
	}()

	return nil
}

// Browse searches for stream endpoints
func (m *Manager) Browse() error {
	go m.browseLoop()
	return nil
}

// browseLoop continuously browses for stream endpoints
func (m *Manager) browseLoop() {
	for {
		select {
		case <-m.ctx.Done():
			return
		default:
		}

		entries := make(chan *mdns.ServiceEntry, 10)

		go func() {
			for entry := range entries {
				endpoint := &Endpoint{
					Name: entry.Name,
					Host: entry.AddrV4.String(),
					Port: entry.Port,
				}

				log.Printf("Discovered stream: %s at %s:%d", endpoint.Name, endpoint.Host, endpoint.Port)

				select {
				case m.endpoints <- endpoint:
				case <-m.ctx.Done():
					return
				}
			}
		}()

		params := &mdns.QueryParam{
			Service: streamService,
			Domain:  "local",
			Timeout: 3,
			Entries: entries,
		}

		mdns.Query(params)
		close(entries)
	}
}

// Endpoints returns the channel of discovered stream endpoints
func (m *Manager) Endpoints() <-chan *Endpoint {
	return m.endpoints
}

// Stop stops the discovery manager
func (m *Manager) Stop() {
	m.cancel()
}

// getLocalIPs returns local IP addresses
func getLocalIPs() ([]net.IP, error) {
	var ips []net.IP

	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
				if ipnet.IP.To4() != nil {
					ips = append(ips, ipnet.IP)
				}
			}
		}
	}

	return ips, nil
}
