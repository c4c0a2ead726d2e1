// ABOUTME: Tests for mDNS discovery
// ABOUTME: Tests manager creation and endpoint addressing
package discovery

import (
	"testing"
)

func TestNewManager(t *testing.T) {
	config := Config{
		PlayerName: "Test Player",
		Port:       8937,
	}

	mgr := NewManager(config)
	if mgr == nil {
		t.Fatal("expected manager to be created")
	}
}

func TestEndpointURL(t *testing.T) {
	e := &Endpoint{Name: "kitchen", Host: "192.168.1.20", Port: 8937}

	expected := "ws://192.168.1.20:8937/stream"
	if e.URL() != expected {
		t.Errorf("URL() = %q, expected %q", e.URL(), expected)
	}
}
