// Package discovery finds AIO backends on the local network via mDNS/DNS-SD.
package discovery

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
)

// ServiceName is the mDNS service type advertised by AIO backends.
const ServiceName = "_aio-backend._tcp"

// DefaultTimeout bounds a single browse pass.
const DefaultTimeout = 3 * time.Second

// Backend represents an AIO backend found via mDNS.
type Backend struct {
	Name         string    `json:"name"`
	Host         string    `json:"host"`
	Port         int       `json:"port"`
	IPs          []net.IP  `json:"ips"`
	Version      string    `json:"version"`
	DiscoveredAt time.Time `json:"discoveredAt"`
}

// URL returns the HTTP base URL for connecting to the backend.
func (b *Backend) URL() string {
	host := b.Host
	if len(b.IPs) > 0 {
		host = b.IPs[0].String()
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, fmt.Sprintf("%d", b.Port)))
}

// browse is a seam over zeroconf's resolver for tests.
var browse = func(
	r *zeroconf.Resolver,
	ctx context.Context,
	service, domain string,
	entries chan *zeroconf.ServiceEntry,
) error {
	return r.Browse(ctx, service, domain, entries)
}

// Browse performs a one-time mDNS query and returns the backends found
// within the timeout. A zero timeout uses DefaultTimeout.
func Browse(ctx context.Context, timeout time.Duration) ([]Backend, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	var backends []Backend
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for entry := range entries {
			if b, ok := fromEntry(entry); ok {
				backends = append(backends, b)
			}
		}
	}()

	browseCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := browse(resolver, browseCtx, ServiceName, "local.", entries); err != nil {
		// zeroconf only closes the channel once browsing actually started;
		// release the reader ourselves on failure.
		close(entries)
		wg.Wait()
		return nil, fmt.Errorf("mDNS browse failed: %w", err)
	}

	// zeroconf closes the entry channel when browsing ends
	<-browseCtx.Done()
	wg.Wait()

	return backends, nil
}

// fromEntry converts a zeroconf entry to a Backend.
func fromEntry(entry *zeroconf.ServiceEntry) (Backend, bool) {
	if entry == nil {
		return Backend{}, false
	}

	b := Backend{
		Name:         entry.Instance,
		Host:         strings.TrimSuffix(entry.HostName, "."),
		Port:         entry.Port,
		DiscoveredAt: time.Now(),
	}

	for _, txt := range entry.Text {
		switch {
		case strings.HasPrefix(txt, "name="):
			b.Name = txt[5:]
		case strings.HasPrefix(txt, "version="):
			b.Version = txt[8:]
		}
	}

	// Filter out link-local addresses
	for _, ip := range entry.AddrIPv4 {
		ip4 := ip.To4()
		if ip4 != nil && !(ip4[0] == 169 && ip4[1] == 254) {
			b.IPs = append(b.IPs, ip)
		}
	}

	return b, true
}
