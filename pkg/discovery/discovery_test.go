package discovery

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestBackendURL(t *testing.T) {
	t.Parallel()

	t.Run("prefers_resolved_ip", func(t *testing.T) {
		t.Parallel()
		b := Backend{
			Host: "nas.local",
			Port: 8080,
			IPs:  []net.IP{net.ParseIP("192.168.1.20")},
		}
		assert.Equal(t, "http://192.168.1.20:8080", b.URL())
	})

	t.Run("falls_back_to_hostname", func(t *testing.T) {
		t.Parallel()
		b := Backend{Host: "nas.local", Port: 9000}
		assert.Equal(t, "http://nas.local:9000", b.URL())
	})
}

func TestFromEntry(t *testing.T) {
	t.Parallel()

	entry := &zeroconf.ServiceEntry{
		HostName: "nas.local.",
		Port:     8080,
		Text:     []string{"name=Living Room", "version=1.2.0"},
		AddrIPv4: []net.IP{
			net.ParseIP("169.254.1.1"),
			net.ParseIP("192.168.1.20"),
		},
	}
	entry.Instance = "aio"

	b, ok := fromEntry(entry)
	require.True(t, ok)
	assert.Equal(t, "Living Room", b.Name)
	assert.Equal(t, "nas.local", b.Host)
	assert.Equal(t, "1.2.0", b.Version)
	require.Len(t, b.IPs, 1)
	assert.Equal(t, "192.168.1.20", b.IPs[0].String())
	assert.WithinDuration(t, time.Now(), b.DiscoveredAt, time.Minute)
}

func TestFromEntry_nil(t *testing.T) {
	t.Parallel()

	_, ok := fromEntry(nil)
	assert.False(t, ok)
}

func TestBrowse_error_releases_reader(t *testing.T) {
	defer goleak.VerifyNone(t)

	orig := browse
	browse = func(
		_ *zeroconf.Resolver,
		_ context.Context,
		_, _ string,
		_ chan *zeroconf.ServiceEntry,
	) error {
		return errors.New("no multicast interfaces")
	}
	defer func() { browse = orig }()

	_, err := Browse(context.Background(), time.Second)
	require.Error(t, err)
}
