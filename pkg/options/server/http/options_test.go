package http_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpopts "github.com/kart-io/ai-engine/pkg/options/server/http"
)

func TestOptions_Defaults(t *testing.T) {
	o := httpopts.NewOptions()

	assert.Equal(t, httpopts.NetworkUnix, o.Network)
	assert.Empty(t, o.SocketPath)
	assert.Equal(t, "127.0.0.1:8000", o.Addr)
	assert.Empty(t, o.Validate())
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*httpopts.Options)
		wantErr bool
	}{
		{
			name:    "valid unix",
			mutate:  func(o *httpopts.Options) {},
			wantErr: false,
		},
		{
			name: "valid tcp",
			mutate: func(o *httpopts.Options) {
				o.Network = httpopts.NetworkTCP
			},
			wantErr: false,
		},
		{
			name: "unknown network",
			mutate: func(o *httpopts.Options) {
				o.Network = "udp"
			},
			wantErr: true,
		},
		{
			name: "tcp without addr",
			mutate: func(o *httpopts.Options) {
				o.Network = httpopts.NetworkTCP
				o.Addr = ""
			},
			wantErr: true,
		},
		{
			name: "tcp addr missing port",
			mutate: func(o *httpopts.Options) {
				o.Network = httpopts.NetworkTCP
				o.Addr = "localhost"
			},
			wantErr: true,
		},
		{
			name: "negative read timeout",
			mutate: func(o *httpopts.Options) {
				o.ReadTimeout = -1
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := httpopts.NewOptions()
			tt.mutate(o)

			errs := o.Validate()
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestOptions_Complete_SocketPathFallback(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(httpopts.SocketEnvVar, "/tmp/custom.sock")

		o := httpopts.NewOptions()
		require.NoError(t, o.Complete())
		assert.Equal(t, "/tmp/custom.sock", o.SocketPath)
	})

	t.Run("default path", func(t *testing.T) {
		t.Setenv(httpopts.SocketEnvVar, "")

		o := httpopts.NewOptions()
		require.NoError(t, o.Complete())
		assert.Equal(t, httpopts.DefaultSocketPath, o.SocketPath)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(httpopts.SocketEnvVar, "/tmp/custom.sock")

		o := httpopts.NewOptions()
		o.SocketPath = "/tmp/explicit.sock"
		require.NoError(t, o.Complete())
		assert.Equal(t, "/tmp/explicit.sock", o.SocketPath)
	})
}

func TestOptions_ListenAddr(t *testing.T) {
	o := httpopts.NewOptions()
	o.SocketPath = "/tmp/engine.sock"
	assert.Equal(t, "/tmp/engine.sock", o.ListenAddr())

	o.Network = httpopts.NetworkTCP
	assert.Equal(t, "127.0.0.1:8000", o.ListenAddr())
}

func TestOptions_ApplyOptions(t *testing.T) {
	o := httpopts.NewOptions()
	o.ApplyOptions(
		httpopts.WithNetwork(httpopts.NetworkTCP),
		httpopts.WithAddr("127.0.0.1:9100"),
	)

	assert.Equal(t, httpopts.NetworkTCP, o.Network)
	assert.Equal(t, "127.0.0.1:9100", o.Addr)
}
