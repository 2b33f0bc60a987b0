package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		require.Error(t, err)
		assert.Nil(t, server)
	})

	t.Run("nil search service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Index: &mockIndexService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingSearchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Search: &mockSearchService{},
			Index:  &mockIndexService{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name  string
		ports Ports
		want  error
	}{
		{name: "empty", ports: Ports{}, want: ErrMissingSearchService},
		{name: "search only", ports: Ports{Search: &mockSearchService{}}, want: ErrMissingIndexService},
		{name: "complete", ports: Ports{Search: &mockSearchService{}, Index: &mockIndexService{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
