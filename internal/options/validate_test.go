package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/dtogen/dtoerrors"
)

func TestRequireOne(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
		wantErr string
	}{
		{
			name:    "exactly one",
			sources: []Source{{"file", true}, {"content", false}},
		},
		{
			name:    "none",
			sources: []Source{{"file", false}, {"content", false}},
			wantErr: "must specify an input source (use file or content)",
		},
		{
			name:    "both",
			sources: []Source{{"file", true}, {"content", true}},
			wantErr: "must specify exactly one input source (got file and content)",
		},
		{
			name:    "no sources at all",
			wantErr: "must specify an input source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOne("spec", tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, dtoerrors.ErrConfig))
		})
	}
}
