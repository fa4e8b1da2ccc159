package hypr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckResponse(t *testing.T) {
	tests := []struct {
		response string
		wantErr  bool
	}{
		{"ok", false},
		{"", false},
		{"[]", false},
		{"unknown request", true},
		{"Invalid dispatcher", true},
		{"  error: no window found\n", true},
		{"Couldn't find window", true},
		{"No such workspace", true},
		{"window not found", false},
		{"not found", true},
	}

	for _, tt := range tests {
		t.Run(tt.response, func(t *testing.T) {
			err := CheckResponse(tt.response)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrResponse)
				return
			}
			assert.NoError(t, err)
		})
	}
}
