package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_Owns(t *testing.T) {
	t.Parallel()

	var anonymous *Identity

	tests := []struct {
		name     string
		id       *Identity
		ownerID  string
		expected bool
	}{
		{"owner matches", &Identity{ID: "u-1"}, "u-1", true},
		{"different owner", &Identity{ID: "u-1"}, "u-2", false},
		{"nil identity", anonymous, "u-1", false},
		{"empty id never owns", &Identity{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.id.Owns(tt.ownerID))
		})
	}
}
