package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple address", "a@b.com", true},
		{"subdomain and plus tag", "user.name+tag@sub.domain.co", true},
		{"missing dot in domain", "a@b", false},
		{"contains at but not an address", "call me @ the front desk", false},
		{"whitespace inside", "a b@c.com", false},
		{"leading at", "@b.com", false},
		{"dot directly after at", "a@.com", false},
		{"double at", "a@@b.com", false},
		{"trailing space", "a@b.com ", false},
		{"phone number", "+48 123 456 789", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmailAddress(tt.input))
		})
	}
}
