package logx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnonymizeIP(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ipv4 with port", "192.0.2.33:4567", "192.0.2.0"},
		{"ipv4 bare", "203.0.113.200", "203.0.113.0"},
		{"ipv6 with port", "[2001:db8:1:2:3:4:5:6]:80", "2001:db8:1:2::"},
		{"ipv6 bare", "2001:db8::dead:beef", "2001:db8::"},
		{"loopback", "127.0.0.1:9999", "127.0.0.1"},
		{"ipv6 loopback", "[::1]:9999", "127.0.0.1"},
		{"garbage", "not-an-address", "unknown_ip"},
		{"empty", "", "unknown_ip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, anonymizeIP(tt.in))
		})
	}
}
