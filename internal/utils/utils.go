package utils

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// GetIP resolves the client address, preferring proxy headers over the
// raw socket peer.
func GetIP(r *http.Request) (string, error) {
	ip := r.Header.Get("X-Real-Ip")
	if net.ParseIP(ip) != nil {
		return ip, nil
	}

	for _, candidate := range strings.Split(r.Header.Get("X-Forwarded-For"), ",") {
		candidate = strings.TrimSpace(candidate)
		if net.ParseIP(candidate) != nil {
			return candidate, nil
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "", err
	}
	if net.ParseIP(host) != nil {
		return host, nil
	}
	return "", fmt.Errorf("no valid ip found")
}
