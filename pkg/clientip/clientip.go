package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Headers consulted by GetIP, most specific first. They are only meaningful
// behind a proxy that overwrites them.
const (
	HeaderForwardedFor = "X-Forwarded-For"
	HeaderRealIP       = "X-Real-IP"
)

// GetIP returns the client address of r: the first valid entry of
// X-Forwarded-For, then X-Real-IP, then the peer address. Invalid values are
// skipped. It returns "" when nothing parses.
func GetIP(r *http.Request) string {
	if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
		for ip := range strings.SplitSeq(forwarded, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if parsed := parseIP(r.Header.Get(HeaderRealIP)); parsed != "" {
		return parsed
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP returns the canonical form of s, or "" if s is not an IP address.
// IPv4-mapped IPv6 addresses are reported as IPv4; zones are dropped.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
