package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

const CtxRealIP = "real_ip"

// RealIP stores the client IP under CtxRealIP. Forwarding headers are read
// only when the TCP peer is one of the trusted proxies (IPs or CIDRs):
// 1) CF-Connecting-IP
// 2) X-Real-IP
// 3) X-Forwarded-For (left-most)
// Anything else gets the peer address.
func RealIP(trusted ...string) gin.HandlerFunc {
	nets := parseNets(trusted)
	return func(c *gin.Context) {
		c.Set(CtxRealIP, realIP(c, nets))
		c.Next()
	}
}

func realIP(c *gin.Context, trusted []*net.IPNet) string {
	peer := c.RemoteIP()
	if !contains(trusted, net.ParseIP(peer)) {
		return peer
	}
	for _, h := range []string{"CF-Connecting-IP", "X-Real-IP"} {
		if ip := net.ParseIP(strings.TrimSpace(c.GetHeader(h))); ip != nil {
			return ip.String()
		}
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return peer
}

func parseNets(entries []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if !strings.Contains(e, "/") {
			ip := net.ParseIP(e)
			if ip == nil {
				continue
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		if _, n, err := net.ParseCIDR(e); err == nil {
			nets = append(nets, n)
		}
	}
	return nets
}

func contains(nets []*net.IPNet, ip net.IP) bool {
	if ip == nil {
		return false
	}
	for _, n := range nets {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// ipFromCtx returns the IP stored by RealIP, falling back to the peer address.
func ipFromCtx(c *gin.Context) string {
	if ip := c.GetString(CtxRealIP); ip != "" {
		return ip
	}
	if ip := c.RemoteIP(); ip != "" {
		return ip
	}
	return "unknown"
}
