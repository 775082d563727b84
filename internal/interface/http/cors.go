package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// originPolicy decides which browser origins may read gateway responses.
// Entries are exact origins, "*" or a subdomain wildcard such as "https://*.example.com".
type originPolicy struct {
	any      bool
	exact    map[string]struct{}
	suffixes []originSuffix
}

type originSuffix struct {
	scheme string
	domain string
}

func newOriginPolicy(allowed []string) originPolicy {
	p := originPolicy{exact: make(map[string]struct{}, len(allowed))}
	if len(allowed) == 0 {
		p.any = true
		return p
	}
	for _, raw := range allowed {
		origin := strings.ToLower(strings.TrimRight(strings.TrimSpace(raw), "/"))
		switch {
		case origin == "":
		case origin == "*":
			p.any = true
		case strings.Contains(origin, "://*."):
			scheme, host, _ := strings.Cut(origin, "://*")
			p.suffixes = append(p.suffixes, originSuffix{scheme: scheme + "://", domain: host})
		default:
			p.exact[origin] = struct{}{}
		}
	}
	return p
}

// allow returns the Access-Control-Allow-Origin value for origin, or "" when it is refused.
func (p originPolicy) allow(origin string) string {
	if p.any {
		return "*"
	}
	normalized := strings.ToLower(origin)
	if _, ok := p.exact[normalized]; ok {
		return origin
	}
	for _, s := range p.suffixes {
		host, ok := strings.CutPrefix(normalized, s.scheme)
		if ok && strings.HasSuffix(host, s.domain) && len(host) > len(s.domain) {
			return origin
		}
	}
	return ""
}

// corsMiddleware lets the browser dashboard call the gateway from its own origin.
func corsMiddleware(allowed []string, maxAge time.Duration) gin.HandlerFunc {
	policy := newOriginPolicy(allowed)
	return func(c *gin.Context) {
		headers := c.Writer.Header()
		headers.Add("Vary", "Origin")

		origin := c.GetHeader("Origin")
		if value := policy.allow(origin); origin != "" && value != "" {
			headers.Set("Access-Control-Allow-Origin", value)
			headers.Set("Access-Control-Expose-Headers", requestIDHeader)
		}

		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		headers.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		headers.Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
		if maxAge > 0 {
			headers.Set("Access-Control-Max-Age", strconv.Itoa(int(maxAge.Seconds())))
		}
		c.AbortWithStatus(http.StatusNoContent)
	}
}
