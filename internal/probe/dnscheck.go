package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"
)

// DNS classes attached to unreachable classifications so operators can tell
// a dead domain from a dead server.
const (
	dnsResolves = "RESOLVES"
	dnsNXDomain = "NXDOMAIN"
	dnsNoARec   = "NO_A_RECORD"
	dnsServfail = "SERVFAIL_or_TIMEOUT"
	dnsInvalid  = "INVALID_NAME"
)

var dnsTimeout = 3 * time.Second

// classifyDNS resolves host with the OS resolver and buckets the outcome.
// The lookup shares the probe's context, so its deadline caps the extra
// time spent on diagnostics.
func classifyDNS(ctx context.Context, host string) string {
	host = strings.TrimSpace(host)
	if host == "" || strings.Contains(host, "://") {
		return dnsInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, dnsTimeout)
	defer cancel()
	r := &net.Resolver{}

	ips, err := r.LookupIP(ctx, "ip", host)
	if err == nil && len(ips) > 0 {
		return dnsResolves
	}

	var de *net.DNSError
	if errors.As(err, &de) {
		if de.IsTemporary || de.Timeout() {
			return dnsServfail
		}
		if de.IsNotFound {
			// A zone can exist with nameservers but no address records.
			if ns, nsErr := r.LookupNS(ctx, host); nsErr == nil && len(ns) > 0 {
				return dnsNoARec
			}
			return dnsNXDomain
		}
	}
	return dnsServfail
}

// annotateDNS appends a dns=<class> tag to a transport error message when
// the target's hostname looks like a name resolution problem is worth
// distinguishing. A spent context (the probe already timed out) skips the
// lookup; a tag derived from a dead context would only mislead.
func annotateDNS(ctx context.Context, target, errText string) string {
	if ctx.Err() != nil {
		return errText
	}
	host := extractHost(target)
	if net.ParseIP(host) != nil {
		return errText
	}
	class := classifyDNS(ctx, host)
	if class == dnsResolves {
		return errText
	}
	return strings.TrimSpace(fmt.Sprintf("%s dns=%s", errText, class))
}

func extractHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}
