// Package imgix builds signed imgix URLs. Web proxy sources (absolute http(s)
// URLs) are percent-encoded into a single path segment, other paths are
// escaped per segment.
package imgix

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// URLBuilder builds URLs for a single imgix source
type URLBuilder struct {
	domain string
	token  string
}

// NewURLBuilder creates a builder for domain. An empty token produces unsigned URLs.
func NewURLBuilder(domain, token string) *URLBuilder {
	return &URLBuilder{
		domain: strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(domain, "https://"), "http://"), "/"),
		token:  token,
	}
}

// BuildURL returns the https URL for path with the given rendering params
func (b *URLBuilder) BuildURL(path string, params map[string]string) string {
	p := encodePath(path)
	query := encodeParams(params)

	if b.token != "" {
		sum := md5.Sum([]byte(b.token + p + query))
		sig := hex.EncodeToString(sum[:])
		if query == "" {
			query = "?s=" + sig
		} else {
			query += "&s=" + sig
		}
	}

	return "https://" + b.domain + p + query
}

func encodePath(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return "/" + encodeURIComponent(path)
	}

	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, s := range segments {
		segments[i] = encodeURIComponent(s)
	}
	return "/" + strings.Join(segments, "/")
}

// encodeParams renders params with sorted keys so signatures are stable
func encodeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(encodeURIComponent(k))
		sb.WriteByte('=')
		sb.WriteString(encodeURIComponent(params[k]))
	}
	return sb.String()
}

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( )
func encodeURIComponent(s string) string {
	const hexDigits = "0123456789ABCDEF"

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hexDigits[c>>4])
		sb.WriteByte(hexDigits[c&0x0f])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
