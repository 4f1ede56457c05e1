package id

import (
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// MessageID builds an RFC 5322 Message-ID using the domain part of from.
func MessageID(from string) string {
	host := "localhost"
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		host = strings.TrimSuffix(from[i+1:], ">")
	}
	return "<" + New() + "@" + host + ">"
}
