// Package validator checks user supplied peer addresses.
package validator

import (
	"fmt"
	"io"
	"net/netip"

	"github.com/pkg/errors"
)

// ErrInvalidAddress is returned for text that is not an IPv4 or IPv6 address.
var ErrInvalidAddress = errors.New("invalid IP address")

// ParseIP parses the textual form of an IPv4 or IPv6 address.
// Host names are rejected.
func ParseIP(ip string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return netip.Addr{}, errors.Wrap(ErrInvalidAddress, err.Error())
	}
	return addr, nil
}

// ValidateIP reports whether ip is a valid address. On failure the parse
// error is written to errOut and false is returned.
func ValidateIP(ip string, errOut io.Writer) bool {
	if _, err := ParseIP(ip); err != nil {
		_, _ = fmt.Fprintln(errOut, err)
		return false
	}
	return true
}
