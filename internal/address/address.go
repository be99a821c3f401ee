package address

import (
	"strings"
)

const DefaultHost = "0.0.0.0"

// Normalize prepends the default host, if the address consists of the port only.
func Normalize(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return DefaultHost + addr
	}

	return addr
}
