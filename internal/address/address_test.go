package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "0.0.0.0:4221", Normalize(":4221"))
	require.Equal(t, "127.0.0.1:4221", Normalize("127.0.0.1:4221"))
	require.Equal(t, "localhost:80", Normalize("localhost:80"))
}
