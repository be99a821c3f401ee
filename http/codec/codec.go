package codec

import (
	"io"
)

type Codec interface {
	// Token returns a coding token associated with the codec itself.
	Token() string
	// New returns a fresh compressor. Compressors aren't safe for concurrent use.
	New() Compressor
}

type Compressor interface {
	io.WriteCloser
	ResetCompressor(w io.Writer)
}
