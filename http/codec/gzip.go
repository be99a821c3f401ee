package codec

import (
	"github.com/klauspost/compress/gzip"
)

func NewGZIP() Codec {
	return newBaseCodec("gzip", func() Compressor {
		// gzip.NewWriterLevel never fails on a valid level
		writer, _ := gzip.NewWriterLevel(nil, gzip.DefaultCompression)
		return newBaseCompressor(writer)
	})
}
