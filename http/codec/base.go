package codec

import (
	"io"
)

var _ Codec = baseCodec{}

type instantiator = func() Compressor

type baseCodec struct {
	token   string
	newInst instantiator
}

func newBaseCodec(token string, newInst instantiator) baseCodec {
	return baseCodec{
		token:   token,
		newInst: newInst,
	}
}

func (b baseCodec) Token() string {
	return b.token
}

func (b baseCodec) New() Compressor {
	return b.newInst()
}

type writeResetter interface {
	io.WriteCloser
	Reset(dst io.Writer)
}

var _ Compressor = new(baseCompressor)

type baseCompressor struct {
	w   writeResetter
	dst io.Closer
}

func newBaseCompressor(encoder writeResetter) *baseCompressor {
	return &baseCompressor{w: encoder}
}

func (b *baseCompressor) ResetCompressor(w io.Writer) {
	b.w.Reset(w)
	b.dst = nil

	if c, ok := w.(io.Closer); ok {
		b.dst = c
	}
}

func (b *baseCompressor) Write(p []byte) (n int, err error) {
	return b.w.Write(p)
}

// Close flushes the compressed stream and closes the destination, if it's closable.
func (b *baseCompressor) Close() error {
	if err := b.w.Close(); err != nil {
		return err
	}

	if b.dst != nil {
		return b.dst.Close()
	}

	return nil
}
