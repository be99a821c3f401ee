package codecutil

import (
	"bytes"
	"strings"
	"sync"

	"github.com/indigo-web/pico/http/codec"
)

// Cache keeps a pool of compressors per codec. It's safe for concurrent use, so a single
// instance may be shared by every connection.
type Cache struct {
	codecs []codec.Codec
	pools  []*sync.Pool
}

func NewCache(codecs []codec.Codec) *Cache {
	pools := make([]*sync.Pool, len(codecs))
	for i, c := range codecs {
		pools[i] = &sync.Pool{
			New: func() any {
				return c.New()
			},
		}
	}

	return &Cache{
		codecs: codecs,
		pools:  pools,
	}
}

func (c *Cache) find(token string) int {
	for i, entry := range c.codecs {
		if entry.Token() == token {
			return i
		}
	}

	return -1
}

// Negotiate picks the first token of the Accept-Encoding value, which is a ", "-separated
// list, matching a known codec exactly. Neither wildcards nor quality values are recognized,
// they're just unknown tokens. Returns nil if nothing matches.
func (c *Cache) Negotiate(acceptEncoding string) codec.Codec {
	for len(acceptEncoding) > 0 {
		var token string
		token, acceptEncoding, _ = strings.Cut(acceptEncoding, ", ")

		if idx := c.find(token); idx != -1 {
			return c.codecs[idx]
		}
	}

	return nil
}

// Encode compresses the whole data with the codec, which must be one of the cache's.
func (c *Cache) Encode(cd codec.Codec, data []byte) ([]byte, error) {
	idx := c.find(cd.Token())
	if idx == -1 {
		return nil, ErrUnknownCodec
	}

	pool := c.pools[idx]
	compressor := pool.Get().(codec.Compressor)
	defer pool.Put(compressor)

	buff := bytes.NewBuffer(make([]byte, 0, len(data)/2+32))
	compressor.ResetCompressor(buff)

	if _, err := compressor.Write(data); err != nil {
		return nil, err
	}

	if err := compressor.Close(); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}
