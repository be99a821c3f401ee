package dummy

import (
	"errors"
	"io"
	"net"

	"github.com/indigo-web/pico/transport"
)

var _ transport.Client = new(Client)

// Client returns each of the chunks it was initialized with on successive reads and
// io.EOF afterwards. Everything written is stored in Written, and Writes counts the calls.
type Client struct {
	chunks  [][]byte
	Written []byte
	Writes  int
	closed  bool
	werr    error
}

func NewClient(chunks ...[]byte) *Client {
	return &Client{chunks: chunks}
}

func (c *Client) Read() ([]byte, error) {
	if c.closed || len(c.chunks) == 0 {
		return nil, io.EOF
	}

	chunk := c.chunks[0]
	c.chunks = c.chunks[1:]

	return chunk, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.closed {
		return 0, net.ErrClosed
	}

	if c.werr != nil {
		return 0, c.werr
	}

	c.Writes++
	c.Written = append(c.Written, p...)
	return len(p), nil
}

func (c *Client) Conn() net.Conn {
	return nil
}

func (*Client) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4221}
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// FailWrites makes every following write fail.
func (c *Client) FailWrites() *Client {
	c.werr = errors.New("broken pipe")
	return c
}
