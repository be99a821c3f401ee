package endpoints

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/pico/config"
	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/http/status"
	"github.com/indigo-web/pico/kv"
	"github.com/stretchr/testify/require"
)

func newRequest(method, path string, headers ...string) *http.Request {
	hdrs := kv.New()
	for i := 0; i+1 < len(headers); i += 2 {
		hdrs.Add(headers[i], headers[i+1])
	}

	return http.NewRequest(method, path, "HTTP/1.1", hdrs, []byte{})
}

func header(response *http.Response, key string) (string, bool) {
	for _, h := range response.Expose().Headers {
		if h.Key == key {
			return h.Value, true
		}
	}

	return "", false
}

func requireBare(t *testing.T, response *http.Response, code status.Code) {
	fields := response.Expose()
	require.Equal(t, code, fields.Code)
	require.Empty(t, fields.Headers)
	require.Empty(t, fields.Body)
}

func TestIndex(t *testing.T) {
	r := New(config.Files{})

	for _, m := range []string{"GET", "POST", "DELETE", "WHATEVER"} {
		requireBare(t, r.OnRequest(newRequest(m, "/")), status.OK)
	}
}

func TestNotFound(t *testing.T) {
	r := New(config.Files{Root: t.TempDir()})

	for _, tc := range []struct {
		Method, Path string
	}{
		{"GET", "/abcdefg"},
		{"GET", "/user-agent/extra"},
		{"GET", "/Echo/abc"},
		{"DELETE", "/files/a"},
		{"PUT", "/files/a"},
		{"get", "/files/a"},
	} {
		t.Run(tc.Method+" "+tc.Path, func(t *testing.T) {
			requireBare(t, r.OnRequest(newRequest(tc.Method, tc.Path)), status.NotFound)
		})
	}
}

func TestEcho(t *testing.T) {
	r := New(config.Files{})

	t.Run("plain", func(t *testing.T) {
		response := r.OnRequest(newRequest("GET", "/echo/abc"))
		fields := response.Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, []http.Header{
			{"Content-Type", "text/plain"},
			{"Content-Length", "3"},
		}, fields.Headers)
		require.Equal(t, "abc", string(fields.Body))
	})

	t.Run("nested segments", func(t *testing.T) {
		response := r.OnRequest(newRequest("GET", "/echo/a/b/c"))
		require.Equal(t, "a/b/c", string(response.Expose().Body))
	})

	t.Run("empty segment", func(t *testing.T) {
		response := r.OnRequest(newRequest("GET", "/echo/"))
		fields := response.Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Body)
		value, _ := header(response, "Content-Length")
		require.Equal(t, "0", value)
	})

	t.Run("no segment", func(t *testing.T) {
		requireBare(t, r.OnRequest(newRequest("GET", "/echo")), status.InternalServerError)
	})

	t.Run("gzip", func(t *testing.T) {
		response := r.OnRequest(newRequest("GET", "/echo/abc", "Accept-Encoding", "gzip"))
		fields := response.Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, []http.Header{
			{"Content-Type", "text/plain"},
			{"Content-Encoding", "gzip"},
			{"Content-Length", strconv.Itoa(len(fields.Body))},
		}, fields.Headers)

		reader, err := gzip.NewReader(bytes.NewReader(fields.Body))
		require.NoError(t, err)
		plain, err := io.ReadAll(reader)
		require.NoError(t, err)
		require.Equal(t, "abc", string(plain))
	})

	t.Run("gzip among others", func(t *testing.T) {
		response := r.OnRequest(newRequest("GET", "/echo/abc", "Accept-Encoding", "deflate, gzip, br"))
		value, found := header(response, "Content-Encoding")
		require.True(t, found)
		require.Equal(t, "gzip", value)
	})

	for _, accept := range []string{"identity", "GZIP", "deflate, br", "gzip;q=1.0", "*"} {
		t.Run("no encoding for "+accept, func(t *testing.T) {
			response := r.OnRequest(newRequest("GET", "/echo/abc", "Accept-Encoding", accept))
			_, found := header(response, "Content-Encoding")
			require.False(t, found)
			require.Equal(t, "abc", string(response.Expose().Body))
		})
	}

	t.Run("only the first Accept-Encoding counts", func(t *testing.T) {
		response := r.OnRequest(newRequest("GET", "/echo/abc",
			"Accept-Encoding", "identity",
			"Accept-Encoding", "gzip",
		))
		_, found := header(response, "Content-Encoding")
		require.False(t, found)
	})
}

func TestUserAgent(t *testing.T) {
	r := New(config.Files{})

	t.Run("present", func(t *testing.T) {
		response := r.OnRequest(newRequest("GET", "/user-agent", "User-Agent", "foobar/1.2.3"))
		fields := response.Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, []http.Header{
			{"Content-Type", "text/plain"},
			{"Content-Length", "12"},
		}, fields.Headers)
		require.Equal(t, "foobar/1.2.3", string(fields.Body))
	})

	t.Run("first of duplicates", func(t *testing.T) {
		response := r.OnRequest(newRequest("GET", "/user-agent",
			"User-Agent", "first",
			"User-Agent", "second",
		))
		require.Equal(t, "first", string(response.Expose().Body))
	})

	t.Run("missing", func(t *testing.T) {
		requireBare(t, r.OnRequest(newRequest("GET", "/user-agent")), status.InternalServerError)
	})

	t.Run("case mismatch", func(t *testing.T) {
		response := r.OnRequest(newRequest("GET", "/user-agent", "user-agent", "lower"))
		requireBare(t, response, status.InternalServerError)
	})

	t.Run("case insensitive storage", func(t *testing.T) {
		request := newRequest("GET", "/user-agent")
		request.Headers.CaseInsensitive().Add("user-agent", "lower")
		response := r.OnRequest(request)
		require.Equal(t, "lower", string(response.Expose().Body))
	})
}

func TestFiles(t *testing.T) {
	root := t.TempDir()
	r := New(config.Files{Root: root})

	t.Run("round trip", func(t *testing.T) {
		name := uniuri.New()
		content := []byte(uniuri.NewLen(100))
		post := newRequest("POST", "/files/"+name)
		post.Body = content

		requireBare(t, r.OnRequest(post), status.Created)

		onDisk, err := os.ReadFile(filepath.Join(root, name))
		require.NoError(t, err)
		require.Equal(t, content, onDisk)

		response := r.OnRequest(newRequest("GET", "/files/"+name))
		fields := response.Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, []http.Header{
			{"Content-Type", "application/octet-stream"},
			{"Content-Length", "100"},
		}, fields.Headers)
		require.Equal(t, content, fields.Body)
	})

	t.Run("overwrite", func(t *testing.T) {
		name := uniuri.New()
		for _, content := range []string{"a longer content", "short"} {
			post := newRequest("POST", "/files/"+name)
			post.Body = []byte(content)
			requireBare(t, r.OnRequest(post), status.Created)
		}

		response := r.OnRequest(newRequest("GET", "/files/"+name))
		require.Equal(t, "short", string(response.Expose().Body))
	})

	t.Run("binary", func(t *testing.T) {
		name := uniuri.New()
		content := []byte{0x00, 0x1f, 0x8b, 0xff, '\r', '\n'}
		post := newRequest("POST", "/files/"+name)
		post.Body = content
		requireBare(t, r.OnRequest(post), status.Created)

		response := r.OnRequest(newRequest("GET", "/files/"+name))
		require.Equal(t, content, response.Expose().Body)
	})

	t.Run("empty body", func(t *testing.T) {
		name := uniuri.New()
		requireBare(t, r.OnRequest(newRequest("POST", "/files/"+name)), status.Created)

		response := r.OnRequest(newRequest("GET", "/files/"+name))
		fields := response.Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Body)
		value, _ := header(response, "Content-Length")
		require.Equal(t, "0", value)
	})

	t.Run("missing file", func(t *testing.T) {
		requireBare(t, r.OnRequest(newRequest("GET", "/files/"+uniuri.New())), status.NotFound)
	})

	t.Run("directory", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0o755))
		requireBare(t, r.OnRequest(newRequest("GET", "/files/dir")), status.InternalServerError)
	})

	t.Run("no segment", func(t *testing.T) {
		requireBare(t, r.OnRequest(newRequest("GET", "/files")), status.InternalServerError)
	})

	t.Run("missing parent directory", func(t *testing.T) {
		post := newRequest("POST", "/files/no/such/dir")
		post.Body = []byte("hello")
		requireBare(t, r.OnRequest(post), status.InternalServerError)
	})
}

func TestFilesWithoutRoot(t *testing.T) {
	r := New(config.Files{})

	requireBare(t, r.OnRequest(newRequest("GET", "/files/a")), status.InternalServerError)

	post := newRequest("POST", "/files/a")
	post.Body = []byte("hello")
	requireBare(t, r.OnRequest(post), status.InternalServerError)
}

func TestSegment(t *testing.T) {
	for _, tc := range []struct {
		Path, Want string
		Err        error
	}{
		{"/echo/abc", "abc", nil},
		{"/echo/", "", nil},
		{"/echo/a/b", "a/b", nil},
		{"/files/../x", "../x", nil},
		{"/echo", "", status.ErrBadTarget},
		{"/", "", status.ErrBadTarget},
	} {
		got, err := segment(tc.Path)
		if tc.Err != nil {
			require.ErrorIs(t, err, tc.Err)
			continue
		}

		require.NoError(t, err)
		require.Equal(t, tc.Want, got)
	}
}

func TestOnError(t *testing.T) {
	r := New(config.Files{})
	requireBare(t, r.OnError(nil, status.ErrBadRequestLine), status.InternalServerError)
	requireBare(t, r.OnError(nil, io.ErrUnexpectedEOF), status.InternalServerError)
}
