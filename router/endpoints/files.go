package endpoints

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/indigo-web/pico/http"
	"github.com/indigo-web/pico/http/mime"
	"github.com/indigo-web/pico/http/status"
)

// The file name is taken verbatim from the path, so it may contain further slashes and dot
// segments, which allows escaping the root. Concurrent writes into the same file aren't
// synchronized in any way; the filesystem decides who wins.

func (r *Router) filePath(request *http.Request) (string, error) {
	if len(r.root) == 0 {
		return "", status.ErrNoFilesRoot
	}

	name, err := segment(request.Path)
	if err != nil {
		return "", err
	}

	return filepath.Join(r.root, name), nil
}

func (r *Router) getFile(request *http.Request) (*http.Response, error) {
	path, err := r.filePath(request)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.Code(status.NotFound), nil
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return http.NewResponse().
		ContentType(mime.OctetStream).
		ContentLength(len(content)).
		Bytes(content), nil
}

func (r *Router) postFile(request *http.Request) (*http.Response, error) {
	path, err := r.filePath(request)
	if err != nil {
		return nil, err
	}

	if err = os.WriteFile(path, request.Body, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	return http.Code(status.Created), nil
}
