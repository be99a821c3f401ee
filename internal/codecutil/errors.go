package codecutil

import "errors"

var ErrUnknownCodec = errors.New("codec isn't registered in the cache")
