package memory

import "errors"

var errVectorMismatch = errors.New("chunks and vectors length mismatch")
