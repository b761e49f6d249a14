package libdiff

import "errors"

var ErrPatch = errors.New("patch does not apply")
