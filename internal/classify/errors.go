package classify

import "errors"

// ErrNoClassifyFunc is returned when a Lua script does not define the
// classify_at function.
var ErrNoClassifyFunc = errors.New("script does not define classify_at")
