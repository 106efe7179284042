package layout

import "errors"

// ErrInvalidConfiguration reports a group, pair or split that cannot be built
// from the supplied arguments.
var ErrInvalidConfiguration = errors.New("invalid layout configuration")
