package atlas

import "errors"

// Returned (wrapped) when a decoded font description can't
// produce any glyph metrics.
var ErrInvalidFont = errors.New("atlas: invalid font")
