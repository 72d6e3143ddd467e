package snapshot

import "errors"

// ErrMalformedSnapshot is returned when a payload identifies neither a
// home nor an away team under any known field convention. Callers must
// not mount a view from a failed normalization.
var ErrMalformedSnapshot = errors.New("malformed snapshot: missing home or away team")
