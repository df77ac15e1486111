package numeric

import "errors"

// ErrOptionViolation is returned by NewMemo when an Option carries a
// nonsensical value (e.g. a negative capacity).
var ErrOptionViolation = errors.New("numeric: invalid option supplied")
