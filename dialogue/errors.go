package dialogue

import "errors"

// ErrNilState is returned by RunTurn when called without a session state.
var ErrNilState = errors.New("nil session state")
