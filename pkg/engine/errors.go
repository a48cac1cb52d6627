package engine

import "errors"

// ErrStreamClosed reports that the output sink is no longer accepting
// samples. It is a termination signal, not a failure: the engine stops
// immediately and Run returns nil.
var ErrStreamClosed = errors.New("output stream closed")
