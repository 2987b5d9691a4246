package multiplexer

import "errors"

var ErrReceiverExists = errors.New("receiver with that name already exists")
