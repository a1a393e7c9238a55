package processing

import (
	"github.com/pdok/bitlib/ops"
)

// Source sends its requests and closes the channel when done.
type Source interface {
	ReadRequests(chan<- ops.Request)
}

type Target interface {
	WriteResults(<-chan ops.Result)
}
