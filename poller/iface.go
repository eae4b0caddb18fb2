package poller

// Group is one polled descriptor: the event mask asked for, and after
// a Wait, the event mask the kernel reported back.
type Group struct {
	Fd      int32
	Events  int16
	Revents int16
}

type Poller interface {
	// Wait blocks until an event, the timeout (in milliseconds, -1
	// waits forever), or an error. It fills Revents in place and
	// returns how many groups got a nonzero result.
	Wait(groups []Group, timeout int) (int, error)
}
