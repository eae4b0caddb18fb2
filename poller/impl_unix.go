//go:build unix

package poller

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// UnixPoller waits with poll(2). Interruption by a signal is not
// retried; the EINTR propagates to the caller.
type UnixPoller struct{}

func NewUnixPoller() *UnixPoller {
	return &UnixPoller{}
}

func (up *UnixPoller) Wait(groups []Group, timeout int) (int, error) {
	pollFds := up.fromGroups(groups)
	n, err := unix.Poll(pollFds, timeout)
	if err != nil {
		return 0, errors.Wrap(err, "poll")
	}
	up.toGroups(pollFds, groups)
	return n, nil
}

func (up *UnixPoller) fromGroups(groups []Group) []unix.PollFd {
	pollFds := make([]unix.PollFd, 0, len(groups))
	for _, group := range groups {
		pollFds = append(pollFds, unix.PollFd{
			Fd:     group.Fd,
			Events: group.Events,
		})
	}
	return pollFds
}

func (up *UnixPoller) toGroups(pollFds []unix.PollFd, groups []Group) {
	for idx, pfd := range pollFds {
		groups[idx].Revents = pfd.Revents
	}
}
