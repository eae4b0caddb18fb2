package events

import "golang.org/x/sys/unix"

var platformEvents = []Event{
	{unix.POLLRDNORM, "RDNORM"},
	{unix.POLLRDBAND, "RDBAND"},
	{unix.POLLWRNORM, "WRNORM"},
	{unix.POLLWRBAND, "WRBAND"},
}
