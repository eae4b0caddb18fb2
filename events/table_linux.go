package events

import "golang.org/x/sys/unix"

// x/sys/unix only exposes the POSIX base flags on linux, so the XPG
// extension flags carry their <bits/poll.h> values here. POLLMSG
// stays out, matching its usual absence from userspace headers.
const (
	pollRDNORM = 0x040
	pollRDBAND = 0x080
	pollWRNORM = 0x100
	pollWRBAND = 0x200
)

var platformEvents = []Event{
	{pollRDNORM, "RDNORM"},
	{pollRDBAND, "RDBAND"},
	{pollWRNORM, "WRNORM"},
	{pollWRBAND, "WRBAND"},
	{unix.POLLRDHUP, "RDHUP"},
}
