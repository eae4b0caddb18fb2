//go:build unix

package poller

import (
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestWaitReportsWritablePipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	groups := []Group{{Fd: int32(w.Fd()), Events: unix.POLLOUT}}
	n, err := NewUnixPoller().Wait(groups, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("got %d ready descriptors, want 1", n)
	}
	if groups[0].Revents&unix.POLLOUT == 0 {
		t.Errorf("revents %#x, want OUT set", groups[0].Revents)
	}
}

func TestWaitTimesOutWithNothingReady(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	// empty pipe, so the read end has nothing to offer
	groups := []Group{{Fd: int32(r.Fd()), Events: unix.POLLIN}}
	n, err := NewUnixPoller().Wait(groups, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("got %d ready descriptors, want 0", n)
	}
	if groups[0].Revents != 0 {
		t.Errorf("revents %#x, want none", groups[0].Revents)
	}
}

func TestWaitFlagsClosedDescriptor(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	fd := int32(r.Fd())
	r.Close()
	w.Close()

	groups := []Group{{Fd: fd, Events: unix.POLLIN}}
	n, err := NewUnixPoller().Wait(groups, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("got %d ready descriptors, want 1", n)
	}
	if groups[0].Revents&unix.POLLNVAL == 0 {
		t.Errorf("revents %#x, want NVAL set", groups[0].Revents)
	}
}

func TestWaitReadablePipeEnd(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if _, err := w.Write([]byte{1}); err != nil {
		t.Fatal(err)
	}
	groups := []Group{{Fd: int32(r.Fd()), Events: unix.POLLIN}}
	n, err := NewUnixPoller().Wait(groups, 100)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || groups[0].Revents&unix.POLLIN == 0 {
		t.Fatalf("n=%d revents=%#x, want readable", n, groups[0].Revents)
	}
}
