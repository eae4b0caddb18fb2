package events

import (
	"strings"

	"golang.org/x/sys/unix"
)

// Event is one named poll(2) flag.
type Event struct {
	Flag int16
	Name string
}

// The table drives both argument parsing and result printing, so the
// set of names accepted on the command line and the set of names that
// can show up in output are the same by construction. Result-only
// flags sit at the end: the kernel reports them whether or not they
// were asked for, and they print last on each line.
var table = buildTable()

func buildTable() []Event {
	t := []Event{
		{unix.POLLIN, "IN"},
		{unix.POLLOUT, "OUT"},
		{unix.POLLPRI, "PRI"},
	}
	t = append(t, platformEvents...)
	return append(t,
		Event{unix.POLLERR, "ERR"},
		Event{unix.POLLHUP, "HUP"},
		Event{unix.POLLNVAL, "NVAL"},
	)
}

func Table() []Event {
	return table
}

// Parse matches name against the table, ignoring case.
func Parse(name string) (int16, bool) {
	for _, evt := range table {
		if strings.EqualFold(name, evt.Name) {
			return evt.Flag, true
		}
	}
	return 0, false
}

// Names returns the names of every flag set in mask, in table order.
func Names(mask int16) []string {
	names := make([]string, 0, 4)
	for _, evt := range table {
		if evt.Flag&mask != 0 {
			names = append(names, evt.Name)
		}
	}
	return names
}

// RequestableNames lists the events a caller can usefully ask for on
// this platform.
func RequestableNames() []string {
	return names(table[:len(table)-3])
}

// ResultOnlyNames lists the always-polled flags.
func ResultOnlyNames() []string {
	return names(table[len(table)-3:])
}

func names(evts []Event) []string {
	out := make([]string, 0, len(evts))
	for _, evt := range evts {
		out = append(out, evt.Name)
	}
	return out
}
