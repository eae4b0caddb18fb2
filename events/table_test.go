package events

import (
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

func TestParsePrintRoundTrip(t *testing.T) {
	for _, evt := range Table() {
		flag, ok := Parse(evt.Name)
		if !ok {
			t.Errorf("printable event %s does not parse", evt.Name)
			continue
		}
		if flag != evt.Flag {
			t.Errorf("parse %s: got %#x, want %#x", evt.Name, flag, evt.Flag)
		}

		printed := false
		for _, name := range Names(evt.Flag) {
			if name == evt.Name {
				printed = true
			}
		}
		if !printed {
			t.Errorf("parseable event %s does not print", evt.Name)
		}
	}
}

func TestParseIgnoresCase(t *testing.T) {
	for _, name := range []string{"in", "In", "IN", "out", "pri", "nval", "hup", "err"} {
		flag, ok := Parse(name)
		if !ok {
			t.Errorf("expect %s to parse", name)
			continue
		}
		upper, _ := Parse(strings.ToUpper(name))
		if flag != upper {
			t.Errorf("case changes meaning of %s", name)
		}
	}

	if _, ok := Parse("FROBNICATE"); ok {
		t.Error("expect unknown event name to be rejected")
	}
	if _, ok := Parse(""); ok {
		t.Error("expect empty event name to be rejected")
	}
}

func TestNamesFollowTableOrder(t *testing.T) {
	// IN, PRI and HUP alias nothing else on any supported platform
	// (unlike OUT, which doubles as WRNORM on darwin)
	mask := int16(unix.POLLHUP | unix.POLLPRI | unix.POLLIN)
	names := Names(mask)
	want := []string{"IN", "PRI", "HUP"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestResultOnlyEventsLast(t *testing.T) {
	tail := Table()[len(Table())-3:]
	want := []string{"ERR", "HUP", "NVAL"}
	for i, evt := range tail {
		if evt.Name != want[i] {
			t.Errorf("table tail entry %d is %s, want %s", i, evt.Name, want[i])
		}
	}
	if got := ResultOnlyNames(); len(got) != 3 {
		t.Errorf("result-only names: %v", got)
	}
	for _, name := range RequestableNames() {
		if name == "ERR" || name == "HUP" || name == "NVAL" {
			t.Errorf("%s should not be listed as requestable", name)
		}
	}
}
