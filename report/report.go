package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mentalisttraceur/poll/events"
	"github.com/mentalisttraceur/poll/poller"
)

// Write prints one line per descriptor with a nonzero result mask: the
// descriptor number followed by the matched event names in table
// order. ready is the count the syscall returned; iteration stops once
// that many results have been consumed, since the rest of the groups
// are untouched zero entries.
//
// The returned bool says whether any result overlapped the mask the
// caller asked for. That decides between the asked-event and
// unasked-event exit codes: ERR, HUP and NVAL can show up without
// being requested.
func Write(w io.Writer, groups []poller.Group, ready int) (bool, error) {
	asked := false
	for _, group := range groups {
		if ready == 0 {
			break
		}
		if group.Revents == 0 {
			continue
		}
		ready--

		// one Write call per line, so lines stay whole
		var line strings.Builder
		line.WriteString(strconv.Itoa(int(group.Fd)))
		for _, name := range events.Names(group.Revents) {
			line.WriteByte(' ')
			line.WriteString(name)
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return asked, errors.Wrap(err, "write result line")
		}

		if group.Revents&group.Events != 0 {
			asked = true
		}
	}
	return asked, nil
}
