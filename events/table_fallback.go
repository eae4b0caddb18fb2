//go:build unix && !linux && !darwin

package events

// Only the POSIX base events are guaranteed here.
var platformEvents []Event
