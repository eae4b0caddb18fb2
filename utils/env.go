package utils

import (
	"os"
)

func Env() string {
	return os.Getenv("POLL_ENV")
}

func IsDebug() bool {
	return Env() == "debug"
}
