package logs

import (
	"go.uber.org/zap"

	"github.com/mentalisttraceur/poll/utils"
)

var Logger *zap.Logger

// Standard error belongs to the user here (diagnostics only), so the
// logger stays silent unless POLL_ENV=debug asks for traces.
func init() {
	if !utils.IsDebug() {
		Logger = zap.NewNop()
		return
	}

	var err error
	Logger, err = zap.NewDevelopment(zap.AddCaller())
	if err != nil {
		panic(err)
	}
}

func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}
