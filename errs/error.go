package errs

import (
	"errors"
	"fmt"

	"github.com/mentalisttraceur/poll/consts"
)

// PollErr carries the process exit code alongside the diagnostic. It
// implements urfave/cli's ExitCoder, so returning one from the app
// action both prints the diagnostic to stderr and sets the exit code.
// The "no event" and "unasked event" outcomes are message-less: they
// exist only to carry their code, nothing gets printed for them.
type PollErr struct {
	msg  string
	code int
	err  error
}

// Error 输出格式：
// 错误类型描述 ( => 包含错误详细描述 )
// 解释：(xxx) 表示可选内容
func (pe *PollErr) Error() string {
	if pe.msg == "" {
		return ""
	}
	details := pe.msg
	if pe.err != nil {
		details += fmt.Sprintf(" => %s", pe.err)
	}
	return details
}

func (pe *PollErr) ExitCode() int {
	return pe.code
}

func (pe *PollErr) WithErr(err error) *PollErr {
	pe.err = err
	return pe
}

func GetCode(err error) int {
	if err == nil {
		return consts.ExitAskedEventOrInfo
	}
	var pe *PollErr
	if errors.As(err, &pe) {
		return pe.code
	}
	return consts.ExitExecutionError
}

func NewNeedPollErr() *PollErr {
	return &PollErr{msg: "need file descriptor or event argument", code: consts.ExitUsageError}
}

func NewNeedTimeoutErr() *PollErr {
	return &PollErr{msg: "need timeout argument", code: consts.ExitUsageError}
}

func NewBadOptionErr() *PollErr {
	return &PollErr{msg: "bad option", code: consts.ExitUsageError}
}

func NewBadTimeoutErr(timeout string) *PollErr {
	return &PollErr{msg: fmt.Sprintf("bad timeout: %s", timeout), code: consts.ExitUsageError}
}

func NewBadArgumentErr(argument string) *PollErr {
	return &PollErr{msg: fmt.Sprintf("bad argument: %s", argument), code: consts.ExitUsageError}
}

func NewPollFailedErr() *PollErr {
	return &PollErr{msg: "error polling", code: consts.ExitExecutionError}
}

func NewWriteOutputErr() *PollErr {
	return &PollErr{msg: "error writing output", code: consts.ExitExecutionError}
}

func NewUnaskedEventErr() *PollErr {
	return &PollErr{code: consts.ExitUnaskedEvent}
}

func NewNoEventErr() *PollErr {
	return &PollErr{code: consts.ExitNoEvent}
}
