package script

import (
	"errors"

	"github.com/Yoga07/NAOM/logger"
)

// ErrInvalidOpcode is returned when a script entry names an opcode value
// outside the stable table (spec.md §4.2, "Any unknown opcode -> abort").
var ErrInvalidOpcode = errors.New("script: invalid opcode")

// Context is the mutable runtime state threaded through one evaluation:
// the two stacks and the condition stack. A fresh Context is built per
// run; nothing here is shared across evaluations (spec.md §5).
type Context struct {
	Frame *Frame
	Cond  *ConditionStack
}

// NewContext returns an empty evaluation context.
func NewContext() *Context {
	return &Context{Frame: NewFrame(), Cond: NewConditionStack()}
}

// isControlFlow reports whether an opcode maintains the condition stack
// and therefore runs regardless of the current branch's executing state.
func isControlFlow(code byte) bool {
	switch code {
	case OpIF, OpNOTIF, OpELSE, OpENDIF:
		return true
	default:
		return false
	}
}

// Interpret evaluates a script and returns the verdict: true iff the
// script is structurally valid, every step succeeds, and at termination
// the top of the main stack exists and is not Num(0). An empty script
// returns true (spec.md §4.1).
func Interpret(s *Script) (bool, error) {
	if !s.Valid() {
		logger.Printf(logger.WARN, "[script] structural limits exceeded (size=%d ops=%d)", s.Size(), s.OpCount())
		return false, nil
	}
	if len(s.Entries) == 0 {
		return true, nil
	}

	ctx := NewContext()
	for _, e := range s.Entries {
		executing := ctx.Cond.AllTrue()

		if !e.IsOp() {
			if !executing {
				continue
			}
			if err := ctx.Frame.PushMain(e); err != nil {
				logger.Printf(logger.DBG, "[script] push failed: %v", err)
				return false, nil
			}
			continue
		}

		code := e.OpCode()
		if !executing && !isControlFlow(code) {
			continue
		}

		oc := GetOpcode(code)
		if oc == nil {
			logger.Printf(logger.WARN, "[script] unknown opcode %d", code)
			return false, nil
		}
		if err := oc.Exec(ctx, executing); err != nil {
			logger.Printf(logger.DBG, "[script] %s failed: %v", oc.Name, err)
			return false, nil
		}
		if err := ctx.Frame.checkSize(); err != nil {
			return false, nil
		}
	}

	if ctx.Cond.Size() != 0 {
		logger.Printf(logger.WARN, "[script] unterminated IF at end of script")
		return false, nil
	}

	top, err := ctx.Frame.Main.Peek()
	if err != nil {
		return false, nil
	}
	return !top.IsZero(), nil
}
