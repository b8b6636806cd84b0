package script

import "errors"

// ErrTypeMismatch signals an opcode was applied to an entry of the wrong
// Kind (e.g. OP_ADD on a Bytes entry).
var ErrTypeMismatch = errors.New("script: type mismatch")

// ErrNotVerified signals OP_VERIFY (or an xVERIFY variant) saw a falsy top.
var ErrNotVerified = errors.New("script: VERIFY failed")

// ErrScriptReturn is the fixed failure raised by OP_RETURN.
var ErrScriptReturn = errors.New("script: OP_RETURN")

func execIf(notif bool) func(ctx *Context, executing bool) error {
	return func(ctx *Context, executing bool) error {
		val := false
		if executing {
			e, err := ctx.Frame.Main.Pop()
			if err != nil {
				return err
			}
			if e.Kind != KindNum {
				return ErrTypeMismatch
			}
			val = e.NumValue() != 0
			if notif {
				val = !val
			}
		}
		ctx.Cond.Push(val)
		return nil
	}
}

func execVerify(ctx *Context, _ bool) error {
	e, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	if e.Kind != KindNum || e.NumValue() == 0 {
		return ErrNotVerified
	}
	return nil
}

func execToAltStack(ctx *Context, _ bool) error {
	e, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	return ctx.Frame.PushAlt(e)
}

func execFromAltStack(ctx *Context, _ bool) error {
	e, err := ctx.Frame.Alt.Pop()
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(e)
}

func exec2Drop(ctx *Context, _ bool) error {
	if _, err := ctx.Frame.Main.Pop(); err != nil {
		return err
	}
	_, err := ctx.Frame.Main.Pop()
	return err
}

func execDupN(n int) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		return ctx.Frame.Main.Dup(n)
	}
}

func exec2Over(ctx *Context, _ bool) error {
	v, err := ctx.Frame.Main.PeekAt(3)
	if err != nil {
		return err
	}
	if err := ctx.Frame.PushMain(v); err != nil {
		return err
	}
	v, err = ctx.Frame.Main.PeekAt(3)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(v)
}

func exec2Rot(ctx *Context, _ bool) error {
	v, err := ctx.Frame.Main.RemoveAt(5)
	if err != nil {
		return err
	}
	if err := ctx.Frame.PushMain(v); err != nil {
		return err
	}
	v, err = ctx.Frame.Main.RemoveAt(5)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(v)
}

func exec2Swap(ctx *Context, _ bool) error {
	v, err := ctx.Frame.Main.RemoveAt(3)
	if err != nil {
		return err
	}
	if err := ctx.Frame.PushMain(v); err != nil {
		return err
	}
	v, err = ctx.Frame.Main.RemoveAt(3)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(v)
}

func execIfDup(ctx *Context, _ bool) error {
	v, err := ctx.Frame.Main.Peek()
	if err != nil {
		return err
	}
	if v.Kind == KindNum && v.NumValue() != 0 {
		return ctx.Frame.PushMain(v)
	}
	return nil
}

func execDepth(ctx *Context, _ bool) error {
	return ctx.Frame.PushMain(Num(uint64(ctx.Frame.Main.Len())))
}

func execDrop(ctx *Context, _ bool) error {
	_, err := ctx.Frame.Main.Pop()
	return err
}

func execNip(ctx *Context, _ bool) error {
	v, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	if _, err = ctx.Frame.Main.Pop(); err != nil {
		return err
	}
	return ctx.Frame.PushMain(v)
}

func execOver(ctx *Context, _ bool) error {
	v, err := ctx.Frame.Main.PeekAt(1)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(v)
}

func indexEntry(ctx *Context) (int, error) {
	e, err := ctx.Frame.Main.Pop()
	if err != nil {
		return 0, err
	}
	if e.Kind != KindNum {
		return 0, ErrTypeMismatch
	}
	n := e.NumValue()
	if n > uint64(ctx.Frame.Main.Len()) {
		return 0, ErrStackIndex
	}
	return int(n), nil
}

func execPick(ctx *Context, _ bool) error {
	n, err := indexEntry(ctx)
	if err != nil {
		return err
	}
	v, err := ctx.Frame.Main.PeekAt(n)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(v)
}

func execRoll(ctx *Context, _ bool) error {
	n, err := indexEntry(ctx)
	if err != nil {
		return err
	}
	v, err := ctx.Frame.Main.RemoveAt(n)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(v)
}

func execRot(ctx *Context, _ bool) error {
	v, err := ctx.Frame.Main.RemoveAt(2)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(v)
}

func execSwap(ctx *Context, _ bool) error {
	v1, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	v2, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	if err := ctx.Frame.PushMain(v1); err != nil {
		return err
	}
	return ctx.Frame.PushMain(v2)
}

func execTuck(ctx *Context, _ bool) error {
	v1, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	v2, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	if err := ctx.Frame.PushMain(v1); err != nil {
		return err
	}
	if err := ctx.Frame.PushMain(v2); err != nil {
		return err
	}
	return ctx.Frame.PushMain(v1)
}
