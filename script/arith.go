package script

import "errors"

// ErrArithOverflow/ErrArithUnderflow/ErrDivByZero/ErrShiftRange are the
// failure modes for the fixed machine-word (64-bit, unsigned) arithmetic
// opcodes. All arithmetic is modular-checked: there is no wraparound,
// only script failure.
var (
	ErrArithOverflow  = errors.New("script: arithmetic overflow")
	ErrArithUnderflow = errors.New("script: arithmetic underflow")
	ErrDivByZero      = errors.New("script: division by zero")
	ErrShiftRange     = errors.New("script: shift amount out of range")
)

func checkedAdd(a, b uint64) (uint64, error) {
	r := a + b
	if r < a {
		return 0, ErrArithOverflow
	}
	return r, nil
}

func checkedSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrArithUnderflow
	}
	return a - b, nil
}

func checkedMul(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/a != b {
		return 0, ErrArithOverflow
	}
	return r, nil
}

func checkedDiv(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	return a / b, nil
}

func checkedMod(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	return a % b, nil
}

func popNum(ctx *Context) (uint64, error) {
	e, err := ctx.Frame.Main.Pop()
	if err != nil {
		return 0, err
	}
	if e.Kind != KindNum {
		return 0, ErrTypeMismatch
	}
	return e.NumValue(), nil
}

func popNum2(ctx *Context) (a, b uint64, err error) {
	b, err = popNum(ctx)
	if err != nil {
		return
	}
	a, err = popNum(ctx)
	return
}

func execUnaryArith(f func(v uint64) (uint64, error)) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		v, err := popNum(ctx)
		if err != nil {
			return err
		}
		r, err := f(v)
		if err != nil {
			return err
		}
		return ctx.Frame.PushMain(Num(r))
	}
}

func execBinaryArith(f func(a, b uint64) (uint64, error)) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		a, b, err := popNum2(ctx)
		if err != nil {
			return err
		}
		r, err := f(a, b)
		if err != nil {
			return err
		}
		return ctx.Frame.PushMain(Num(r))
	}
}

func execNot(ctx *Context, _ bool) error {
	v, err := popNum(ctx)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(Num(boolNum(v == 0)))
}

func exec0NotEqual(ctx *Context, _ bool) error {
	v, err := popNum(ctx)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(Num(boolNum(v != 0)))
}

func execBool(f func(a, b bool) bool) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		a, b, err := popNum2(ctx)
		if err != nil {
			return err
		}
		return ctx.Frame.PushMain(Num(boolNum(f(a != 0, b != 0))))
	}
}

func execNumCmp(pred func(cmp int) bool) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		a, b, err := popNum2(ctx)
		if err != nil {
			return err
		}
		return ctx.Frame.PushMain(Num(boolNum(pred(cmpU64(a, b)))))
	}
}

func execNumCmpVerify(pred func(cmp int) bool) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		a, b, err := popNum2(ctx)
		if err != nil {
			return err
		}
		if !pred(cmpU64(a, b)) {
			return ErrNotVerified
		}
		return nil
	}
}

func execMinMax(wantMin bool) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		a, b, err := popNum2(ctx)
		if err != nil {
			return err
		}
		r := a
		if wantMin == (b < a) {
			r = b
		}
		return ctx.Frame.PushMain(Num(r))
	}
}

func execWithin(ctx *Context, _ bool) error {
	hi, err := popNum(ctx)
	if err != nil {
		return err
	}
	lo, err := popNum(ctx)
	if err != nil {
		return err
	}
	x, err := popNum(ctx)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(Num(boolNum(lo <= x && x < hi)))
}

func execShift(left bool) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		n, err := popNum(ctx)
		if err != nil {
			return err
		}
		if n >= WordBits {
			return ErrShiftRange
		}
		v, err := popNum(ctx)
		if err != nil {
			return err
		}
		if left {
			return ctx.Frame.PushMain(Num(v << n))
		}
		return ctx.Frame.PushMain(Num(v >> n))
	}
}

func execBitwise(f func(a, b uint64) uint64) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		a, b, err := popNum2(ctx)
		if err != nil {
			return err
		}
		return ctx.Frame.PushMain(Num(f(a, b)))
	}
}

func execInvert(ctx *Context, _ bool) error {
	v, err := popNum(ctx)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(Num(^v))
}

func execEqual(ctx *Context, _ bool) error {
	b, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	a, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(Num(boolNum(a.Equal(b))))
}

func execEqualVerify(ctx *Context, _ bool) error {
	b, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	a, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	if !a.Equal(b) {
		return ErrNotVerified
	}
	return nil
}

func boolNum(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func cmpU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
