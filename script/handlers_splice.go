package script

// asBytesLike returns the raw payload of an entry usable by splice
// opcodes (Bytes or PubKeyHash); anything else is a type mismatch.
func asBytesLike(e StackEntry) ([]byte, error) {
	switch e.Kind {
	case KindBytes, KindPubKeyHash:
		return e.Payload(), nil
	default:
		return nil, ErrTypeMismatch
	}
}

func execCat(ctx *Context, _ bool) error {
	b, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	a, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	ab, err := asBytesLike(a)
	if err != nil {
		return err
	}
	bb, err := asBytesLike(b)
	if err != nil {
		return err
	}
	if len(ab)+len(bb) > MaxScriptItemSize {
		return ErrItemTooLarge
	}
	out := make([]byte, 0, len(ab)+len(bb))
	out = append(out, ab...)
	out = append(out, bb...)
	return ctx.Frame.PushMain(Bytes(out))
}

func popRange(ctx *Context) (data []byte, start, size int, err error) {
	sizeE, err := ctx.Frame.Main.Pop()
	if err != nil {
		return nil, 0, 0, err
	}
	startE, err := ctx.Frame.Main.Pop()
	if err != nil {
		return nil, 0, 0, err
	}
	dataE, err := ctx.Frame.Main.Pop()
	if err != nil {
		return nil, 0, 0, err
	}
	if sizeE.Kind != KindNum || startE.Kind != KindNum {
		return nil, 0, 0, ErrTypeMismatch
	}
	data, err = asBytesLike(dataE)
	if err != nil {
		return nil, 0, 0, err
	}
	return data, int(startE.NumValue()), int(sizeE.NumValue()), nil
}

func execSubstr(ctx *Context, _ bool) error {
	data, start, size, err := popRange(ctx)
	if err != nil {
		return err
	}
	if start < 0 || size < 0 || start+size > len(data) {
		return ErrStackIndex
	}
	return ctx.Frame.PushMain(Bytes(data[start : start+size]))
}

func execLeft(ctx *Context, _ bool) error {
	sizeE, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	dataE, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	if sizeE.Kind != KindNum {
		return ErrTypeMismatch
	}
	data, err := asBytesLike(dataE)
	if err != nil {
		return err
	}
	n := int(sizeE.NumValue())
	if n < 0 || n > len(data) {
		return ErrStackIndex
	}
	return ctx.Frame.PushMain(Bytes(data[:n]))
}

func execRight(ctx *Context, _ bool) error {
	sizeE, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	dataE, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	if sizeE.Kind != KindNum {
		return ErrTypeMismatch
	}
	data, err := asBytesLike(dataE)
	if err != nil {
		return err
	}
	n := int(sizeE.NumValue())
	if n < 0 || n > len(data) {
		return ErrStackIndex
	}
	return ctx.Frame.PushMain(Bytes(data[len(data)-n:]))
}

func execSize(ctx *Context, _ bool) error {
	v, err := ctx.Frame.Main.Peek()
	if err != nil {
		return err
	}
	data, err := asBytesLike(v)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(Num(uint64(len(data))))
}
