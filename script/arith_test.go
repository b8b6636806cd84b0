package script

import "testing"

func runScript(t *testing.T, s *Script) (bool, error) {
	t.Helper()
	return Interpret(s)
}

func TestArithOpcodes(t *testing.T) {
	cases := []struct {
		name string
		s    *Script
		want bool
	}{
		{"1ADD", New().Add(Num(4)).Add(Op(Op1ADD)).Add(Num(5)).Add(Op(OpNUMEQUAL)), true},
		{"1SUB underflow guard ok", New().Add(Num(1)).Add(Op(Op1SUB)).Add(Num(0)).Add(Op(OpNUMEQUAL)), true},
		{"SUB fails when b>a", New().Add(Num(1)).Add(Num(5)).Add(Op(OpSUB)), false},
		{"MUL", New().Add(Num(6)).Add(Num(7)).Add(Op(OpMUL)).Add(Num(42)).Add(Op(OpNUMEQUAL)), true},
		{"DIV by zero fails", New().Add(Num(1)).Add(Num(0)).Add(Op(OpDIV)), false},
		{"MOD", New().Add(Num(10)).Add(Num(3)).Add(Op(OpMOD)).Add(Num(1)).Add(Op(OpNUMEQUAL)), true},
		{"BOOLAND", New().Add(Num(1)).Add(Num(0)).Add(Op(OpBOOLAND)), false},
		{"LESSTHAN", New().Add(Num(2)).Add(Num(3)).Add(Op(OpLESSTHAN)), true},
		{"MIN", New().Add(Num(9)).Add(Num(4)).Add(Op(OpMIN)).Add(Num(4)).Add(Op(OpNUMEQUAL)), true},
		{"MAX", New().Add(Num(9)).Add(Num(4)).Add(Op(OpMAX)).Add(Num(9)).Add(Op(OpNUMEQUAL)), true},
		{"WITHIN true", New().Add(Num(5)).Add(Num(0)).Add(Num(10)).Add(Op(OpWITHIN)), true},
		{"WITHIN excludes hi", New().Add(Num(10)).Add(Num(0)).Add(Num(10)).Add(Op(OpWITHIN)), false},
		{"LSHIFT", New().Add(Num(1)).Add(Num(4)).Add(Op(OpLSHIFT)).Add(Num(16)).Add(Op(OpNUMEQUAL)), true},
		{"LSHIFT out of range fails", New().Add(Num(1)).Add(Num(64)).Add(Op(OpLSHIFT)), false},
		{"AND", New().Add(Num(0b110)).Add(Num(0b011)).Add(Op(OpAND)).Add(Num(0b010)).Add(Op(OpNUMEQUAL)), true},
		{"INVERT", New().Add(Num(0)).Add(Op(OpINVERT)).Add(Num(^uint64(0))).Add(Op(OpNUMEQUAL)), true},
		{"EQUAL bytes", New().Add(Bytes([]byte("a"))).Add(Bytes([]byte("a"))).Add(Op(OpEQUAL)), true},
		{"EQUAL mismatched kind", New().Add(Num(1)).Add(Bytes([]byte{1})).Add(Op(OpEQUAL)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ok, err := runScript(t, c.s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != c.want {
				t.Errorf("got %v, want %v", ok, c.want)
			}
		})
	}
}

func TestArithOverflowDetection(t *testing.T) {
	if _, err := checkedAdd(^uint64(0), 1); err != ErrArithOverflow {
		t.Fatalf("checkedAdd overflow: got %v", err)
	}
	if _, err := checkedSub(1, 5); err != ErrArithUnderflow {
		t.Fatalf("checkedSub underflow: got %v", err)
	}
	if _, err := checkedMul(1<<40, 1<<40); err != ErrArithOverflow {
		t.Fatalf("checkedMul overflow: got %v", err)
	}
	if _, err := checkedDiv(1, 0); err != ErrDivByZero {
		t.Fatalf("checkedDiv by zero: got %v", err)
	}
}
