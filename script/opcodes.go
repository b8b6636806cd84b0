package script

// Opcode numeric encoding. Values are assigned once and never reused;
// this table is the stable single-byte mapping required by the wire
// layout (spec.md §6).
const (
	OpFALSE = 0 // OP_0, alias for pushing Num(0)
	Op1     = 1
	Op2     = 2
	Op3     = 3
	Op4     = 4
	Op5     = 5
	Op6     = 6
	Op7     = 7
	Op8     = 8
	Op9     = 9
	Op10    = 10
	Op11    = 11
	Op12    = 12
	Op13    = 13
	Op14    = 14
	Op15    = 15
	Op16    = 16

	OpNOP    = 17
	OpIF     = 18
	OpNOTIF  = 19
	OpELSE   = 20
	OpENDIF  = 21
	OpVERIFY = 22
	OpRETURN = 23

	OpTOALTSTACK   = 24
	OpFROMALTSTACK = 25
	Op2DROP        = 26
	Op2DUP         = 27
	Op3DUP         = 28
	Op2OVER        = 29
	Op2ROT         = 30
	Op2SWAP        = 31
	OpIFDUP        = 32
	OpDEPTH        = 33
	OpDROP         = 34
	OpDUP          = 35
	OpNIP          = 36
	OpOVER         = 37
	OpPICK         = 38
	OpROLL         = 39
	OpROT          = 40
	OpSWAP         = 41
	OpTUCK         = 42

	OpCAT    = 43
	OpSUBSTR = 44
	OpLEFT   = 45
	OpRIGHT  = 46
	OpSIZE   = 47

	OpINVERT      = 48
	OpAND         = 49
	OpOR          = 50
	OpXOR         = 51
	OpEQUAL       = 52
	OpEQUALVERIFY = 53

	Op1ADD                = 54
	Op1SUB                = 55
	Op2MUL                = 56
	Op2DIV                = 57
	OpNOT                 = 58
	Op0NOTEQUAL           = 59
	OpADD                 = 60
	OpSUB                 = 61
	OpMUL                 = 62
	OpDIV                 = 63
	OpMOD                 = 64
	OpLSHIFT              = 65
	OpRSHIFT              = 66
	OpBOOLAND             = 67
	OpBOOLOR              = 68
	OpNUMEQUAL            = 69
	OpNUMEQUALVERIFY      = 70
	OpNUMNOTEQUAL         = 71
	OpLESSTHAN            = 72
	OpGREATERTHAN         = 73
	OpLESSTHANOREQUAL     = 74
	OpGREATERTHANOREQUAL  = 75
	OpMIN                 = 76
	OpMAX                 = 77
	OpWITHIN              = 78

	OpCREATE = 79

	OpSHA3                = 80
	OpHASH256             = 81
	OpHASH256V0           = 82
	OpHASH256TEMP         = 83
	OpCHECKSIG            = 84
	OpCHECKSIGVERIFY      = 85
	OpCHECKMULTISIG       = 86
	OpCHECKMULTISIGVERIFY = 87
)

// OpCode describes one opcode: its mnemonic name, byte value and handler.
type OpCode struct {
	Name  string
	Value byte
	// Exec performs the opcode's stack operations. executing reports
	// whether the current branch is active (needed only by OP_IF/OP_NOTIF,
	// which must consult it before popping); all other handlers ignore it.
	Exec func(ctx *Context, executing bool) error
}

// opcodeConst pushes the fixed numeric constant v.
func opcodeConst(v uint64) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		return ctx.Frame.PushMain(Num(v))
	}
}

// OpCodes is the complete, stable opcode table.
var OpCodes = []*OpCode{
	{"OP_0", OpFALSE, opcodeConst(0)},
	{"OP_1", Op1, opcodeConst(1)},
	{"OP_2", Op2, opcodeConst(2)},
	{"OP_3", Op3, opcodeConst(3)},
	{"OP_4", Op4, opcodeConst(4)},
	{"OP_5", Op5, opcodeConst(5)},
	{"OP_6", Op6, opcodeConst(6)},
	{"OP_7", Op7, opcodeConst(7)},
	{"OP_8", Op8, opcodeConst(8)},
	{"OP_9", Op9, opcodeConst(9)},
	{"OP_10", Op10, opcodeConst(10)},
	{"OP_11", Op11, opcodeConst(11)},
	{"OP_12", Op12, opcodeConst(12)},
	{"OP_13", Op13, opcodeConst(13)},
	{"OP_14", Op14, opcodeConst(14)},
	{"OP_15", Op15, opcodeConst(15)},
	{"OP_16", Op16, opcodeConst(16)},

	{"OP_NOP", OpNOP, func(ctx *Context, _ bool) error { return nil }},
	{"OP_IF", OpIF, execIf(false)},
	{"OP_NOTIF", OpNOTIF, execIf(true)},
	{"OP_ELSE", OpELSE, func(ctx *Context, _ bool) error { return ctx.Cond.ToggleTop() }},
	{"OP_ENDIF", OpENDIF, func(ctx *Context, _ bool) error { return ctx.Cond.Pop() }},
	{"OP_VERIFY", OpVERIFY, execVerify},
	{"OP_RETURN", OpRETURN, func(ctx *Context, _ bool) error { return ErrScriptReturn }},

	{"OP_TOALTSTACK", OpTOALTSTACK, execToAltStack},
	{"OP_FROMALTSTACK", OpFROMALTSTACK, execFromAltStack},
	{"OP_2DROP", Op2DROP, exec2Drop},
	{"OP_2DUP", Op2DUP, execDupN(2)},
	{"OP_3DUP", Op3DUP, execDupN(3)},
	{"OP_2OVER", Op2OVER, exec2Over},
	{"OP_2ROT", Op2ROT, exec2Rot},
	{"OP_2SWAP", Op2SWAP, exec2Swap},
	{"OP_IFDUP", OpIFDUP, execIfDup},
	{"OP_DEPTH", OpDEPTH, execDepth},
	{"OP_DROP", OpDROP, execDrop},
	{"OP_DUP", OpDUP, execDupN(1)},
	{"OP_NIP", OpNIP, execNip},
	{"OP_OVER", OpOVER, execOver},
	{"OP_PICK", OpPICK, execPick},
	{"OP_ROLL", OpROLL, execRoll},
	{"OP_ROT", OpROT, execRot},
	{"OP_SWAP", OpSWAP, execSwap},
	{"OP_TUCK", OpTUCK, execTuck},

	{"OP_CAT", OpCAT, execCat},
	{"OP_SUBSTR", OpSUBSTR, execSubstr},
	{"OP_LEFT", OpLEFT, execLeft},
	{"OP_RIGHT", OpRIGHT, execRight},
	{"OP_SIZE", OpSIZE, execSize},

	{"OP_INVERT", OpINVERT, execInvert},
	{"OP_AND", OpAND, execBitwise(func(a, b uint64) uint64 { return a & b })},
	{"OP_OR", OpOR, execBitwise(func(a, b uint64) uint64 { return a | b })},
	{"OP_XOR", OpXOR, execBitwise(func(a, b uint64) uint64 { return a ^ b })},
	{"OP_EQUAL", OpEQUAL, execEqual},
	{"OP_EQUALVERIFY", OpEQUALVERIFY, execEqualVerify},

	{"OP_1ADD", Op1ADD, execUnaryArith(func(v uint64) (uint64, error) { return checkedAdd(v, 1) })},
	{"OP_1SUB", Op1SUB, execUnaryArith(func(v uint64) (uint64, error) { return checkedSub(v, 1) })},
	{"OP_2MUL", Op2MUL, execUnaryArith(func(v uint64) (uint64, error) { return checkedMul(v, 2) })},
	{"OP_2DIV", Op2DIV, execUnaryArith(func(v uint64) (uint64, error) { return v / 2, nil })},
	{"OP_NOT", OpNOT, execNot},
	{"OP_0NOTEQUAL", Op0NOTEQUAL, exec0NotEqual},
	{"OP_ADD", OpADD, execBinaryArith(checkedAdd)},
	{"OP_SUB", OpSUB, execBinaryArith(checkedSub)},
	{"OP_MUL", OpMUL, execBinaryArith(checkedMul)},
	{"OP_DIV", OpDIV, execBinaryArith(checkedDiv)},
	{"OP_MOD", OpMOD, execBinaryArith(checkedMod)},
	{"OP_LSHIFT", OpLSHIFT, execShift(true)},
	{"OP_RSHIFT", OpRSHIFT, execShift(false)},
	{"OP_BOOLAND", OpBOOLAND, execBool(func(a, b bool) bool { return a && b })},
	{"OP_BOOLOR", OpBOOLOR, execBool(func(a, b bool) bool { return a || b })},
	{"OP_NUMEQUAL", OpNUMEQUAL, execNumCmp(func(c int) bool { return c == 0 })},
	{"OP_NUMEQUALVERIFY", OpNUMEQUALVERIFY, execNumCmpVerify(func(c int) bool { return c == 0 })},
	{"OP_NUMNOTEQUAL", OpNUMNOTEQUAL, execNumCmp(func(c int) bool { return c != 0 })},
	{"OP_LESSTHAN", OpLESSTHAN, execNumCmp(func(c int) bool { return c < 0 })},
	{"OP_GREATERTHAN", OpGREATERTHAN, execNumCmp(func(c int) bool { return c > 0 })},
	{"OP_LESSTHANOREQUAL", OpLESSTHANOREQUAL, execNumCmp(func(c int) bool { return c <= 0 })},
	{"OP_GREATERTHANOREQUAL", OpGREATERTHANOREQUAL, execNumCmp(func(c int) bool { return c >= 0 })},
	{"OP_MIN", OpMIN, execMinMax(true)},
	{"OP_MAX", OpMAX, execMinMax(false)},
	{"OP_WITHIN", OpWITHIN, execWithin},

	{"OP_CREATE", OpCREATE, func(ctx *Context, _ bool) error { return nil }},

	{"OP_SHA3", OpSHA3, execSha3},
	{"OP_HASH256", OpHASH256, execHash256(AddressCurrent)},
	{"OP_HASH256_V0", OpHASH256V0, execHash256(AddressV0)},
	{"OP_HASH256_TEMP", OpHASH256TEMP, execHash256(AddressTemp)},
	{"OP_CHECKSIG", OpCHECKSIG, execCheckSig},
	{"OP_CHECKSIGVERIFY", OpCHECKSIGVERIFY, execCheckSigVerify},
	{"OP_CHECKMULTISIG", OpCHECKMULTISIG, execCheckMultiSig},
	{"OP_CHECKMULTISIGVERIFY", OpCHECKMULTISIGVERIFY, execCheckMultiSigVerify},
}

var opcodeByValue = func() map[byte]*OpCode {
	m := make(map[byte]*OpCode, len(OpCodes))
	for _, oc := range OpCodes {
		m[oc.Value] = oc
	}
	return m
}()

// GetOpcode returns the opcode descriptor for a byte value, or nil if the
// value names no known opcode.
func GetOpcode(v byte) *OpCode {
	return opcodeByValue[v]
}
