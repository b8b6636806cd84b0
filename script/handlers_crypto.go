package script

import (
	"github.com/Yoga07/NAOM/crypto"
)

// Address-encoding aliases, re-exported so templates.go and callers don't
// need to import the crypto package directly for this one concern.
const (
	AddressCurrent = crypto.Current
	AddressV0      = crypto.V0
	AddressTemp    = crypto.Temp
)

func execSha3(ctx *Context, _ bool) error {
	v, err := ctx.Frame.Main.Pop()
	if err != nil {
		return err
	}
	raw, err := rawBytesOf(v)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(Bytes([]byte(crypto.SHA3256Hex(raw))))
}

// rawBytesOf returns the bytes OP_SHA3 hashes: Bytes/Signature/PubKey/
// PubKeyHash entries may all be hashed; Num and Op may not (spec.md §4.2).
func rawBytesOf(e StackEntry) ([]byte, error) {
	switch e.Kind {
	case KindBytes, KindPubKeyHash, KindPubKey, KindSignature:
		return e.Payload(), nil
	default:
		return nil, ErrTypeMismatch
	}
}

func execHash256(version crypto.Version) func(ctx *Context, executing bool) error {
	return func(ctx *Context, _ bool) error {
		v, err := ctx.Frame.Main.Pop()
		if err != nil {
			return err
		}
		if v.Kind != KindPubKey {
			return ErrTypeMismatch
		}
		addr := crypto.AddressFor(v.Payload(), version)
		return ctx.Frame.PushMain(PubKeyHash([]byte(addr)))
	}
}

// checkSig pops pk, sig, msg (in that order) and verifies the Ed25519
// signature. Fails (type mismatch) only on missing/wrong-typed operands;
// a clean signature mismatch is reported via the bool return, not an
// error, per spec.md §4.2 "OP_CHECKSIG ... Fail only on missing/wrong
// types."
func checkSig(ctx *Context) (bool, error) {
	pk, err := ctx.Frame.Main.Pop()
	if err != nil {
		return false, err
	}
	sig, err := ctx.Frame.Main.Pop()
	if err != nil {
		return false, err
	}
	msg, err := ctx.Frame.Main.Pop()
	if err != nil {
		return false, err
	}
	if pk.Kind != KindPubKey || sig.Kind != KindSignature || msg.Kind != KindBytes {
		return false, ErrTypeMismatch
	}
	return crypto.Verify(pk.Payload(), msg.Payload(), sig.Payload()), nil
}

func execCheckSig(ctx *Context, _ bool) error {
	valid, err := checkSig(ctx)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(Num(boolNum(valid)))
}

func execCheckSigVerify(ctx *Context, _ bool) error {
	valid, err := checkSig(ctx)
	if err != nil {
		return err
	}
	if !valid {
		return ErrNotVerified
	}
	return nil
}

// checkMultiSig implements OP_CHECKMULTISIG: pop n, then n pubkeys, then
// m, then m signatures, then msg; every signature must match some pubkey,
// each pubkey usable at most once (a bipartite matching, not an ordered
// pairing) — ordering among sigs/pubkeys is irrelevant and duplicate
// signatures can never satisfy two slots.
func checkMultiSig(ctx *Context) (bool, error) {
	nE, err := ctx.Frame.Main.Pop()
	if err != nil {
		return false, err
	}
	if nE.Kind != KindNum || nE.NumValue() > MaxPubKeysPerMultisig {
		return false, ErrTypeMismatch
	}
	n := int(nE.NumValue())
	pubkeys := make([]StackEntry, n)
	for i := 0; i < n; i++ {
		pk, err := ctx.Frame.Main.Pop()
		if err != nil {
			return false, err
		}
		if pk.Kind != KindPubKey {
			return false, ErrTypeMismatch
		}
		pubkeys[i] = pk
	}
	mE, err := ctx.Frame.Main.Pop()
	if err != nil {
		return false, err
	}
	if mE.Kind != KindNum || int(mE.NumValue()) > n {
		return false, ErrTypeMismatch
	}
	m := int(mE.NumValue())
	sigs := make([]StackEntry, m)
	for i := 0; i < m; i++ {
		sig, err := ctx.Frame.Main.Pop()
		if err != nil {
			return false, err
		}
		if sig.Kind != KindSignature {
			return false, ErrTypeMismatch
		}
		sigs[i] = sig
	}
	msg, err := ctx.Frame.Main.Pop()
	if err != nil {
		return false, err
	}
	if msg.Kind != KindBytes {
		return false, ErrTypeMismatch
	}

	used := make([]bool, n)
	for _, sig := range sigs {
		matched := false
		for j, pk := range pubkeys {
			if used[j] {
				continue
			}
			if crypto.Verify(pk.Payload(), msg.Payload(), sig.Payload()) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}
	return true, nil
}

func execCheckMultiSig(ctx *Context, _ bool) error {
	valid, err := checkMultiSig(ctx)
	if err != nil {
		return err
	}
	return ctx.Frame.PushMain(Num(boolNum(valid)))
}

func execCheckMultiSigVerify(ctx *Context, _ bool) error {
	valid, err := checkMultiSig(ctx)
	if err != nil {
		return err
	}
	if !valid {
		return ErrNotVerified
	}
	return nil
}
