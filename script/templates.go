package script

import (
	"fmt"

	"github.com/Yoga07/NAOM/crypto"
	"github.com/Yoga07/NAOM/errors"
)

// hashOpcodeFor returns the OP_HASH256 variant a P2PKH script must embed
// for a given address version; spec.md §4.4 requires the three legacy
// variants stay distinct and never get folded.
func hashOpcodeFor(version crypto.Version) byte {
	switch version {
	case crypto.V0:
		return OpHASH256V0
	case crypto.Temp:
		return OpHASH256TEMP
	default:
		return OpHASH256
	}
}

// NewCoinbaseScript builds the coinbase template: [Num(blockNumber)].
func NewCoinbaseScript(blockNumber uint64) *Script {
	return New().Add(Num(blockNumber))
}

// NewCreateScript builds the asset-creation template:
// [OP_CREATE, Num(block), OP_DROP, Bytes(assetHash), Signature(sig),
// PubKey(pk), OP_CHECKSIG].
func NewCreateScript(block uint64, assetHash []byte, sig, pk []byte) *Script {
	return New().
		Add(Op(OpCREATE)).
		Add(Num(block)).
		Add(Op(OpDROP)).
		Add(Bytes(assetHash)).
		Add(Signature(sig)).
		Add(PubKey(pk)).
		Add(Op(OpCHECKSIG))
}

// NewP2PKHScript builds the pay-to-public-key-hash template:
// [Bytes(checkData), Signature, PubKey, OP_DUP, OP_HASH256{variant},
// PubKeyHash(addr), OP_EQUALVERIFY, OP_CHECKSIG]. The HASH256 variant
// embedded is selected by the address version so interpretation hashes
// the pubkey the same way the address itself was derived.
func NewP2PKHScript(checkData, sig, pk []byte, addr string, version crypto.Version) *Script {
	return New().
		Add(Bytes(checkData)).
		Add(Signature(sig)).
		Add(PubKey(pk)).
		Add(Op(OpDUP)).
		Add(Op(hashOpcodeFor(version))).
		Add(PubKeyHash([]byte(addr))).
		Add(Op(OpEQUALVERIFY)).
		Add(Op(OpCHECKSIG))
}

// NewMemberScript builds a multisig member script:
// [Bytes(checkData), Signature, PubKey, OP_CHECKSIG].
func NewMemberScript(checkData, sig, pk []byte) *Script {
	return New().
		Add(Bytes(checkData)).
		Add(Signature(sig)).
		Add(PubKey(pk)).
		Add(Op(OpCHECKSIG))
}

// ErrMultisigShape flags a malformed m-of-n request: a construction
// error per spec.md §7, not a script failure — the caller should reject
// the request outright rather than build and later fail a script.
var ErrMultisigShape = errors.New(fmt.Errorf("script: invalid multisig shape"), "m>n or n>|pubkeys|")

// NewMultisigLockScript builds an m-of-n multisig lock:
// [Bytes(checkData), Num(m), PubKey×n, Num(n), OP_CHECKMULTISIG].
// Rejects construction if m > n or n > len(pubkeys).
func NewMultisigLockScript(checkData []byte, m int, pubkeys [][]byte) (*Script, error) {
	n := len(pubkeys)
	if m > n || n > len(pubkeys) {
		return nil, ErrMultisigShape
	}
	s := New().Add(Bytes(checkData)).Add(Num(uint64(m)))
	for _, pk := range pubkeys {
		s.Add(PubKey(pk))
	}
	s.Add(Num(uint64(n))).Add(Op(OpCHECKMULTISIG))
	return s, nil
}

// NewMultisigUnlockScript builds an unlocking script carrying k
// signatures: [Bytes(checkData), Signature×k].
func NewMultisigUnlockScript(checkData []byte, sigs [][]byte) *Script {
	s := New().Add(Bytes(checkData))
	for _, sig := range sigs {
		s.Add(Signature(sig))
	}
	return s
}

// NewP2SHUnlockScript builds a pay-to-script-hash unlocking script:
// [Signature×k, Bytes(redeemScriptBytes)]. The redeem script is carried
// as its serialized bytes (script.Parse recovers it) rather than as
// nested entries, mirroring Bitcoin's own P2SH scriptSig convention of
// pushing the redeem script's raw bytes as the final stack item.
func NewP2SHUnlockScript(sigs [][]byte, redeemScriptBytes []byte) *Script {
	s := New()
	for _, sig := range sigs {
		s.Add(Signature(sig))
	}
	return s.Add(Bytes(redeemScriptBytes))
}

// NewMultisigValidationScript builds a self-contained script combining
// the unlock signatures with the lock: [Bytes, Signature×k, Num(m),
// PubKey×n, Num(n), OP_CHECKMULTISIG].
func NewMultisigValidationScript(checkData []byte, sigs [][]byte, m int, pubkeys [][]byte) (*Script, error) {
	n := len(pubkeys)
	if m > n || n > len(pubkeys) {
		return nil, ErrMultisigShape
	}
	s := New().Add(Bytes(checkData))
	for _, sig := range sigs {
		s.Add(Signature(sig))
	}
	s.Add(Num(uint64(m)))
	for _, pk := range pubkeys {
		s.Add(PubKey(pk))
	}
	s.Add(Num(uint64(n))).Add(Op(OpCHECKMULTISIG))
	return s, nil
}
