package validator

import (
	"github.com/Yoga07/NAOM/crypto"
	"github.com/Yoga07/NAOM/tx"
)

// SignableHash is the signable_hash collaborator of spec.md §6: a
// canonical hash committing to an outpoint, bound into a P2PKH script's
// check-data slot so a signature can never be replayed against a
// different outpoint (spec.md §4.5/§4.6 step 2). Grounded on the same
// canonical-encoding-then-SHA3-256 idiom druid.go's inputsFingerprint
// already uses, since the original construct_tx_in_signable_hash is not
// among the retrieved original_source files.
func SignableHash(o tx.OutPoint) string {
	return crypto.SHA3256Hex(o.CanonicalBytes())
}
