package validator

import (
	"github.com/Yoga07/NAOM/crypto"
	"github.com/Yoga07/NAOM/internal/codec"
	"github.com/Yoga07/NAOM/logger"
	"github.com/Yoga07/NAOM/tx"
)

// expectationKey is the (from, to, asset) triple both sides of
// DruidExpectationsAreMet compare on.
type expectationKey struct {
	from, to string
	asset    string // hex-encoded canonical asset bytes, for structural equality
}

// DruidExpectationsAreMet verifies that every DruidExpectation declared
// by a druid-matching transaction is satisfied by some output among the
// druid-matching set (spec.md §4.7), grounded on
// original_source/src/utils/druid_utils.rs's druid_expectations_are_met:
// for each participating transaction, its own input-set fingerprint
// stands in as the "from" identity of anything it sends, and every
// expectation anyone declares must find a matching (from, to, asset)
// produced by one of the participants.
func DruidExpectationsAreMet(druid string, transactions []*tx.Transaction) bool {
	var expects []tx.DruidExpectation
	produced := make(map[expectationKey]bool)

	for _, t := range transactions {
		if t == nil || t.DruidInfo == nil || t.DruidInfo.Druid != druid {
			continue
		}
		fingerprint, err := inputsFingerprint(t)
		if err != nil {
			logger.Printf(logger.WARN, "[druid] could not fingerprint participant inputs: %v", err)
			return false
		}
		expects = append(expects, t.DruidInfo.Expectations...)

		for _, out := range t.Outputs {
			if out.ScriptPublicKey == nil {
				continue
			}
			produced[expectationKey{
				from:  fingerprint,
				to:    *out.ScriptPublicKey,
				asset: assetKey(out.Value),
			}] = true
		}
	}

	for _, e := range expects {
		key := expectationKey{from: e.From, to: e.To, asset: assetKey(e.Asset)}
		if !produced[key] {
			logger.Printf(logger.DBG, "[druid] unmet expectation: from=%s to=%s", e.From, e.To)
			return false
		}
	}
	return true
}

// inputsFingerprint is the hex SHA3-256 digest of the transaction's
// canonically-encoded inputs — the "from" identity a DRUID expectation
// names (spec.md §4.7; druid_utils.rs: hex(sha3_256(serialize(inputs)))).
func inputsFingerprint(t *tx.Transaction) (string, error) {
	raw, err := codec.Serialize(t.Inputs)
	if err != nil {
		return "", err
	}
	return crypto.SHA3256Hex(raw), nil
}

// assetKey canonicalizes an asset.Asset for equality comparison; two
// assets compare equal under DRUID matching iff their encodings match.
func assetKey(a interface{ CanonicalBytes() []byte }) string {
	return crypto.SHA3256Hex(a.CanonicalBytes())
}
