package script

// Script is an ordered sequence of StackEntry values. Scripts are
// immutable once constructed; template constructors (templates.go) build
// fresh ones entry by entry.
type Script struct {
	Entries []StackEntry
}

// New returns an empty script.
func New() *Script {
	return &Script{Entries: make([]StackEntry, 0)}
}

// Add appends an entry to the script.
func (s *Script) Add(e StackEntry) *Script {
	s.Entries = append(s.Entries, e)
	return s
}

// Bytes returns the script's canonical wire encoding, entry by entry
// (each via StackEntry.Encode). Named after the teacher's own
// Script.Bytes() in bitcoin/script/script.go; this is what codec.Serialize
// calls on a *Script rather than falling through to reflection, since a
// StackEntry's payload fields are unexported.
func (s *Script) Bytes() []byte {
	var buf []byte
	for _, e := range s.Entries {
		buf = append(buf, e.Encode()...)
	}
	return buf
}

// CanonicalBytes satisfies codec's canonical-encoder interface.
func (s *Script) CanonicalBytes() []byte { return s.Bytes() }

// Size returns the serialized byte length of the script, using the
// per-entry cost formula of the MaxScriptSize invariant: Op->1,
// Signature->SIG_LEN, PubKey->PK_LEN, Bytes/PubKeyHash->len(payload),
// Num->WordBits/8.
func (s *Script) Size() int {
	n := 0
	for _, e := range s.Entries {
		n += e.byteCost()
	}
	return n
}

// OpCount returns the number of opcode entries in the script.
func (s *Script) OpCount() int {
	n := 0
	for _, e := range s.Entries {
		if e.IsOp() {
			n++
		}
	}
	return n
}

// Valid reports whether the script satisfies the structural size and
// op-count caps of the consensus invariants.
func (s *Script) Valid() bool {
	return s.Size() <= MaxScriptSize && s.OpCount() <= MaxOpsPerScript
}

// Template returns the opcode-only skeleton of the script: every data
// entry collapses to a placeholder slot, keeping only opcodes in order.
// Used by the spend-authorization predicates to match a script's shape
// against a known template without caring about the embedded data.
func (s *Script) Template() []byte {
	tpl := make([]byte, 0, len(s.Entries))
	for _, e := range s.Entries {
		if e.IsOp() {
			tpl = append(tpl, e.OpCode())
		} else {
			tpl = append(tpl, dataSlotMarker(e.Kind))
		}
	}
	return tpl
}

// dataSlotMarker stands in for "a data entry of this Kind" in a
// Template(). Markers live outside the valid opcode byte range (the
// table tops out at OpCHECKMULTISIGVERIFY=87) so they can never collide
// with a real opcode value, and are distinct per Kind so a template
// comparison still distinguishes, say, a PubKey slot from a Signature
// slot without caring about the payload itself.
func dataSlotMarker(k Kind) byte {
	return 0xe0 + byte(k)
}
