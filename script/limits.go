package script

// Consensus-critical resource caps. These are compile-time constants
// rather than configuration: changing any of them forks the ledger.
const (
	// MaxScriptSize is the maximum serialized byte length of a script.
	MaxScriptSize = 10000
	// MaxOpsPerScript is the maximum number of opcodes in a script.
	MaxOpsPerScript = 201
	// MaxStackSize is the maximum combined size of the main and alt stacks.
	MaxStackSize = 1000
	// MaxScriptItemSize is the maximum length of a single data item
	// (Bytes or PubKeyHash) pushed onto the stack.
	MaxScriptItemSize = 520
	// MaxPubKeysPerMultisig is the maximum n in an m-of-n multisig.
	MaxPubKeysPerMultisig = 20
	// MaxMetadataBytes bounds receipt metadata attached at asset creation.
	MaxMetadataBytes = 512

	// PubKeyLen is the fixed length of a PubKey entry, in bytes.
	PubKeyLen = 32
	// SignatureLen is the fixed length of a Signature entry, in bytes.
	SignatureLen = 64
	// WordBits is the fixed machine-word width of a Num entry.
	WordBits = 64
)
