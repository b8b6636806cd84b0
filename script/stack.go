package script

import "errors"

// Stack errors. Returned by Stack/ConditionStack operations and converted
// by the evaluator into a script-false verdict; never panics out.
var (
	ErrStackEmpty       = errors.New("script: stack empty")
	ErrStackOverflow    = errors.New("script: stack size exceeds limit")
	ErrStackIndex       = errors.New("script: stack index out of range")
	ErrPushOpcode       = errors.New("script: cannot push an opcode as data")
	ErrItemTooLarge     = errors.New("script: data item exceeds MAX_SCRIPT_ITEM_SIZE")
	ErrConditionEmpty   = errors.New("script: condition stack empty")
	ErrConditionPending = errors.New("script: unterminated IF at end of script")
)

// Stack holds one run's main or alt sequence of StackEntry values.
// Pushes are rejected outright for opcode entries and oversized data
// items; the combined main+alt size cap is enforced by Frame, not Stack,
// since it is a joint invariant.
type Stack struct {
	d []StackEntry
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{d: make([]StackEntry, 0)}
}

// Len returns the number of entries on the stack.
func (s *Stack) Len() int { return len(s.d) }

// Values exposes the stack content bottom-to-top, for diagnostics/tests.
func (s *Stack) Values() []StackEntry { return s.d }

func validPush(e StackEntry) error {
	if e.IsOp() {
		return ErrPushOpcode
	}
	if (e.Kind == KindBytes || e.Kind == KindPubKeyHash) && e.Len() > MaxScriptItemSize {
		return ErrItemTooLarge
	}
	return nil
}

// push appends an entry without the joint stack-size check;
// Frame.PushMain/PushAlt perform that check after delegating here.
func (s *Stack) push(e StackEntry) error {
	if err := validPush(e); err != nil {
		return err
	}
	s.d = append(s.d, e)
	return nil
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (StackEntry, error) {
	if len(s.d) == 0 {
		return StackEntry{}, ErrStackEmpty
	}
	return s.PeekAt(0)
}

// PeekAt returns the entry at depth i (top is depth 0) without removing it.
func (s *Stack) PeekAt(i int) (StackEntry, error) {
	n := len(s.d)
	if i < 0 || n < i+1 {
		return StackEntry{}, ErrStackIndex
	}
	return s.d[n-1-i], nil
}

// Pop removes and returns the top entry.
func (s *Stack) Pop() (StackEntry, error) {
	v, err := s.Peek()
	if err != nil {
		return StackEntry{}, err
	}
	s.d = s.d[:len(s.d)-1]
	return v, nil
}

// RemoveAt removes and returns the entry at depth i from the top (top is
// depth 0), shifting the rest down. Used by OP_ROLL and friends.
func (s *Stack) RemoveAt(i int) (StackEntry, error) {
	n := len(s.d)
	if i < 0 || n < i+1 {
		return StackEntry{}, ErrStackIndex
	}
	idx := n - 1 - i
	v := s.d[idx]
	s.d = append(s.d[:idx], s.d[idx+1:]...)
	return v, nil
}

// Dup duplicates the top n entries, preserving order (e.g. OP_2DUP,
// OP_3DUP).
func (s *Stack) Dup(n int) error {
	if n < 0 || len(s.d) < n {
		return ErrStackIndex
	}
	cp := make([]StackEntry, n)
	copy(cp, s.d[len(s.d)-n:])
	s.d = append(s.d, cp...)
	return nil
}
