package config

import "fmt"

// Action selects the direction of the transform.
type Action string

const (
	// ActionEncrypt seals plaintext into the giopg format.
	ActionEncrypt Action = "encrypt"
	// ActionDecrypt opens the giopg format back into plaintext.
	ActionDecrypt Action = "decrypt"
)

// ActionParseError reports an action argument that is neither encrypt nor decrypt.
type ActionParseError struct {
	Value string
}

func (e *ActionParseError) Error() string {
	return fmt.Sprintf("illegal value '%s' for action (expected: %s|%s)", e.Value, ActionEncrypt, ActionDecrypt)
}

// ParseAction converts a command-line value into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionEncrypt, ActionDecrypt:
		return Action(s), nil
	default:
		return "", &ActionParseError{Value: s}
	}
}

// Decrypt reports whether the action runs the decrypt direction.
func (a Action) Decrypt() bool {
	return a == ActionDecrypt
}
