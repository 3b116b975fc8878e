package message

// Reason explains why a verification did not succeed.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonInvalidSignature
	ReasonAddressMismatch
	ReasonRecoveryFailed
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonInvalidSignature:
		return "the signature was invalid"
	case ReasonAddressMismatch:
		return "the signature did not match the message digest"
	case ReasonRecoveryFailed:
		return "the public key could not be recovered from the signature"
	default:
		return "unknown"
	}
}

// Result is the outcome of a verification. Reason is ReasonNone whenever
// Valid is true.
type Result struct {
	Valid  bool
	Reason Reason
}

func valid() Result {
	return Result{Valid: true}
}

func failed(reason Reason) Result {
	return Result{Reason: reason}
}
