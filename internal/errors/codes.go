package errors

// Kind classifies an error raised anywhere in the VC pipeline (spec §7).
//
// A caller driving the pipeline end to end needs to tell these five
// failure classes apart: a malformed source file, a construct the
// pipeline deliberately does not model, an internal invariant broken
// by a malformed tree, an oracle that could not decide an obligation,
// and an obligation the oracle disproved.
type Kind string

const (
	// ParseErrorKind marks a syntax error in source text.
	ParseErrorKind Kind = "E1001"

	// UnsupportedKind marks a construct the pipeline does not model:
	// higher-order arguments, nested `let rec`, a measure other than
	// `len`, a custom size measure.
	UnsupportedKind Kind = "E1002"

	// DomainErrorKind marks an internal precondition violated by a
	// malformed tree or an unresolved function reference (FuncDefs
	// membership failures, arity mismatches).
	DomainErrorKind Kind = "E1003"

	// SolverUnknownKind marks an obligation the SMT oracle could
	// neither prove nor refute within its decision fragment.
	SolverUnknownKind Kind = "E1004"

	// VerificationFailureKind marks an obligation the oracle proved
	// false: the claimed cost bound does not hold on some path.
	VerificationFailureKind Kind = "E1005"
)

func (k Kind) String() string {
	switch k {
	case ParseErrorKind:
		return "parse error"
	case UnsupportedKind:
		return "unsupported construct"
	case DomainErrorKind:
		return "domain error"
	case SolverUnknownKind:
		return "solver unknown"
	case VerificationFailureKind:
		return "verification failure"
	default:
		return "error"
	}
}

// description returns a human-readable summary of a Kind, used by the
// reporter when a more specific message was not supplied.
func description(k Kind) string {
	switch k {
	case ParseErrorKind:
		return "the source file could not be parsed"
	case UnsupportedKind:
		return "construct not supported by the verifier"
	case DomainErrorKind:
		return "internal inconsistency in the recurrence model"
	case SolverUnknownKind:
		return "the solver could not decide the obligation"
	case VerificationFailureKind:
		return "the claimed cost bound does not hold"
	default:
		return "unknown error"
	}
}

// IsFatal reports whether errors of this kind should abort the current
// function's analysis rather than being recorded as a per-path result.
// SolverUnknown and VerificationFailure are per-obligation outcomes
// recorded alongside successes (spec §4.5). The parser, the path
// enumerator and the VC generator return the other three at once. The
// verifier does not consult IsFatal: a DomainError it meets while
// building an obligation is recorded as that path's result.
func IsFatal(k Kind) bool {
	return k == ParseErrorKind || k == UnsupportedKind || k == DomainErrorKind
}
