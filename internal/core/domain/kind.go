package domain

import "errors"

// ErrorKind groups errors by what the operator has to do about them.
type ErrorKind int

const (
	// KindUnknown is any error not covered by the taxonomy, usually an infrastructure failure.
	KindUnknown ErrorKind = iota
	// KindInput is bad input data: malformed versions, bump levels or configuration.
	KindInput
	// KindPrecondition is a local precondition that failed before anything was changed.
	KindPrecondition
	// KindRemote is a failure reported by the Chef server.
	KindRemote
	// KindConflict is a frozen cookbook version that has to be bumped.
	KindConflict
)

// String returns the lowercase name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindPrecondition:
		return "precondition"
	case KindRemote:
		return "remote"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

var kinds = []struct {
	kind ErrorKind
	errs []error
}{
	{KindConflict, []error{ErrFrozenCookbookConflict}},
	{KindPrecondition, []error{
		ErrNotNodeCookbook, ErrLockfileNotFound, ErrUserAborted,
		ErrVersionFileNotFound, ErrVersionFileWriteFailed, ErrMetadataNotFound, ErrNotInteractive,
	}},
	{KindRemote, []error{
		ErrEnvironmentNotFound, ErrApplyFailed, ErrUploadFailed,
		ErrServerRequestFailed, ErrServerClientFailed,
	}},
	{KindInput, []error{
		ErrMalformedVersion, ErrInvalidBumpLevel, ErrInvalidOutputFormat, ErrConfigInvalid,
		ErrConfigReadFailed, ErrMetadataParseFailed, ErrLockfileParseFailed,
	}},
}

// KindOf reports the kind of the first known sentinel found in err's chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kinds {
		for _, target := range k.errs {
			if errors.Is(err, target) {
				return k.kind
			}
		}
	}
	return KindUnknown
}
