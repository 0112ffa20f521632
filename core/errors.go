package core

import "errors"

// Error taxonomy shared by every chain adapter. Adapters wrap these sentinels
// with fmt.Errorf("%w: ...") so callers can classify failures with errors.Is
// without parsing messages.
var (
	// ErrMalformedAddress indicates a native address string that does not
	// conform to the chain's address grammar.
	ErrMalformedAddress = errors.New("malformed native address")

	// ErrUnrepresentableIdentifier indicates a 32-byte identifier that cannot
	// be rendered in the chain's native address format.
	ErrUnrepresentableIdentifier = errors.New("identifier not representable as native address")

	// ErrSerialization indicates a payload that could not be canonicalized
	// for submission.
	ErrSerialization = errors.New("payload serialization failed")

	// ErrQueryFailed indicates the provider could not complete a read query
	// or a transaction submission. The underlying cause is wrapped verbatim.
	ErrQueryFailed = errors.New("provider call failed")

	// ErrResponseDecode indicates provider response bytes that do not parse
	// as the expected contract response shape.
	ErrResponseDecode = errors.New("contract response decode failed")

	// ErrReceiptDecode indicates a native transaction receipt missing fields
	// required to report an outcome.
	ErrReceiptDecode = errors.New("transaction receipt decode failed")

	// ErrProviderConstruction indicates invalid configuration surfaced while
	// building an adapter. It is fatal to construction, never per-call.
	ErrProviderConstruction = errors.New("adapter construction failed")
)
