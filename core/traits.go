package core

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Contract is a protocol contract bound to one chain. Implementations hold
// only immutable configuration after construction and are safe for
// concurrent use.
type Contract interface {
	// Domain returns the domain of the chain this contract is deployed on.
	Domain() Domain
	// Address returns the contract's 32-byte on-chain address.
	Address() common.Hash
}

// RoutingISM resolves which interchain security module should verify an
// inbound message. Resolution is idempotent: the same message against the
// same chain state yields the same module.
type RoutingISM interface {
	Contract

	// Route returns the 32-byte identifier of the security module
	// responsible for the message.
	Route(ctx context.Context, message *Message) (common.Hash, error)
}

// ValidatorAnnounce publishes validator storage locations and retrieves
// previously announced ones.
type ValidatorAnnounce interface {
	Contract

	// AnnouncedStorageLocations returns the storage locations announced by
	// each validator, position-aligned with the input. A validator with no
	// announcements yields an empty slice.
	AnnouncedStorageLocations(ctx context.Context, validators []common.Hash) ([][]string, error)

	// Announce submits a signed announcement as a single-shot transaction.
	// Deduplication of resubmissions is the caller's responsibility.
	Announce(ctx context.Context, announcement SignedAnnouncement, gasLimit *big.Int) (TxOutcome, error)

	// AnnounceTokensNeeded reports the additional tokens the validator needs
	// before an announcement can succeed, or nil if unknown.
	AnnounceTokensNeeded(ctx context.Context, announcement SignedAnnouncement) (*big.Int, error)
}
