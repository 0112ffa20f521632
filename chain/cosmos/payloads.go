package cosmos

import (
	"encoding/json"
	"fmt"
)

// Contract wire shapes. These mirror the deployed contracts' JSON schemas
// exactly; any change here is a breaking change to the adapter.

type routingISMQuery struct {
	RoutingISM routingISMQueryInner `json:"routing_ism"`
}

type routingISMQueryInner struct {
	Route routeRequest `json:"route"`
}

type routeRequest struct {
	// Message is the hex encoding of the canonical message bytes.
	Message string `json:"message"`
}

type routeResponse struct {
	ISM string `json:"ism"`
}

type storageLocationsQuery struct {
	GetAnnounceStorageLocations storageLocationsQueryInner `json:"get_announce_storage_locations"`
}

type storageLocationsQueryInner struct {
	// Validators are hex encodings of the validator identifiers.
	Validators []string `json:"validators"`
}

type storageLocationsResponse struct {
	StorageLocations []storageLocationsEntry `json:"storage_locations"`
}

// storageLocationsEntry is serialized by the contract as a two-element array:
// the validator's native address string followed by its location list.
type storageLocationsEntry struct {
	Validator string
	Locations []string
}

func (e *storageLocationsEntry) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("storage location entry has %d elements, want 2", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Validator); err != nil {
		return err
	}

	return json.Unmarshal(pair[1], &e.Locations)
}

type announceExecute struct {
	Announce announceExecuteInner `json:"announce"`
}

type announceExecuteInner struct {
	// Validator is the hex encoding of the 20-byte validator address.
	Validator       string `json:"validator"`
	StorageLocation string `json:"storage_location"`
	// Signature is the hex encoding of the announcement signature.
	Signature string `json:"signature"`
}
