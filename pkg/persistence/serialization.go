package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// MarshalRelayRecord serializes a RelayRecord to JSON bytes.
func MarshalRelayRecord(record *RelayRecord) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("cannot marshal nil RelayRecord")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal RelayRecord to JSON: %w", err)
	}

	return data, nil
}

// UnmarshalRelayRecord deserializes a RelayRecord from JSON bytes.
func UnmarshalRelayRecord(data []byte) (*RelayRecord, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var record RelayRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to RelayRecord: %w", err)
	}

	return &record, nil
}

// ValidateForSave checks the fields every backend relies on for keys and indexes.
func ValidateForSave(record *RelayRecord) error {
	if record == nil {
		return fmt.Errorf("cannot save nil RelayRecord")
	}
	if record.ID == uuid.Nil {
		return fmt.Errorf("cannot save RelayRecord with zero ID")
	}
	return nil
}
