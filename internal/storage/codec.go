package storage

import (
	"encoding/json"
	"errors"

	"worldgene/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeWorld(r model.WorldRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeWorld(data []byte) (model.WorldRecord, error) {
	var record model.WorldRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.WorldRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.WorldRecord{}, err
	}
	return record, nil
}

func EncodeCharacter(r model.CharacterRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeCharacter(data []byte) (model.CharacterRecord, error) {
	var record model.CharacterRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.CharacterRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.CharacterRecord{}, err
	}
	return record, nil
}

func EncodeAdvanced(r model.AdvancedRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeAdvanced(data []byte) (model.AdvancedRecord, error) {
	var record model.AdvancedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.AdvancedRecord{}, err
	}
	if err := checkVersion(record.VersionedRecord); err != nil {
		return model.AdvancedRecord{}, err
	}
	return record, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}

// Stamp fills in the current schema and codec versions.
func Stamp() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
	}
}
