package repository

import (
	"encoding/json"
	"fmt"

	"vitalog/models"
	"vitalog/remote"
)

// The wire codec between typed records and the remote store's field maps is
// a JSON round-trip. The id is special-cased: remote documents carry it as a
// plain string mirrored into the body, while local records carry the tagged
// models.ID.

func encodeFields[T models.Record[T]](rec T) (map[string]any, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["id"] = rec.GetID().Value
	return fields, nil
}

func encodePatch[T any, P models.Patch[T]](patch P) (map[string]any, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "id")
	return fields, nil
}

func decodeRecord[T models.Record[T]](doc remote.Document) (T, error) {
	var rec T

	fields := make(map[string]any, len(doc.Fields))
	for key, v := range doc.Fields {
		fields[key] = v
	}
	// The document key is authoritative for identity, whatever the body says.
	fields["id"] = map[string]any{"value": doc.ID}

	raw, err := json.Marshal(fields)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("undecodable remote document %s: %w", doc.ID, err)
	}
	return rec, nil
}
