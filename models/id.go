package models

import "github.com/google/uuid"

// LocalIDPrefix marks locally-minted placeholder ids. It keeps local ids
// recognizable in logs and exports; code must rely on the Local tag instead
// of parsing the prefix.
const LocalIDPrefix = "local-"

// ID identifies a record either by a device-minted placeholder or by a
// server-assigned identifier. The distinction is carried as an explicit tag
// rather than encoded in the string value.
type ID struct {
	Value string `json:"value"`
	Local bool   `json:"local,omitempty"`
}

// NewLocalID mints a placeholder id for a record that has not been
// confirmed by the remote store yet.
func NewLocalID() ID {
	return ID{Value: LocalIDPrefix + uuid.NewString(), Local: true}
}

// RemoteID wraps a server-assigned identifier.
func RemoteID(value string) ID {
	return ID{Value: value}
}

func (id ID) IsLocal() bool {
	return id.Local
}

func (id ID) IsZero() bool {
	return id.Value == ""
}

func (id ID) String() string {
	return id.Value
}
