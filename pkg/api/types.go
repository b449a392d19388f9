package api

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string
}

// APIResponse is the standard response envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// FieldValue carries one scalar field value.
type FieldValue struct {
	Field string `json:"field"`
	Value int64  `json:"value"`
}

// FlagValue carries one flag bit.
type FlagValue struct {
	Flag  string `json:"flag"`
	Value bool   `json:"value"`
}

// SetFieldRequest is the body of a field write.
type SetFieldRequest struct {
	Value int64 `json:"value"`
}

// SetFlagRequest is the body of a flag write.
type SetFlagRequest struct {
	Value bool `json:"value"`
}

// SnapshotResponse reports a created snapshot.
type SnapshotResponse struct {
	ID string `json:"id"`
}

// StatsResponse reports store activity counters.
type StatsResponse struct {
	Repairs           uint64 `json:"repairs"`
	Persists          uint64 `json:"persists"`
	IntegrityFailures uint64 `json:"integrity_failures"`
}
