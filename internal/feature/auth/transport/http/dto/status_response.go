// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// StatusResponse is the legacy login/register envelope. Key casing is part of
// the wire contract and must not be normalized.
type StatusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"Message"`
	SessionID string `json:"session_id,omitempty"`
}
