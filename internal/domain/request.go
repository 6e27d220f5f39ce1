package domain

import "encoding/json"

// NodeTypeRef identifies the node type a run executes as its root.
type NodeTypeRef struct {
	NodeTypeID string `json:"node_type_id"`
	Version    string `json:"version,omitempty"`
}

// RunStartRequest is the request body for starting a run. In proxy mode it
// is forwarded to the coordinator verbatim.
type RunStartRequest struct {
	RunID           string          `json:"run_id,omitempty"`
	RootNodeTypeRef NodeTypeRef     `json:"root_node_type_ref"`
	Input           json.RawMessage `json:"input,omitempty"`
	RunContext      json.RawMessage `json:"run_context,omitempty"`
	Extensions      json.RawMessage `json:"extensions,omitempty"`
}
