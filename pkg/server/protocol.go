/*
Package server implements MessagePack IPC for the suggestion engine:
a stdin/stdout request-response protocol for spelling suggestions.
*/
package server

// SuggestRequest is a single suggestion request read from stdin.
type SuggestRequest struct {
	ID      string `msgpack:"id"`
	Word    string `msgpack:"w"`
	Limit   int    `msgpack:"l,omitempty"`
	Mode    string `msgpack:"m,omitempty"` // "fast", "best", "double"
	BanBad  bool   `msgpack:"ban,omitempty"`
	NeedCap bool   `msgpack:"cap,omitempty"`
}

// SuggestCandidate is one ranked correction in a response.
type SuggestCandidate struct {
	Word    string `msgpack:"w"`
	OrigLen int    `msgpack:"o"`
	Score   int    `msgpack:"sc"`
}

// SuggestResponse answers a SuggestRequest.
type SuggestResponse struct {
	ID         string             `msgpack:"id"`
	Candidates []SuggestCandidate `msgpack:"s"`
	Count      int                `msgpack:"c"`
	TimeTaken  int64              `msgpack:"t"`
}

// SuggestError reports a failed SuggestRequest.
type SuggestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// ConfigRequest asks the server to update a subset of its live config.
type ConfigRequest struct {
	ID        string  `msgpack:"id"`
	Action    string  `msgpack:"action"` // "update", "get"
	MaxCount  *int    `msgpack:"max_count,omitempty"`
	TimeoutMS *int    `msgpack:"timeout_ms,omitempty"`
	Mode      *string `msgpack:"mode,omitempty"`
}

// ConfigResponse answers a ConfigRequest.
type ConfigResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}
