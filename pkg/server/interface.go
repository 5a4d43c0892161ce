/*
Package server implements msgpack IPC for segmentation services.

The server reads msgpack requests from stdin and writes msgpack responses to stdout.
Requests are handled one at a time, in arrival order, so a client can pipeline several
messages and match replies by their ID.

# IPC

Every request names an operation and carries the fields that operation needs:

	{"id": "r1", "op": "segment", "text": "你好世界"}

Segmentation replies list the tokens in text order with byte offsets:

	{"id": "r1", "tk": [{"w": "你好", "s": 0, "e": 6, "k": true}, {"w": "世界", "s": 6, "e": 12, "k": true}], "c": 2, "t": 12}

The remaining operations:

	{"id": "r2", "op": "unknown", "text": "你好世界"}        -> {"id": "r2", "w": ["世界"], "c": 1, "t": 9}
	{"id": "r3", "op": "search", "text": "你好"}            -> {"id": "r3", "w": "你好", "f": true}
	{"id": "r4", "op": "prefix", "prefix": "你", "l": 10}   -> {"id": "r4", "w": ["你好"], "c": 1, "t": 4}
	{"id": "r5", "op": "known_prefix", "prefix": "你"}
	{"id": "r6", "op": "add_known", "words": ["世界"]}      -> {"id": "r6", "status": "ok", "added": 1, "known": 2}
	{"id": "r7", "op": "health"}                            -> {"id": "r7", "status": "ok", "words": 10000, "known": 2}

Failures answer with an error message and a code: 400 for malformed or unknown requests,
413 when the text exceeds the configured limit and 500 for internal failures.

	{"id": "r8", "e": "Unknown op: translate", "c": 400}

Before the first request the server writes {"status": "ready"}. It returns when stdin reaches EOF.
*/
package server

// Request is the single request shape shared by every op.
type Request struct {
	ID     string   `msgpack:"id"`
	Op     string   `msgpack:"op"`
	Text   string   `msgpack:"text,omitempty"`
	Prefix string   `msgpack:"prefix,omitempty"`
	Words  []string `msgpack:"words,omitempty"`
	Limit  int      `msgpack:"l,omitempty"`
}

// Token is one segment of the requested text.
type Token struct {
	Text  string `msgpack:"w"`
	Start int    `msgpack:"s"`
	End   int    `msgpack:"e"`
	Known bool   `msgpack:"k"`
}

// SegmentResponse answers "segment".
type SegmentResponse struct {
	ID        string  `msgpack:"id"`
	Tokens    []Token `msgpack:"tk"`
	Count     int     `msgpack:"c"`
	TimeTaken int64   `msgpack:"t"`
}

// WordsResponse answers the ops that return word lists: "unknown", "prefix" and "known_prefix".
type WordsResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"w"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// SearchResponse answers "search".
type SearchResponse struct {
	ID    string `msgpack:"id"`
	Word  string `msgpack:"w"`
	Found bool   `msgpack:"f"`
}

// StatusResponse answers "health" and "add_known", and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
	Added  int    `msgpack:"added,omitempty"`
	Words  int    `msgpack:"words,omitempty"`
	Known  int    `msgpack:"known,omitempty"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
