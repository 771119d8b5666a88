package chain

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type rpcHandler func(params []json.RawMessage) (any, error)

// rpcServer answers JSON-RPC 2.0 requests from a method table and records what it received.
type rpcServer struct {
	*httptest.Server

	mu       sync.Mutex
	methods  map[string]rpcHandler
	requests []*http.Request
	bodies   []Request
}

func newRPCServer(t *testing.T, methods map[string]rpcHandler) *rpcServer {
	t.Helper()

	s := &rpcServer{methods: methods}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *rpcServer) serve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Request
		Params []json.RawMessage `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, r)
	s.bodies = append(s.bodies, req.Request)
	handler, ok := s.methods[req.Method]
	s.mu.Unlock()

	resp := map[string]any{"jsonrpc": "2.0", "id": req.Id}
	if !ok {
		resp["error"] = map[string]any{"code": -32601, "message": "method not found"}
	} else if result, err := handler(req.Params); err != nil {
		resp["error"] = map[string]any{"code": -32000, "message": err.Error()}
	} else {
		resp["result"] = result
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *rpcServer) received() ([]*http.Request, []Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests, s.bodies
}

func result(v any) rpcHandler {
	return func([]json.RawMessage) (any, error) {
		return v, nil
	}
}
