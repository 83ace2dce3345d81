// Package dashboard broadcasts judging progress to connected WebSocket
// clients, grounded in the teacher's internal/network websocket server
// (broadcast-to-all-clients, a mutex-guarded client set). A long Task 4
// battery runs well over a hundred trials; this lets contest staff watch it
// live instead of waiting on the final exit code.
package dashboard

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"basedchecker/internal/verdict"
)

// Event is one message broadcast to every connected client.
type Event struct {
	RunID   string `json:"run_id"`
	TaskID  int    `json:"task_id"`
	Trial   int    `json:"trial,omitempty"`
	Kind    string `json:"kind"`
	Message string `json:"message,omitempty"`
	Line    int    `json:"line,omitempty"`
	Final   bool   `json:"final"`
}

// Server is a minimal WebSocket broadcast hub served over plain HTTP.
type Server struct {
	httpSrv  *http.Server
	upgrader websocket.Upgrader
	addr     string

	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

// Addr returns the address the server actually bound, which may differ
// from what was passed to Start when that used the ":0" ephemeral port.
func (s *Server) Addr() string { return s.addr }

// Start begins listening on addr (e.g. ":8787") and returns immediately;
// the server runs in a background goroutine until Close is called.
func Start(addr string) (*Server, error) {
	s := &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	s.httpSrv = &http.Server{Addr: addr, Handler: mux}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	s.addr = ln.Addr().String()
	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Printf("dashboard: serve error: %v", err)
		}
	}()
	return s, nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("dashboard: upgrade failed: %v", err)
		return
	}
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Clients only ever receive; drain and discard anything they send so
	// the read loop notices disconnects promptly.
	go func() {
		defer s.removeClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) removeClient(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// Broadcast sends ev as JSON to every connected client, dropping any
// client whose write fails.
func (s *Server) Broadcast(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("dashboard: marshal event: %v", err)
		return
	}

	s.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for c := range s.clients {
		conns = append(conns, c)
	}
	s.mu.RUnlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			s.removeClient(c)
		}
	}
}

// BroadcastFinal sends the terminal event for a completed judging run.
func (s *Server) BroadcastFinal(runID string, taskID int, v verdict.Verdict, fail *verdict.CheckerFail) {
	ev := Event{RunID: runID, TaskID: taskID, Final: true}
	if fail != nil {
		ev.Kind = "CheckerFail"
		ev.Message = fail.Message
	} else {
		ev.Kind = v.Kind.String()
		ev.Message = v.Message
		ev.Line = v.Line
	}
	s.Broadcast(ev)
}

// Close shuts the server down, dropping all connected clients.
func (s *Server) Close() error {
	s.mu.Lock()
	for c := range s.clients {
		c.Close()
	}
	s.clients = nil
	s.mu.Unlock()
	return s.httpSrv.Close()
}
