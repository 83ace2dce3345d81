package dashboard

import (
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"basedchecker/internal/verdict"
)

func TestBroadcastReachesConnectedClient(t *testing.T) {
	srv, err := Start("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer srv.Close()

	u := url.URL{Scheme: "ws", Host: srv.Addr(), Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Give the server a moment to register the client before broadcasting.
	time.Sleep(20 * time.Millisecond)

	srv.Broadcast(Event{RunID: "r1", TaskID: 1, Trial: 0, Kind: "Correct"})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading broadcast: %v", err)
	}
	if !contains(string(payload), `"run_id":"r1"`) {
		t.Errorf("payload missing run id: %s", payload)
	}
}

func TestBroadcastFinalMarksFailures(t *testing.T) {
	srv, err := Start("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer srv.Close()

	u := url.URL{Scheme: "ws", Host: srv.Addr(), Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Give the server a moment to register the client before broadcasting.
	time.Sleep(20 * time.Millisecond)

	fail := &verdict.CheckerFail{Message: "jury failed"}
	srv.BroadcastFinal("r2", 1, verdict.Verdict{}, fail)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("reading final broadcast: %v", err)
	}
	if !contains(string(payload), `"kind":"CheckerFail"`) {
		t.Errorf("final event not marked as a checker failure: %s", payload)
	}
	if !contains(string(payload), `"final":true`) {
		t.Errorf("final event missing final flag: %s", payload)
	}
}

func contains(haystack, needle string) bool {
	return len(haystack) >= len(needle) && (func() bool {
		for i := 0; i+len(needle) <= len(haystack); i++ {
			if haystack[i:i+len(needle)] == needle {
				return true
			}
		}
		return false
	})()
}
