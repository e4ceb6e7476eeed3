package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/printshophq/printshop-admin/internal/events"
)

// testServer upgrades one websocket connection at a time and exposes the
// server side so tests can push events to the client.
type testServer struct {
	*httptest.Server
	mu    sync.Mutex
	conns []*websocket.Conn
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{}
	upgrader := websocket.Upgrader{}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		ts.mu.Lock()
		ts.conns = append(ts.conns, conn)
		ts.mu.Unlock()
	}))
	t.Cleanup(ts.Server.Close)
	return ts
}

func (ts *testServer) wsURL() string {
	return "ws" + strings.TrimPrefix(ts.URL, "http")
}

func (ts *testServer) push(t *testing.T, ev events.Event) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		ts.mu.Lock()
		n := len(ts.conns)
		var conn *websocket.Conn
		if n > 0 {
			conn = ts.conns[n-1]
		}
		ts.mu.Unlock()
		if conn != nil {
			if err := conn.WriteJSON(ev); err != nil {
				t.Fatalf("push: %v", err)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("no websocket connection established")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (ts *testServer) connCount() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.conns)
}

func waitFor(t *testing.T, ch <-chan events.Event) events.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return events.Event{}
	}
}

func TestConnectSendsTokenOnDial(t *testing.T) {
	gotToken := make(chan string, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken <- r.URL.Query().Get("token")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		conn.Close()
	}))
	defer srv.Close()

	ch := New("ws" + strings.TrimPrefix(srv.URL, "http"))
	ch.TokenSource = func() string { return "tok-xyz" }
	defer ch.Close()

	if err := ch.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	select {
	case token := <-gotToken:
		if token != "tok-xyz" {
			t.Errorf("token query = %q, want tok-xyz", token)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never saw the dial")
	}
}

func TestConnectIsIdempotent(t *testing.T) {
	ts := newTestServer(t)
	ch := New(ts.wsURL())
	defer ch.Close()

	received := make(chan events.Event, 4)
	ch.On(events.OrderCreated, func(ev events.Event) { received <- ev })

	if err := ch.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := ch.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := ts.connCount(); got != 1 {
		t.Fatalf("server saw %d connections, want 1", got)
	}

	ts.push(t, events.Event{Name: events.OrderCreated, Data: map[string]interface{}{"order_number": "ORD-1"}})
	waitFor(t, received)

	select {
	case <-received:
		t.Error("event delivered twice for a single push")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestOffStopsDelivery(t *testing.T) {
	ts := newTestServer(t)
	ch := New(ts.wsURL())
	defer ch.Close()

	kept := make(chan events.Event, 4)
	dropped := make(chan events.Event, 4)
	ch.On(events.OrderCreated, func(ev events.Event) { kept <- ev })
	sub := ch.On(events.OrderCreated, func(ev events.Event) { dropped <- ev })
	ch.Off(sub)

	if err := ch.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	ts.push(t, events.Event{Name: events.OrderCreated, Data: map[string]interface{}{"order_number": "ORD-2"}})
	waitFor(t, kept)

	select {
	case <-dropped:
		t.Error("handler fired after Off")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestEventsArriveInOrder(t *testing.T) {
	ts := newTestServer(t)
	ch := New(ts.wsURL())
	defer ch.Close()

	received := make(chan events.Event, 16)
	ch.On(events.OrderCreated, func(ev events.Event) { received <- ev })

	if err := ch.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}

	numbers := []string{"ORD-1", "ORD-2", "ORD-3", "ORD-4", "ORD-5"}
	for _, n := range numbers {
		ts.push(t, events.Event{Name: events.OrderCreated, Data: map[string]interface{}{"order_number": n}})
	}
	for _, want := range numbers {
		ev := waitFor(t, received)
		if got := ev.Data["order_number"]; got != want {
			t.Fatalf("got %v, want %s", got, want)
		}
	}
}

func TestUnrelatedEventsIgnored(t *testing.T) {
	ts := newTestServer(t)
	ch := New(ts.wsURL())
	defer ch.Close()

	received := make(chan events.Event, 4)
	ch.On(events.OrderCreated, func(ev events.Event) { received <- ev })

	if err := ch.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	ts.push(t, events.Event{Name: "coupon_expired", Data: map[string]interface{}{}})
	ts.push(t, events.Event{Name: events.OrderCreated, Data: map[string]interface{}{"order_number": "ORD-9"}})

	ev := waitFor(t, received)
	if ev.Data["order_number"] != "ORD-9" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}
