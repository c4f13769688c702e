package handler

import (
	"errors"
	"sync"
	"testing"
)

type fakePrintClient struct {
	mu         sync.Mutex
	messages   [][]byte
	failWrites bool
	closed     bool
}

func (f *fakePrintClient) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return errors.New("connection gone")
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakePrintClient) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakePrintClient) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func registerPrintClients(t *testing.T, clients ...printFeedClient) {
	t.Helper()
	mu.Lock()
	for _, client := range clients {
		printClients[client] = true
	}
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		for _, client := range clients {
			delete(printClients, client)
		}
		mu.Unlock()
	})
}

// One published print job must reach each connected printer exactly once,
// however many printers are connected.
func TestBroadcastPrintJobDeliversOncePerClient(t *testing.T) {
	first := &fakePrintClient{}
	second := &fakePrintClient{}
	registerPrintClients(t, first, second)

	broadcastPrintJob([]byte(`{"orderid":"ord-1"}`))

	if first.received() != 1 {
		t.Errorf("first client received %d messages, want 1", first.received())
	}
	if second.received() != 1 {
		t.Errorf("second client received %d messages, want 1", second.received())
	}

	broadcastPrintJob([]byte(`{"orderid":"ord-2"}`))

	if first.received() != 2 || second.received() != 2 {
		t.Errorf("after second job: %d and %d messages, want 2 each",
			first.received(), second.received())
	}
}

func TestBroadcastPrintJobDropsDeadClients(t *testing.T) {
	dead := &fakePrintClient{failWrites: true}
	live := &fakePrintClient{}
	registerPrintClients(t, dead, live)

	broadcastPrintJob([]byte(`{"orderid":"ord-1"}`))

	if live.received() != 1 {
		t.Errorf("live client received %d messages, want 1", live.received())
	}
	if !dead.closed {
		t.Error("dead client was not closed")
	}

	mu.Lock()
	_, stillRegistered := printClients[dead]
	mu.Unlock()
	if stillRegistered {
		t.Error("dead client still registered after failed write")
	}
}
