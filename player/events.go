package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/subplay/subplay/log"
)

// EventListener holds a persistent connection on which it observes the
// playback properties and forwards every notification to a channel.
type EventListener struct {
	socketPath string
	conn       net.Conn
	events     chan<- Event
	stopCh     chan struct{}
	done       chan struct{}
	mu         sync.Mutex
	listening  bool
}

// NewEventListener creates a listener for socketPath that publishes on events.
func NewEventListener(socketPath string, events chan<- Event) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		events:     events,
		stopCh:     make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start connects and subscribes. Observations are bound to the connection
// they were requested on, so they share the read loop's connection.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	for i, name := range observed {
		if err := writeCommand(conn, requestIDs.Add(1), []any{"observe_property", i + 1, name}); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	el.listening = true

	go el.readLoop()

	log.Infof("mpv event listener started on %s (observing: %v)", el.socketPath, observed)
	return nil
}

// Stop closes the connection and waits for the read loop to return.
func (el *EventListener) Stop() {
	el.mu.Lock()
	if !el.listening {
		el.mu.Unlock()
		return
	}
	el.listening = false
	close(el.stopCh)
	el.conn.Close()
	el.mu.Unlock()

	<-el.done
}

// Done is closed when the read loop has returned.
func (el *EventListener) Done() <-chan struct{} {
	return el.done
}

func (el *EventListener) readLoop() {
	defer close(el.done)

	scanner := bufio.NewScanner(el.conn)
	for scanner.Scan() {
		event, ok := parseEvent(scanner.Bytes())
		if !ok {
			continue
		}

		select {
		case el.events <- event:
		case <-el.stopCh:
			return
		}
	}

	select {
	case <-el.stopCh:
	default:
		if err := scanner.Err(); err != nil {
			log.Warnf("event listener read error: %v", err)
		}
	}
}

// parseEvent decodes one line. Replies to our own requests are not events.
func parseEvent(line []byte) (Event, bool) {
	var msg ipcMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		return Event{}, false
	}

	switch msg.Event {
	case "":
		return Event{}, false
	case "property-change":
		if msg.Name == "" {
			return Event{}, false
		}
		return Event{Name: msg.Name, Data: msg.Data}, true
	default:
		return Event{Name: msg.Event}, true
	}
}
