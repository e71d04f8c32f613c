package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps how many missed events one catchup response carries.
// A runner that missed more than this is told to reload over REST
// instead of paginating.
const catchupLimit = 200

// listenTimeout bounds the LISTEN command issued when the first
// subscriber of a channel arrives. Without it a stalled connection would
// block that client's read loop indefinitely.
const listenTimeout = 10 * time.Second

// Server → client message types.
const (
	msgConnectionEstablished = "connection.established"
	msgSubscriptionConfirmed = "subscription.confirmed"
	msgSubscriptionError     = "subscription.error"
	msgCatchupOverflow       = "catchup.overflow"
	msgError                 = "error"
	msgPong                  = "pong"
)

// CatchupEvent is one persisted event row replayed to a reconnecting
// client.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier reads persisted events for catchup. Implemented by
// EventServiceAdapter.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// ConnectionManager owns this process's WebSocket clients and their
// channel subscriptions. Runners subscribe to "namespace:<id>" for the
// namespaces they serve; dashboards subscribe to the global channel.
type ConnectionManager struct {
	conns   map[string]*wsClient
	connsMu sync.RWMutex

	// subscribers maps channel → set of client ids.
	subscribers map[string]map[string]bool
	subsMu      sync.RWMutex

	catchup CatchupQuerier

	// listener is set after construction; it drives LISTEN/UNLISTEN on
	// the shared PostgreSQL connection as channels gain and lose their
	// first and last subscriber.
	listener   *NotifyListener
	listenerMu sync.RWMutex

	writeTimeout time.Duration
}

// wsClient is one WebSocket connection.
//
// channels is touched only by the goroutine running HandleConnection
// (its read loop and deferred cleanup), so it needs no lock. Any future
// cross-goroutine mutation must add one.
type wsClient struct {
	id       string
	conn     *websocket.Conn
	channels map[string]bool
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewConnectionManager creates a new ConnectionManager.
func NewConnectionManager(catchup CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		conns:        make(map[string]*wsClient),
		subscribers:  make(map[string]map[string]bool),
		catchup:      catchup,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires in the NotifyListener. Called once at startup after
// both sides exist.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection runs one WebSocket client's lifecycle. Called by the
// HTTP handler after upgrade; blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &wsClient{
		id:       uuid.New().String(),
		conn:     conn,
		channels: make(map[string]bool),
		ctx:      ctx,
		cancel:   cancel,
	}

	m.register(c)
	defer m.unregister(c)

	m.sendJSON(c, map[string]string{
		"type":          msgConnectionEstablished,
		"connection_id": c.id,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", c.id, "error", err)
			continue
		}
		m.dispatch(ctx, c, &msg)
	}
}

// Broadcast delivers an event payload to every client subscribed to the
// channel.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.subsMu.RLock()
	ids := make([]string, 0, len(m.subscribers[channel]))
	for id := range m.subscribers[channel] {
		ids = append(ids, id)
	}
	m.subsMu.RUnlock()
	if len(ids) == 0 {
		return
	}

	// Snapshot the client pointers, then send without holding any lock:
	// a slow client may take up to writeTimeout and must not stall
	// register/unregister.
	m.connsMu.RLock()
	clients := make([]*wsClient, 0, len(ids))
	for _, id := range ids {
		if c, ok := m.conns[id]; ok {
			clients = append(clients, c)
		}
	}
	m.connsMu.RUnlock()

	for _, c := range clients {
		if err := m.sendRaw(c, event); err != nil {
			slog.Warn("Failed to send to WebSocket client",
				"connection_id", c.id, "error", err)
		}
	}
}

// ActiveConnections returns the number of open WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.connsMu.RLock()
	defer m.connsMu.RUnlock()
	return len(m.conns)
}

func (m *ConnectionManager) dispatch(ctx context.Context, c *wsClient, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": msgError, "message": "channel is required for subscribe"})
			return
		}
		if err := m.subscribe(c, msg.Channel); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    msgSubscriptionError,
				"channel": msg.Channel,
				"message": "failed to subscribe to channel",
			})
			return
		}
		m.sendJSON(c, map[string]string{
			"type":    msgSubscriptionConfirmed,
			"channel": msg.Channel,
		})
		// Auto catchup so a late subscriber sees everything already
		// persisted on the channel.
		m.replayEvents(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": msgError, "message": "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.sendJSON(c, map[string]string{"type": msgError, "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.replayEvents(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": msgPong})
	}
}

// subscribe adds the client to the channel and, for the channel's first
// subscriber, starts LISTEN synchronously. Doing LISTEN before the auto
// catchup closes the window where an event published between the two
// would be lost. A LISTEN failure is returned so the caller reports it
// instead of confirming a dead subscription.
func (m *ConnectionManager) subscribe(c *wsClient, channel string) error {
	m.subsMu.Lock()
	first := false
	if _, ok := m.subscribers[channel]; !ok {
		m.subscribers[channel] = make(map[string]bool)
		first = true
	}
	m.subscribers[channel][c.id] = true
	m.subsMu.Unlock()

	if first {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(listenCtx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.dropChannel(c, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	c.channels[channel] = true
	return nil
}

// dropChannel removes every subscriber of a channel after a LISTEN
// failure. Clients that subscribed while the failing LISTEN was in
// flight saw the channel entry already existed, skipped LISTEN, and got
// a confirmation they must now take back: each is sent a
// subscription.error, which the client contract treats as authoritative
// (discard the channel's events, re-subscribe with backoff or fall back
// to REST). The triggering client is informed by its own error return.
func (m *ConnectionManager) dropChannel(triggering *wsClient, channel string) {
	m.subsMu.Lock()
	affected := make([]string, 0, len(m.subscribers[channel]))
	for id := range m.subscribers[channel] {
		if id != triggering.id {
			affected = append(affected, id)
		}
	}
	delete(m.subscribers, channel)
	m.subsMu.Unlock()

	if len(affected) == 0 {
		return
	}

	m.connsMu.RLock()
	clients := make([]*wsClient, 0, len(affected))
	for _, id := range affected {
		if c, ok := m.conns[id]; ok {
			clients = append(clients, c)
		}
	}
	m.connsMu.RUnlock()

	for _, c := range clients {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", c.id, "channel", channel)
		m.sendJSON(c, map[string]string{
			"type":    msgSubscriptionError,
			"channel": channel,
			"message": "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes the client from the channel and, when the last
// subscriber leaves, stops LISTEN. The UNLISTEN goroutine re-checks the
// subscriber map first so a rapid unsubscribe/resubscribe (a runner
// re-watching its namespace on reconnect) never ends up unlistened.
func (m *ConnectionManager) unsubscribe(c *wsClient, channel string) {
	m.subsMu.Lock()
	if subs, ok := m.subscribers[channel]; ok {
		delete(subs, c.id)
		if len(subs) == 0 {
			delete(m.subscribers, channel)
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.subsMu.RLock()
					_, resubscribed := m.subscribers[channel]
					m.subsMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.subsMu.Unlock()

	delete(c.channels, channel)
}

// replayEvents sends the persisted events newer than lastEventID to one
// client, in order, injecting db_event_id from the row id (the stored
// payload does not carry it; only NOTIFY payloads do).
func (m *ConnectionManager) replayEvents(ctx context.Context, c *wsClient, channel string, lastEventID int) {
	if m.catchup == nil {
		return
	}

	events, err := m.catchup.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	overflow := len(events) > catchupLimit
	if overflow {
		events = events[:catchupLimit]
	}

	for _, evt := range events {
		evt.Payload["db_event_id"] = evt.ID
		payload, err := json.Marshal(evt.Payload)
		if err != nil {
			continue
		}
		if err := m.sendRaw(c, payload); err != nil {
			slog.Warn("Failed to send catchup event", "connection_id", c.id, "error", err)
			return
		}
	}

	if overflow {
		m.sendJSON(c, map[string]interface{}{
			"type":     msgCatchupOverflow,
			"channel":  channel,
			"has_more": true,
		})
	}
}

func (m *ConnectionManager) register(c *wsClient) {
	m.connsMu.Lock()
	defer m.connsMu.Unlock()
	m.conns[c.id] = c
}

func (m *ConnectionManager) unregister(c *wsClient) {
	for ch := range c.channels {
		m.unsubscribe(c, ch)
	}

	m.connsMu.Lock()
	delete(m.conns, c.id)
	m.connsMu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *wsClient, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", c.id, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", c.id, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *wsClient, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
