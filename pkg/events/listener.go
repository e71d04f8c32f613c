package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	// waitSlice is how long one WaitForNotification call may block before
	// the loop comes back around to drain pending LISTEN/UNLISTEN requests.
	waitSlice = 100 * time.Millisecond

	reconnectBackoffMin = time.Second
	reconnectBackoffMax = 30 * time.Second
)

// listenRequest asks the receive loop to run a LISTEN or UNLISTEN
// statement. Only the receive loop touches the pgx connection; funneling
// the statements through it avoids the "conn busy" race between
// WaitForNotification and Exec.
type listenRequest struct {
	sql  string
	done chan error
}

// NotifyListener holds one dedicated PostgreSQL connection, LISTENs on
// the namespace channels runners are watching, and hands every
// notification to the ConnectionManager for WebSocket fan-out.
type NotifyListener struct {
	connString string

	conn   *pgx.Conn
	connMu sync.Mutex

	manager *ConnectionManager

	// watched tracks the channels currently under LISTEN so reconnect
	// can restore them.
	watched   map[string]bool
	watchedMu sync.RWMutex

	requests chan listenRequest
	running  atomic.Bool

	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// NewNotifyListener creates a listener for the given connection string.
// Start must be called before Subscribe.
func NewNotifyListener(connString string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		manager:    manager,
		watched:    make(map[string]bool),
		requests:   make(chan listenRequest, 16),
	}
}

// Start opens the dedicated connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("failed to connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	l.running.Store(true)

	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("NotifyListener started")
	return nil
}

// Subscribe starts LISTENing on a channel. Idempotent.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.watchedMu.RLock()
	already := l.watched[channel]
	l.watchedMu.RUnlock()
	if already {
		return nil
	}

	if err := l.exec(ctx, "LISTEN", channel); err != nil {
		return err
	}

	l.watchedMu.Lock()
	l.watched[channel] = true
	l.watchedMu.Unlock()
	slog.Debug("Watching NOTIFY channel", "channel", channel)
	return nil
}

// Unsubscribe stops LISTENing on a channel. Idempotent.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.watchedMu.RLock()
	watched := l.watched[channel]
	l.watchedMu.RUnlock()
	if !watched || !l.running.Load() {
		return nil
	}

	if err := l.exec(ctx, "UNLISTEN", channel); err != nil {
		return err
	}

	l.watchedMu.Lock()
	delete(l.watched, channel)
	l.watchedMu.Unlock()
	return nil
}

// exec routes a LISTEN/UNLISTEN statement through the receive loop and
// waits for the result.
func (l *NotifyListener) exec(ctx context.Context, verb, channel string) error {
	if !l.running.Load() {
		return fmt.Errorf("LISTEN connection not established")
	}

	sanitized := pgx.Identifier{channel}.Sanitize()
	req := listenRequest{
		sql:  verb + " " + sanitized,
		done: make(chan error, 1),
	}

	select {
	case l.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.done:
		if err != nil {
			return fmt.Errorf("%s %s failed: %w", verb, sanitized, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop alternates between draining LISTEN/UNLISTEN requests and
// waiting for notifications, reconnecting on connection loss. It is the
// only goroutine that uses the pgx connection.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.drainRequests(ctx)

		conn := l.currentConn()
		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, waitSlice)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

func (l *NotifyListener) currentConn() *pgx.Conn {
	l.connMu.Lock()
	defer l.connMu.Unlock()
	return l.conn
}

// drainRequests executes every queued LISTEN/UNLISTEN statement.
func (l *NotifyListener) drainRequests(ctx context.Context) {
	for {
		select {
		case req := <-l.requests:
			conn := l.currentConn()
			if conn == nil {
				req.done <- fmt.Errorf("LISTEN connection not established")
				continue
			}
			_, err := conn.Exec(ctx, req.sql)
			req.done <- err
		default:
			return
		}
	}
}

// reconnect re-establishes the connection with exponential backoff and
// restores LISTEN for every watched channel.
func (l *NotifyListener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := reconnectBackoffMin
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, reconnectBackoffMax)
			continue
		}
		l.conn = conn

		l.watchedMu.RLock()
		for ch := range l.watched {
			sanitized := pgx.Identifier{ch}.Sanitize()
			if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
				slog.Error("Re-LISTEN failed", "channel", ch, "error", err)
			}
		}
		l.watchedMu.RUnlock()

		slog.Info("NotifyListener reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it, then closes the
// connection. Waiting first prevents a race between WaitForNotification
// and conn.Close.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.running.Store(false)

	if l.stopLoop != nil {
		l.stopLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
