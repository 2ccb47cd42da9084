package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// pingInterval and pongWait mirror rippled's WebSocket keepalive
// cadence: a ping every 30s, with the peer expected to respond within
// 90s of the last message received.
const (
	pingInterval = 30 * time.Second
	pongWait     = 90 * time.Second
	writeWait    = 10 * time.Second
)

// SubscriptionEvent is a single unsolicited message delivered on a
// subscribed stream: a ledger close, a transaction, a peer status
// change, and so on. Type is the event's "type" field (e.g.
// "transaction", "ledgerClosed"); Data is the raw decoded JSON object.
type SubscriptionEvent struct {
	Type string
	Data json.RawMessage
}

// pendingCall is a single in-flight request awaiting its response.
type pendingCall struct {
	resultCh chan json.RawMessage
	errCh    chan error
}

// subscription is a destination for events the server delivers without
// a matching request id.
type subscription struct {
	events chan SubscriptionEvent
}

// WebSocket is a multiplexed JSON-RPC transport: a single connection
// carries concurrent call/response traffic (demultiplexed by a
// monotonic request id) and subscription event streams (dispatched to
// every registered subscription since rippled's events carry no id).
type WebSocket struct {
	conn *websocket.Conn

	nextID int64

	mu           sync.Mutex
	pendingCalls map[int64]*pendingCall

	subMu         sync.Mutex
	subscriptions []*subscription

	writeCh chan []byte

	ctx    context.Context
	cancel context.CancelFunc
	closed chan struct{}
}

// WithEndpoint dials endpoint (e.g. "wss://s1.ripple.com/") and starts
// the connection's reader and writer loops.
func WithEndpoint(ctx context.Context, endpoint string) (*WebSocket, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: dialing %s: %w", endpoint, err)
	}

	wsCtx, cancel := context.WithCancel(context.Background())
	ws := &WebSocket{
		conn:         conn,
		pendingCalls: make(map[int64]*pendingCall),
		writeCh:      make(chan []byte, 256),
		ctx:          wsCtx,
		cancel:       cancel,
		closed:       make(chan struct{}),
	}

	go ws.readLoop()
	go ws.writeLoop()
	go ws.pingLoop()

	return ws, nil
}

// Close cancels the connection's background loops and closes the
// underlying socket. Closing the socket is what unblocks the read loop
// (it's sitting in a blocking ReadMessage), so it happens before waiting
// on shutdown to finish draining pending calls and subscriptions.
func (ws *WebSocket) Close() error {
	ws.cancel()
	err := ws.conn.Close()
	<-ws.closed
	return err
}

// Call sends a JSON-RPC request and blocks until its matching response
// arrives (matched by request id) or ctx is done.
func (ws *WebSocket) Call(ctx context.Context, method string, params any, out any) error {
	id := atomic.AddInt64(&ws.nextID, 1)

	var paramsArr []any
	if params != nil {
		paramsArr = []any{params}
	}
	body, err := json.Marshal(Request{ID: id, Method: method, Params: paramsArr})
	if err != nil {
		return err
	}

	pc := &pendingCall{resultCh: make(chan json.RawMessage, 1), errCh: make(chan error, 1)}
	ws.mu.Lock()
	ws.pendingCalls[id] = pc
	ws.mu.Unlock()
	defer func() {
		ws.mu.Lock()
		delete(ws.pendingCalls, id)
		ws.mu.Unlock()
	}()

	select {
	case ws.writeCh <- body:
	case <-ctx.Done():
		return ctx.Err()
	case <-ws.ctx.Done():
		return fmt.Errorf("transport: connection closed")
	}

	select {
	case result := <-pc.resultCh:
		if out != nil {
			return json.Unmarshal(result, out)
		}
		return nil
	case err := <-pc.errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-ws.ctx.Done():
		return fmt.Errorf("transport: connection closed")
	}
}

// Subscribe sends a subscribe request for the given streams/accounts
// payload and returns a channel of subsequent subscription events. The
// channel is closed when the WebSocket is closed.
func (ws *WebSocket) Subscribe(ctx context.Context, params map[string]any) (<-chan SubscriptionEvent, error) {
	sub := &subscription{events: make(chan SubscriptionEvent, 64)}
	ws.subMu.Lock()
	ws.subscriptions = append(ws.subscriptions, sub)
	ws.subMu.Unlock()

	if err := ws.Call(ctx, "subscribe", params, nil); err != nil {
		ws.removeSubscription(sub)
		return nil, err
	}
	return sub.events, nil
}

func (ws *WebSocket) removeSubscription(target *subscription) {
	ws.subMu.Lock()
	defer ws.subMu.Unlock()
	for i, s := range ws.subscriptions {
		if s == target {
			ws.subscriptions = append(ws.subscriptions[:i], ws.subscriptions[i+1:]...)
			close(s.events)
			return
		}
	}
}

// readLoop dispatches every incoming message: one carrying an "id" goes
// to its matching pendingCall, everything else is broadcast to every
// active subscription.
func (ws *WebSocket) readLoop() {
	defer ws.shutdown()

	ws.conn.SetReadDeadline(time.Now().Add(pongWait))
	ws.conn.SetPongHandler(func(string) error {
		ws.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := ws.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				log.Printf("transport: websocket read error: %v", err)
			}
			return
		}
		ws.conn.SetReadDeadline(time.Now().Add(pongWait))

		ws.dispatch(message)
	}
}

// wsEnvelope covers both shapes a WebSocket message can take: a
// call response (carrying the request's id) or a subscription event
// (no id, a "type" field instead).
type wsEnvelope struct {
	ID     json.RawMessage `json:"id"`
	Type   string          `json:"type"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

func (ws *WebSocket) dispatch(message []byte) {
	var envelope wsEnvelope
	if err := json.Unmarshal(message, &envelope); err != nil {
		log.Printf("transport: malformed websocket message: %v", err)
		return
	}

	if len(envelope.ID) > 0 {
		var id int64
		if err := json.Unmarshal(envelope.ID, &id); err == nil {
			ws.resolveCall(id, envelope)
			return
		}
	}

	ws.subMu.Lock()
	defer ws.subMu.Unlock()
	for _, sub := range ws.subscriptions {
		select {
		case sub.events <- SubscriptionEvent{Type: envelope.Type, Data: message}:
		default:
			log.Printf("transport: subscription channel full, dropping event type %q", envelope.Type)
		}
	}
}

func (ws *WebSocket) resolveCall(id int64, envelope wsEnvelope) {
	ws.mu.Lock()
	pc, ok := ws.pendingCalls[id]
	ws.mu.Unlock()
	if !ok {
		return
	}

	if envelope.Status == "error" || envelope.Error != "" {
		pc.errCh <- &RPCError{Code: envelope.Error}
		return
	}
	pc.resultCh <- envelope.Result
}

func (ws *WebSocket) writeLoop() {
	for {
		select {
		case <-ws.ctx.Done():
			return
		case message := <-ws.writeCh:
			ws.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("transport: websocket write error: %v", err)
				ws.cancel()
				return
			}
		}
	}
}

func (ws *WebSocket) pingLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ws.ctx.Done():
			return
		case <-ticker.C:
			ws.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				ws.cancel()
				return
			}
		}
	}
}

func (ws *WebSocket) shutdown() {
	ws.cancel()

	ws.subMu.Lock()
	for _, sub := range ws.subscriptions {
		close(sub.events)
	}
	ws.subscriptions = nil
	ws.subMu.Unlock()

	ws.mu.Lock()
	for id, pc := range ws.pendingCalls {
		pc.errCh <- fmt.Errorf("transport: connection closed")
		delete(ws.pendingCalls, id)
	}
	ws.mu.Unlock()

	close(ws.closed)
}

// AccountSequence fetches an account's next transaction sequence number
// via account_info, satisfying wallet.AutofillClient.
func (ws *WebSocket) AccountSequence(ctx context.Context, account string) (uint32, error) {
	var out struct {
		AccountData struct {
			Sequence uint32 `json:"Sequence"`
		} `json:"account_data"`
	}
	if err := ws.Call(ctx, "account_info", map[string]any{"account": account, "ledger_index": "current"}, &out); err != nil {
		return 0, err
	}
	return out.AccountData.Sequence, nil
}

// OpenLedgerFee fetches the network's current suggested open-ledger fee
// in drops via the fee RPC method, satisfying wallet.AutofillClient.
func (ws *WebSocket) OpenLedgerFee(ctx context.Context) (uint64, error) {
	var out struct {
		Drops struct {
			OpenLedgerFee string `json:"open_ledger_fee"`
		} `json:"drops"`
	}
	if err := ws.Call(ctx, "fee", nil, &out); err != nil {
		return 0, err
	}
	return strconv.ParseUint(out.Drops.OpenLedgerFee, 10, 64)
}

// CurrentLedgerIndex fetches the current open ledger's index via the
// ledger RPC method, satisfying wallet.AutofillClient.
func (ws *WebSocket) CurrentLedgerIndex(ctx context.Context) (uint32, error) {
	var out struct {
		LedgerCurrentIndex uint32 `json:"ledger_current_index"`
	}
	if err := ws.Call(ctx, "ledger", map[string]any{"ledger_index": "current"}, &out); err != nil {
		return 0, err
	}
	return out.LedgerCurrentIndex, nil
}
