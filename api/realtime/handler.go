package realtime

import (
	"context"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// RoomForList names the fan-out room of a list workspace.
func RoomForList(listUUID string) string {
	return "list-" + listUUID
}

type Subscriber struct {
	msgs     chan []byte
	UserUUID string
	// rooms the connection has joined; joining is additive, there is no
	// explicit leave, so stale rooms from a prior list context remain.
	rooms     map[string]struct{}
	closeSlow func()
}

// Broadcaster owns socket-to-room membership and best-effort fan-out.
// It is constructed once in routing and injected into handlers via the
// request context; there is no module-level registry.
type Broadcaster struct {
	subscriberMessageBuffer int
	logf                    func(f string, v ...interface{})
	subscribersMu           sync.Mutex
	subscribers             map[*Subscriber]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscriberMessageBuffer: 16,
		logf: func(f string, v ...interface{}) {
			log.Printf(f, v...)
		},
		subscribers: make(map[*Subscriber]struct{}),
	}
}

func (b *Broadcaster) addSubscriber(s *Subscriber) {
	b.subscribersMu.Lock()
	b.subscribers[s] = struct{}{}
	b.subscribersMu.Unlock()
}

func (b *Broadcaster) deleteSubscriber(s *Subscriber) {
	b.subscribersMu.Lock()
	delete(b.subscribers, s)
	b.subscribersMu.Unlock()
}

// JoinRoom records room membership for a connection. Joining is idempotent.
// The whole room, including the joiner, is told the new member count.
func (b *Broadcaster) JoinRoom(s *Subscriber, room string) {
	b.subscribersMu.Lock()
	s.rooms[room] = struct{}{}
	count := 0
	for sub := range b.subscribers {
		if _, ok := sub.rooms[room]; ok {
			count++
		}
	}
	b.subscribersMu.Unlock()

	b.PublishToRoom(room, MemberCountEvent(room, count))
}

// MemberCount reports how many open connections are members of a room.
func (b *Broadcaster) MemberCount(room string) int {
	b.subscribersMu.Lock()
	defer b.subscribersMu.Unlock()

	count := 0
	for s := range b.subscribers {
		if _, ok := s.rooms[room]; ok {
			count++
		}
	}
	return count
}

// PublishToRoom delivers a message to every connection currently recorded
// as a member of the room. Delivery is best effort: no acknowledgment, no
// replay for connections that join later, slow consumers get evicted.
func (b *Broadcaster) PublishToRoom(room string, msg []byte) {
	b.subscribersMu.Lock()
	defer b.subscribersMu.Unlock()

	for s := range b.subscribers {
		if _, ok := s.rooms[room]; !ok {
			continue
		}
		select {
		case s.msgs <- msg:
		default:
			go s.closeSlow()
		}
	}
}

// Publish delivers a message to every open connection regardless of room.
func (b *Broadcaster) Publish(msg []byte) {
	b.subscribersMu.Lock()
	defer b.subscribersMu.Unlock()

	for s := range b.subscribers {
		select {
		case s.msgs <- msg:
		default:
			go s.closeSlow()
		}
	}
}

func writeTimeout(ctx context.Context, timeout time.Duration, c *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return c.Write(ctx, websocket.MessageText, msg)
}

// Subscribe upgrades the request, registers the connection and pumps
// messages until the client goes away. Inbound traffic is limited to
// join-list messages; everything else is ignored.
func (b *Broadcaster) Subscribe(w http.ResponseWriter, r *http.Request, userUUID string) error {
	var mu sync.Mutex
	var c *websocket.Conn
	var closed bool
	s := &Subscriber{
		UserUUID: userUUID,
		msgs:     make(chan []byte, b.subscriberMessageBuffer),
		rooms:    make(map[string]struct{}),
		closeSlow: func() {
			mu.Lock()
			defer mu.Unlock()
			closed = true
			if c != nil {
				c.Close(websocket.StatusPolicyViolation, "connection too slow to keep up with messages")
			}
		},
	}
	b.addSubscriber(s)
	defer b.deleteSubscriber(s)

	c2, err := websocket.Accept(w, r, nil)
	if err != nil {
		return err
	}
	mu.Lock()
	if closed {
		mu.Unlock()
		return net.ErrClosed
	}
	c = c2
	mu.Unlock()
	defer c.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		defer cancel()
		for {
			var incoming ClientMessage
			if err := wsjson.Read(ctx, c, &incoming); err != nil {
				return
			}
			if incoming.Type == "join-list" && incoming.Content.ListUUID != "" {
				b.JoinRoom(s, RoomForList(incoming.Content.ListUUID))
			}
		}
	}()

	for {
		select {
		case msg := <-s.msgs:
			err := writeTimeout(ctx, time.Second*5, c, msg)
			if err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
