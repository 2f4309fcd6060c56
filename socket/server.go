package socket

import (
	"errors"
	"log"
	"time"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server used for push
// notifications. Clients join the room named by their profile's
// notifyChannel; every push is a broadcast to that room.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, channel string) {
		if channel == "" {
			log.Println("❌ Invalid channel in join request")
			return
		}
		log.Printf("👥 Socket %s joined channel %s\n", c.ID(), channel)
		c.Join(channel)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}

// SocketNotifier delivers notifications over socket.io rooms. Delivery is
// bounded by Timeout; a push that cannot be dispatched in time is an error
// the caller logs and drops.
type SocketNotifier struct {
	Server  *socketio.Server
	Timeout time.Duration
}

func (n *SocketNotifier) Notify(channelRef, text string) error {
	if channelRef == "" {
		return errors.New("empty notification channel")
	}

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	done := make(chan struct{}, 1)
	go func() {
		n.Server.BroadcastToRoom("/", channelRef, "notification", text)
		done <- struct{}{}
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return errors.New("notification delivery timed out")
	}
}
