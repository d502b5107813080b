package message

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/gorilla/websocket"
)

var _ = Describe("Hub", func() {
	var (
		hub       *Hub
		server    *httptest.Server
		connCh    chan *websocket.Conn
		dialed    []*websocket.Conn
		dialedMu  sync.Mutex
		wsPayload = map[string]string{"content": "hello"}
	)

	BeforeEach(func() {
		hub = NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
		connCh = make(chan *websocket.Conn, 8)
		dialed = nil

		upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			connCh <- conn
		}))
	})

	AfterEach(func() {
		dialedMu.Lock()
		for _, c := range dialed {
			c.Close()
		}
		dialedMu.Unlock()
		server.Close()
	})

	// connect opens a real websocket pair, registers the server side with the
	// hub and drains the client side so deliveries never back up.
	connect := func(userID string) *client {
		url := "ws" + strings.TrimPrefix(server.URL, "http")
		clientConn, _, err := websocket.DefaultDialer.Dial(url, nil)
		Expect(err).NotTo(HaveOccurred())

		dialedMu.Lock()
		dialed = append(dialed, clientConn)
		dialedMu.Unlock()

		go func() {
			for {
				if _, _, err := clientConn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		c := &client{
			userID: userID,
			conn:   <-connCh,
			send:   make(chan []byte, 64),
		}
		hub.register(c)
		go c.writePump(hub)
		go c.readPump(hub)
		return c
	}

	It("delivers to a live connection", func() {
		connect("u1")
		Expect(hub.Deliver("u1", wsPayload)).To(BeTrue())
	})

	It("reports offline recipients as undelivered", func() {
		Expect(hub.Deliver("nobody", wsPayload)).To(BeFalse())
	})

	It("survives a reconnect while deliveries are in flight", func() {
		connect("u1")

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				for j := 0; j < 20; j++ {
					hub.Deliver("u1", wsPayload)
				}
			}()
		}

		// Replace the connection mid-flight; the old send channel is closed
		// while other goroutines are still delivering.
		connect("u1")
		wg.Wait()

		Expect(hub.Deliver("u1", wsPayload)).To(BeTrue())
	})

	It("keeps the replacement registered when the replaced connection unwinds", func() {
		first := connect("u1")
		connect("u1")

		// The replaced client's teardown must not evict its successor.
		hub.unregister(first)
		Expect(hub.Deliver("u1", wsPayload)).To(BeTrue())
	})
})
