// Package monitor serves stepper activity to external observers over
// websocket. Each connected client receives every event from every dial's
// feed as a JSON frame; delivery inherits the feed's lossy buffering, so a
// stalled client never backs up into the controls.
package monitor

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/germanamz/stepkit/pkg/stepper"
)

// Source is one observable dial: a human label plus its event feed.
type Source struct {
	Label string
	Feed  *stepper.Feed
}

// WireEvent is the JSON frame streamed to monitor clients.
type WireEvent struct {
	Dial string `json:"dial"`
	stepper.Event
}

// Server exposes the dial feeds on GET /events.
type Server struct {
	sources []Source
	httpSrv *http.Server
	ln      net.Listener
}

// New creates a monitor server for addr. Call Start to begin serving.
func New(addr string, sources []Source) *Server {
	s := &Server{sources: sources}

	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.handleEvents)

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start binds the listen address and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("monitor: listen on %s: %w", s.httpSrv.Addr, err)
	}
	s.ln = ln

	go func() {
		// http.ErrServerClosed is the normal shutdown path.
		_ = s.httpSrv.Serve(ln)
	}()

	return nil
}

// Addr returns the bound listen address, useful with ":0".
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.httpSrv.Addr
	}
	return s.ln.Addr().String()
}

// Shutdown stops the server, closing client connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("monitor: shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusInternalError, "monitor closing")

	ctx := r.Context()
	out := make(chan WireEvent, 64)
	stop := make(chan struct{})

	// One pump per source, fanning into the connection's outbox. The pumps
	// only ever write to out; the websocket is written from this handler
	// goroutine alone.
	var wg sync.WaitGroup
	for _, src := range s.sources {
		sub := src.Feed.Subscribe(64)

		wg.Add(1)
		go func(label string, feed *stepper.Feed, sub *stepper.Subscription) {
			defer wg.Done()
			defer feed.Unsubscribe(sub)

			for {
				select {
				case <-stop:
					return
				case e, ok := <-sub.C:
					if !ok {
						return
					}
					select {
					case out <- WireEvent{Dial: label, Event: e}:
					case <-stop:
						return
					}
				}
			}
		}(src.Label, src.Feed, sub)
	}

	defer func() {
		close(stop)
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case ev := <-out:
			if err := wsjson.Write(ctx, conn, ev); err != nil {
				return
			}
		}
	}
}
