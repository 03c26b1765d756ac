// Package server deals cards from a generated Spot It! deck to
// WebSocket clients. The deck is generated once at startup; clients
// draw cards explicitly, or the dealer pushes them on a timer.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/anguschiu1/cardgame/internal/protocol"
	"github.com/anguschiu1/cardgame/spotit"
)

// Server accepts WebSocket clients and deals them cards.
type Server struct {
	addr         string
	upgrader     websocket.Upgrader
	connections  map[*Connection]bool
	register     chan *Connection
	unregister   chan *Connection
	logger       *log.Logger
	mu           sync.RWMutex
	ctx          context.Context
	cancel       context.CancelFunc
	dealer       *Dealer
	clock        quartz.Clock
	dealInterval time.Duration
	listener     net.Listener
}

// NewServer creates a dealer server for the given deck. dealInterval
// of zero disables auto-dealing; clock is injectable for tests.
func NewServer(addr string, dealer *Dealer, dealInterval time.Duration, logger *log.Logger, clock quartz.Clock) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections:  make(map[*Connection]bool),
		register:     make(chan *Connection),
		unregister:   make(chan *Connection),
		logger:       logger.WithPrefix("server"),
		ctx:          ctx,
		cancel:       cancel,
		dealer:       dealer,
		clock:        clock,
		dealInterval: dealInterval,
	}
}

// Start listens and serves until Stop is called. It returns once the
// listener is closed.
func (s *Server) Start() error {
	go s.run()
	if s.dealInterval > 0 {
		s.scheduleAutoDeal()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	s.logger.Info("Dealer server listening",
		"addr", listener.Addr().String(),
		"order", s.dealer.Order(),
		"cards", s.dealer.Total())

	err = http.Serve(listener, mux)
	select {
	case <-s.ctx.Done():
		return nil // shut down via Stop
	default:
		return err
	}
}

// Addr returns the bound listen address, or the configured one before
// Start.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop stops the server and closes all connections.
func (s *Server) Stop() error {
	s.cancel()

	s.mu.Lock()
	if s.listener != nil {
		_ = s.listener.Close()
	}
	for conn := range s.connections {
		_ = conn.Close()
	}
	s.mu.Unlock()
	return nil
}

func (s *Server) run() {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Client connected", "total", total)

		case conn := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.connections[conn]; ok {
				delete(s.connections, conn)
				_ = conn.Close()
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info("Client disconnected", "total", total)

		case <-s.ctx.Done():
			return
		}
	}
}

// scheduleAutoDeal pushes one card to every client each interval until
// the deck runs out.
func (s *Server) scheduleAutoDeal() {
	s.clock.AfterFunc(s.dealInterval, func() {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		card, ok := s.dealer.Deal()
		if !ok {
			s.broadcast(s.mustMessage(protocol.TypeDeckEmpty, protocol.DeckEmptyData{
				Dealt: s.dealer.Dealt(),
			}))
			return
		}
		s.logger.Debug("Auto-dealing card", "remaining", s.dealer.Remaining())
		s.broadcast(s.mustMessage(protocol.TypeDeal, dealPayload(card, s.dealer.Remaining())))
		s.scheduleAutoDeal()
	})
}

func (s *Server) broadcast(msg *protocol.Message) {
	s.mu.RLock()
	conns := make([]*Connection, 0, len(s.connections))
	for conn := range s.connections {
		conns = append(conns, conn)
	}
	s.mu.RUnlock()

	for _, conn := range conns {
		_ = conn.Send(msg)
	}
}

// handleMessage routes one client message.
func (s *Server) handleMessage(conn *Connection, msg *protocol.Message) {
	switch msg.Type {
	case protocol.TypeJoin:
		var join protocol.JoinData
		if err := msg.Decode(&join); err != nil {
			s.sendError(conn, "malformed join payload")
			return
		}
		conn.SetName(join.Name)
		s.logger.Info("Player joined", "name", join.Name)
		welcome := s.mustMessage(protocol.TypeWelcome, protocol.WelcomeData{
			Order:          s.dealer.Order(),
			TotalCards:     s.dealer.Total(),
			SymbolsPerCard: s.dealer.Order() + 1,
			CardsLeft:      s.dealer.Remaining(),
		})
		_ = conn.Send(welcome)

	case protocol.TypeDraw:
		var draw protocol.DrawData
		if err := msg.Decode(&draw); err != nil {
			s.sendError(conn, "malformed draw payload")
			return
		}
		count := draw.Count
		if count <= 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			card, ok := s.dealer.Deal()
			if !ok {
				_ = conn.Send(s.mustMessage(protocol.TypeDeckEmpty, protocol.DeckEmptyData{
					Dealt: s.dealer.Dealt(),
				}))
				return
			}
			_ = conn.Send(s.mustMessage(protocol.TypeDeal, dealPayload(card, s.dealer.Remaining())))
		}

	default:
		s.sendError(conn, fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

func (s *Server) sendError(conn *Connection, text string) {
	_ = conn.Send(s.mustMessage(protocol.TypeError, protocol.ErrorData{Message: text}))
}

// mustMessage builds an envelope; payloads are our own structs, so a
// marshal failure is a programming error.
func (s *Server) mustMessage(t protocol.MessageType, data any) *protocol.Message {
	msg, err := protocol.NewMessage(t, data)
	if err != nil {
		s.logger.Error("Failed to marshal message", "type", t, "error", err)
		panic(err)
	}
	return msg
}

func dealPayload(card spotit.Card, remaining int) protocol.DealData {
	symbols := card.Symbols()
	names := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		names = append(names, sym.String())
	}
	return protocol.DealData{Symbols: names, CardsLeft: remaining}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s.logger, s)
	select {
	case s.register <- client:
	case <-s.ctx.Done():
		_ = client.Close()
		return
	}
	client.Start()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","cardsLeft":%d}`, s.dealer.Remaining())
}
