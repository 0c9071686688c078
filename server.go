package main

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"terrainwalker/physics"
	"terrainwalker/terrain"
)

// MeshPayload is sent once per connection: the full terrain geometry. The
// grid is immutable, so there is never a mesh update after this.
type MeshPayload struct {
	Type     string    `json:"type"`
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Spacing  float64   `json:"spacing"`
	Vertices []float32 `json:"vertices"`
	Indices  []uint32  `json:"indices"`
}

// PlayerPayload is streamed at a fixed interval.
type PlayerPayload struct {
	Type      string  `json:"type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	VelocityY float64 `json:"velocityY"`
	OnGround  bool    `json:"onGround"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // debug tooling connects from anywhere
	},
}

// TelemetryServer streams the terrain mesh and live player state over a
// websocket so external tooling can visualize a session. Debug glue, not a
// protocol surface.
type TelemetryServer struct {
	mesh     MeshPayload
	interval time.Duration
	port     int

	playerMu sync.RWMutex
	player   PlayerPayload

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*sync.Mutex
}

func NewTelemetryServer(grid *terrain.HeightGrid, verts []float32, indices []uint32, port, updateIntervalMs int) *TelemetryServer {
	return &TelemetryServer{
		mesh: MeshPayload{
			Type:     "mesh",
			Width:    grid.Width,
			Height:   grid.Height,
			Spacing:  grid.Spacing,
			Vertices: verts,
			Indices:  indices,
		},
		interval: time.Duration(updateIntervalMs) * time.Millisecond,
		port:     port,
		player:   PlayerPayload{Type: "player"},
		clients:  make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Start launches the HTTP listener and the broadcast loop. Returns
// immediately; the frame loop keeps feeding state via UpdatePlayer.
func (s *TelemetryServer) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	go s.broadcastLoop()
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		fmt.Printf("Telemetry server on http://localhost%s/ws\n", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("telemetry server stopped: %v", err)
		}
	}()
}

// UpdatePlayer snapshots the capsule state for the next broadcast. Called
// from the frame loop every tick.
func (s *TelemetryServer) UpdatePlayer(c *physics.CapsuleCollider) {
	s.playerMu.Lock()
	s.player = PlayerPayload{
		Type:      "player",
		X:         c.X,
		Y:         c.Y,
		Z:         c.Z,
		VelocityY: c.VelocityY,
		OnGround:  c.OnGround,
	}
	s.playerMu.Unlock()
}

func (s *TelemetryServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	writeMu := &sync.Mutex{}
	if err := conn.WriteJSON(s.mesh); err != nil {
		conn.Close()
		return
	}

	s.clientsMu.Lock()
	s.clients[conn] = writeMu
	s.clientsMu.Unlock()
	fmt.Printf("Telemetry client connected: %s\n", conn.RemoteAddr())

	// Drain the read side; a read error means the client is gone.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.dropClient(conn)
				return
			}
		}
	}()
}

func (s *TelemetryServer) dropClient(conn *websocket.Conn) {
	s.clientsMu.Lock()
	delete(s.clients, conn)
	s.clientsMu.Unlock()
	conn.Close()
}

func (s *TelemetryServer) broadcastLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for range ticker.C {
		s.playerMu.RLock()
		snapshot := s.player
		s.playerMu.RUnlock()

		s.clientsMu.RLock()
		conns := make([]*websocket.Conn, 0, len(s.clients))
		mus := make([]*sync.Mutex, 0, len(s.clients))
		for conn, mu := range s.clients {
			conns = append(conns, conn)
			mus = append(mus, mu)
		}
		s.clientsMu.RUnlock()

		for i, conn := range conns {
			mus[i].Lock()
			err := conn.WriteJSON(snapshot)
			mus[i].Unlock()
			if err != nil {
				s.dropClient(conn)
			}
		}
	}
}
