package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Admin message types
const (
	MsgParticipantJoined   MessageType = "participant_joined"
	MsgParticipantLeft     MessageType = "participant_left"
	MsgResponseRecorded    MessageType = "response_recorded"
	MsgAssessmentCompleted MessageType = "assessment_completed"
	MsgSummaryUpdated      MessageType = "summary_updated"
)

// Participant message types
const (
	MsgResultReady   MessageType = "result_ready"
	MsgInsightsReady MessageType = "insights_ready"
	MsgError         MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections per assessment
type Hub struct {
	// Assessment -> connections
	adminConns       map[string]map[*Connection]bool
	participantConns map[string]map[string]*Connection // assessmentID -> participantID -> conn

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	AssessmentID  string
	ParticipantID string // Empty for admin connections
	IsAdmin       bool
	Send          chan []byte
	Hub           *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	AssessmentID  string
	ToAdmins      bool
	ToParticipant string // Specific participant ID, empty with ToAdmins false means all participants
	Message       *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		adminConns:       make(map[string]map[*Connection]bool),
		participantConns: make(map[string]map[string]*Connection),
		register:         make(chan *Connection),
		unregister:       make(chan *Connection),
		broadcast:        make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsAdmin {
				if h.adminConns[conn.AssessmentID] == nil {
					h.adminConns[conn.AssessmentID] = make(map[*Connection]bool)
				}
				h.adminConns[conn.AssessmentID][conn] = true
				log.Printf("Admin connected to assessment %s", conn.AssessmentID)
			} else {
				if h.participantConns[conn.AssessmentID] == nil {
					h.participantConns[conn.AssessmentID] = make(map[string]*Connection)
				}
				h.participantConns[conn.AssessmentID][conn.ParticipantID] = conn
				log.Printf("Participant %s connected to assessment %s", conn.ParticipantID, conn.AssessmentID)

				h.notifyAdmins(conn.AssessmentID, MsgParticipantJoined, conn.ParticipantID)
			}
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if conn.IsAdmin {
				if admins, ok := h.adminConns[conn.AssessmentID]; ok && admins[conn] {
					delete(admins, conn)
					close(conn.Send)
					log.Printf("Admin disconnected from assessment %s", conn.AssessmentID)
				}
			} else {
				if participants, ok := h.participantConns[conn.AssessmentID]; ok {
					if existing, ok := participants[conn.ParticipantID]; ok && existing == conn {
						delete(participants, conn.ParticipantID)
						close(conn.Send)
						log.Printf("Participant %s disconnected from assessment %s", conn.ParticipantID, conn.AssessmentID)

						h.notifyAdmins(conn.AssessmentID, MsgParticipantLeft, conn.ParticipantID)
					}
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)

			if msg.ToAdmins {
				for conn := range h.adminConns[msg.AssessmentID] {
					select {
					case conn.Send <- data:
					default:
						// Drop message if buffer full
					}
				}
			} else if msg.ToParticipant != "" {
				if participants, ok := h.participantConns[msg.AssessmentID]; ok {
					if conn, ok := participants[msg.ToParticipant]; ok {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			} else {
				if participants, ok := h.participantConns[msg.AssessmentID]; ok {
					for _, conn := range participants {
						select {
						case conn.Send <- data:
						default:
						}
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToAdmins sends a message to every connected admin dashboard
// (implements service.Broadcaster)
func (h *Hub) BroadcastToAdmins(assessmentID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		AssessmentID: assessmentID,
		ToAdmins:     true,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// BroadcastToParticipant sends a message to a specific participant
// (implements service.Broadcaster)
func (h *Hub) BroadcastToParticipant(assessmentID, participantID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		AssessmentID:  assessmentID,
		ToParticipant: participantID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

func (h *Hub) notifyAdmins(assessmentID string, msgType MessageType, participantID string) {
	data, _ := json.Marshal(&Message{
		Type:    msgType,
		Payload: json.RawMessage(`{"participantId":"` + participantID + `"}`),
	})
	for conn := range h.adminConns[assessmentID] {
		select {
		case conn.Send <- data:
		default:
		}
	}
}
