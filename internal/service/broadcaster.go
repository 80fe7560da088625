package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToAdmins(assessmentID string, msgType string, payload interface{})
	BroadcastToParticipant(assessmentID, participantID string, msgType string, payload interface{})
}
