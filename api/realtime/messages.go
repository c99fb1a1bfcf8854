package realtime

import (
	"encoding/json"
)

// ClientMessage is the only inbound frame the server understands.
type ClientMessage struct {
	Type    string `json:"type"`
	Content struct {
		ListUUID string `json:"list_uuid"`
	} `json:"content"`
}

type ServerEvent struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content"`
}

type memberCount struct {
	Room  string `json:"room"`
	Count int    `json:"count"`
}

// EntityEvent encodes an entity-change event ("event:created",
// "expense:updated", ...) carrying the affected record.
func EntityEvent(eventType string, entity interface{}) []byte {
	msg := ServerEvent{
		Type:    eventType,
		Content: entity,
	}

	encMsg, _ := json.Marshal(msg)
	return encMsg
}

// MemberCountEvent encodes the derived member-count event emitted on join.
func MemberCountEvent(room string, count int) []byte {
	msg := ServerEvent{
		Type: "member-count",
		Content: memberCount{
			Room:  room,
			Count: count,
		},
	}

	encMsg, _ := json.Marshal(msg)
	return encMsg
}
