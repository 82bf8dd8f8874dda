// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// EventKind is the closed set of calendar entry kinds.
type EventKind int

const (
	EventMeeting EventKind = iota + 1
	EventInitiative
	EventGeneral
)

// EventStyle is the presentation metadata carried by each kind.
type EventStyle struct {
	Icon     string
	Gradient string
}

func (k EventKind) String() string {
	switch k {
	case EventMeeting:
		return "meeting"
	case EventInitiative:
		return "initiative"
	case EventGeneral:
		return "event"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Style returns the icon and colour gradient for the kind.
func (k EventKind) Style() EventStyle {
	switch k {
	case EventMeeting:
		return EventStyle{Icon: "Users", Gradient: "from-pink-500 to-rose-500"}
	case EventInitiative:
		return EventStyle{Icon: "Lightbulb", Gradient: "from-indigo-500 to-purple-500"}
	case EventGeneral:
		return EventStyle{Icon: "Calendar", Gradient: "from-emerald-500 to-teal-500"}
	}
	return EventStyle{Icon: "Calendar", Gradient: "from-gray-500 to-gray-600"}
}

// ParseEventKind maps the wire name of a kind back to its value.
func ParseEventKind(s string) (EventKind, error) {
	switch s {
	case "meeting":
		return EventMeeting, nil
	case "initiative":
		return EventInitiative, nil
	case "event":
		return EventGeneral, nil
	}
	return 0, fmt.Errorf("unknown event type %q", s)
}

func (k EventKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *EventKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseEventKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k *EventKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseEventKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
