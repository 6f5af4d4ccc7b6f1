package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ActuationMethod is how a switching action was carried out.
type ActuationMethod string

const (
	MethodRemote ActuationMethod = "R.ACC"
	MethodHMI    ActuationMethod = "HMI"
	MethodLocal  ActuationMethod = "Local"
	MethodManual ActuationMethod = "Manual"
)

// DefaultMethod is assigned to new items that do not name a method.
const DefaultMethod = MethodRemote

func (m ActuationMethod) String() string { return string(m) }

func (m ActuationMethod) IsValid() bool {
	switch m {
	case MethodRemote, MethodHMI, MethodLocal, MethodManual:
		return true
	}
	return false
}

// ParseActuationMethod matches s case-insensitively against the known methods.
// An empty string yields DefaultMethod.
func ParseActuationMethod(s string) (ActuationMethod, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMethod, nil
	}
	for _, m := range []ActuationMethod{MethodRemote, MethodHMI, MethodLocal, MethodManual} {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown actuation method %q", s)
}

// SwitchState is the position of a switch after an action: closed or open.
type SwitchState bool

const (
	SwitchOpen   SwitchState = false
	SwitchClosed SwitchState = true
)

// Symbols used by operators in written reports.
const (
	symbolClosed = "//"
	symbolOpen   = "#"
)

// Symbol returns the report notation: "//" for closed, "#" for open.
func (s SwitchState) Symbol() string {
	if s {
		return symbolClosed
	}
	return symbolOpen
}

// ParseSwitchState accepts both the boolean spellings and the legacy
// report symbols stored by older clients.
func ParseSwitchState(s string) (SwitchState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case symbolClosed, "true", "closed", "close":
		return SwitchClosed, nil
	case symbolOpen, "false", "open":
		return SwitchOpen, nil
	}
	return SwitchOpen, fmt.Errorf("unknown switch state %q", s)
}

// MarshalJSON always emits the boolean form.
func (s SwitchState) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(s))
}

// UnmarshalJSON accepts a JSON boolean or one of the legacy strings.
func (s *SwitchState) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*s = SwitchState(b)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("switch state: %w", err)
	}
	parsed, err := ParseSwitchState(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// SortOrder orders records by date.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// HistoryAction names the reversible operation recorded in the undo history.
type HistoryAction string

const (
	HistoryActionDelete HistoryAction = "delete"
)
