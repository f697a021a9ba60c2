package domain

import "fmt"

type Level uint8

// Numeric values match diagnostic_msgs/DiagnosticStatus.
const (
	LevelOK    Level = 0
	LevelWarn  Level = 1
	LevelError Level = 2
)

func (l Level) String() string {
	switch l {
	case LevelOK:
		return "OK"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(l))
	}
}

type KeyValue struct {
	Key   string
	Value string
}

type DiagnosticStatus struct {
	Level      Level
	Name       string
	Message    string
	HardwareID string
	Values     []KeyValue
}

type DiagnosticReport struct {
	Header   Header
	Statuses []DiagnosticStatus
}
