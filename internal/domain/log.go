package domain

import (
	"fmt"
	"time"
)

type Severity uint8

// Numeric values match rosgraph_msgs/Log.
const (
	SeverityDebug Severity = 1
	SeverityInfo  Severity = 2
	SeverityWarn  Severity = 4
	SeverityError Severity = 8
	SeverityFatal Severity = 16
)

func Severities() []Severity {
	return []Severity{SeverityDebug, SeverityInfo, SeverityWarn, SeverityError, SeverityFatal}
}

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(s))
	}
}

// Header is carried through the relay untouched except for FrameID.
type Header struct {
	Seq     uint32
	Stamp   time.Time
	FrameID string
}

type LogRecord struct {
	Header         Header
	Severity       Severity
	OriginName     string
	Message        string
	SourceFile     string
	SourceFunction string
	SourceLine     uint32
	Topics         []string
}
