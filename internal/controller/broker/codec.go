package brokerctrl

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Egor213/RosoutDiag/internal/domain"
)

var ErrMalformedRecord = fmt.Errorf("malformed rosout record")

// JSON layouts follow rosgraph_msgs/Log and diagnostic_msgs/DiagnosticArray.

type stampMsg struct {
	Secs  int64 `json:"secs"`
	Nsecs int64 `json:"nsecs"`
}

type headerMsg struct {
	Seq     uint32   `json:"seq"`
	Stamp   stampMsg `json:"stamp"`
	FrameID string   `json:"frame_id"`
}

type logMsg struct {
	Header   headerMsg `json:"header"`
	Level    uint8     `json:"level"`
	Name     string    `json:"name"`
	Msg      string    `json:"msg"`
	File     string    `json:"file"`
	Function string    `json:"function"`
	Line     uint32    `json:"line"`
	Topics   []string  `json:"topics"`
}

type keyValueMsg struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type statusMsg struct {
	Level      uint8         `json:"level"`
	Name       string        `json:"name"`
	Message    string        `json:"message"`
	HardwareID string        `json:"hardware_id"`
	Values     []keyValueMsg `json:"values"`
}

type diagnosticArrayMsg struct {
	Header headerMsg   `json:"header"`
	Status []statusMsg `json:"status"`
}

func headerToDomain(h headerMsg) domain.Header {
	return domain.Header{
		Seq:     h.Seq,
		Stamp:   time.Unix(h.Stamp.Secs, h.Stamp.Nsecs).UTC(),
		FrameID: h.FrameID,
	}
}

func headerFromDomain(h domain.Header) headerMsg {
	return headerMsg{
		Seq: h.Seq,
		Stamp: stampMsg{
			Secs:  h.Stamp.Unix(),
			Nsecs: int64(h.Stamp.Nanosecond()),
		},
		FrameID: h.FrameID,
	}
}

func DecodeLogRecord(value []byte) (domain.LogRecord, error) {
	var msg logMsg
	if err := json.Unmarshal(value, &msg); err != nil {
		return domain.LogRecord{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	return domain.LogRecord{
		Header:         headerToDomain(msg.Header),
		Severity:       domain.Severity(msg.Level),
		OriginName:     msg.Name,
		Message:        msg.Msg,
		SourceFile:     msg.File,
		SourceFunction: msg.Function,
		SourceLine:     msg.Line,
		Topics:         msg.Topics,
	}, nil
}

func EncodeLogRecord(record domain.LogRecord) ([]byte, error) {
	return json.Marshal(logMsg{
		Header:   headerFromDomain(record.Header),
		Level:    uint8(record.Severity),
		Name:     record.OriginName,
		Msg:      record.Message,
		File:     record.SourceFile,
		Function: record.SourceFunction,
		Line:     record.SourceLine,
		Topics:   record.Topics,
	})
}

func EncodeDiagnosticReport(report domain.DiagnosticReport) ([]byte, error) {
	msg := diagnosticArrayMsg{
		Header: headerFromDomain(report.Header),
		Status: make([]statusMsg, 0, len(report.Statuses)),
	}

	for _, st := range report.Statuses {
		values := make([]keyValueMsg, 0, len(st.Values))
		for _, kv := range st.Values {
			values = append(values, keyValueMsg{Key: kv.Key, Value: kv.Value})
		}
		msg.Status = append(msg.Status, statusMsg{
			Level:      uint8(st.Level),
			Name:       st.Name,
			Message:    st.Message,
			HardwareID: st.HardwareID,
			Values:     values,
		})
	}

	return json.Marshal(msg)
}
