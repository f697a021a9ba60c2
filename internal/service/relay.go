package service

import (
	"fmt"
	"strconv"

	"github.com/Egor213/RosoutDiag/internal/domain"
)

// RelayService turns rosout log records into diagnostic reports authored by
// identity. It holds no mutable state and is safe for concurrent use.
type RelayService struct {
	identity string
}

func NewRelayService(identity string) *RelayService {
	return &RelayService{
		identity: identity,
	}
}

func (s *RelayService) Identity() string {
	return s.identity
}

// LevelFor maps every known severity to a diagnostic level.
func LevelFor(severity domain.Severity) (domain.Level, error) {
	switch severity {
	case domain.SeverityDebug, domain.SeverityInfo:
		return domain.LevelOK, nil
	case domain.SeverityWarn:
		return domain.LevelWarn, nil
	case domain.SeverityError, domain.SeverityFatal:
		return domain.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownSeverity, uint8(severity))
	}
}

func (s *RelayService) Convert(record domain.LogRecord) (domain.DiagnosticReport, error) {
	level, err := LevelFor(record.Severity)
	if err != nil {
		return domain.DiagnosticReport{}, err
	}

	header := record.Header
	header.FrameID = s.identity

	status := domain.DiagnosticStatus{
		Level:      level,
		Name:       record.OriginName,
		Message:    record.Message,
		HardwareID: record.OriginName,
		Values: []domain.KeyValue{
			{Key: "file", Value: record.SourceFile},
			{Key: "function", Value: record.SourceFunction},
			{Key: "line", Value: strconv.FormatUint(uint64(record.SourceLine), 10)},
		},
	}

	return domain.DiagnosticReport{
		Header:   header,
		Statuses: []domain.DiagnosticStatus{status},
	}, nil
}

// HandleIncoming reports ok=false for records this relay authored itself.
func (s *RelayService) HandleIncoming(record domain.LogRecord) (domain.DiagnosticReport, bool, error) {
	if record.OriginName == s.identity {
		return domain.DiagnosticReport{}, false, nil
	}

	report, err := s.Convert(record)
	if err != nil {
		return domain.DiagnosticReport{}, false, err
	}
	return report, true, nil
}
