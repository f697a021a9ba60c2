package logginghelper

import (
	"github.com/Egor213/RosoutDiag/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogRelayed(record domain.LogRecord, report domain.DiagnosticReport) {
	fields := log.Fields{
		"origin":   record.OriginName,
		"severity": record.Severity.String(),
	}
	if len(report.Statuses) > 0 {
		fields["level"] = report.Statuses[0].Level.String()
	}
	log.WithFields(fields).Info("Relayed rosout record to diagnostics")
}

func LogFiltered(record domain.LogRecord) {
	log.WithFields(log.Fields{
		"origin":   record.OriginName,
		"severity": record.Severity.String(),
	}).Debug("Skipped self-originated rosout record")
}

func LogError(record domain.LogRecord, err error) {
	log.WithFields(log.Fields{
		"origin":   record.OriginName,
		"severity": record.Severity.String(),
		"error":    err,
	}).Error("Failed to convert rosout record")
}
