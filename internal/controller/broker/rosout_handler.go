package brokerctrl

import (
	"context"

	"github.com/Egor213/RosoutDiag/internal/broker"
	logginghelper "github.com/Egor213/RosoutDiag/internal/controller/common/logging"
	"github.com/Egor213/RosoutDiag/internal/metrics"
	"github.com/Egor213/RosoutDiag/internal/service"
	errorsUtils "github.com/Egor213/RosoutDiag/pkg/errors"
)

// RosoutHandler adapts the relay to the transport: it decodes records from
// the input topic and hands converted reports to the publisher.
type RosoutHandler struct {
	relay     service.Relay
	publisher broker.Publisher
	counters  *metrics.Counters
}

func NewRosoutHandler(relay service.Relay, pub broker.Publisher, cnt *metrics.Counters) *RosoutHandler {
	return &RosoutHandler{
		relay:     relay,
		publisher: pub,
		counters:  cnt,
	}
}

func (h *RosoutHandler) Handle(_ context.Context, value []byte) error {
	record, err := DecodeLogRecord(value)
	if err != nil {
		h.counters.RecordResults.Inc(metrics.ResultFailed)
		return errorsUtils.WrapPathErr(err)
	}

	h.counters.RecordsReceived.Inc(record.Severity.String())

	report, ok, err := h.relay.HandleIncoming(record)
	if err != nil {
		h.counters.RecordResults.Inc(metrics.ResultFailed)
		logginghelper.LogError(record, err)
		return errorsUtils.WrapPathErr(err)
	}
	if !ok {
		h.counters.RecordResults.Inc(metrics.ResultFiltered)
		logginghelper.LogFiltered(record)
		return nil
	}

	payload, err := EncodeDiagnosticReport(report)
	if err != nil {
		h.counters.RecordResults.Inc(metrics.ResultFailed)
		logginghelper.LogError(record, err)
		return errorsUtils.WrapPathErr(err)
	}

	h.publisher.Publish(payload)
	h.counters.RecordResults.Inc(metrics.ResultPublished)
	logginghelper.LogRelayed(record, report)

	return nil
}
