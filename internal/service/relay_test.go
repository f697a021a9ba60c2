package service_test

import (
	"testing"
	"time"

	"github.com/Egor213/RosoutDiag/internal/domain"
	"github.com/Egor213/RosoutDiag/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selfIdentity = "/rosout_diagnostics"

func batteryRecord() domain.LogRecord {
	return domain.LogRecord{
		Header: domain.Header{
			Seq:     7,
			Stamp:   time.Unix(1700000000, 500),
			FrameID: "base_link",
		},
		Severity:       domain.SeverityWarn,
		OriginName:     "/sensor_node",
		Message:        "low battery",
		SourceFile:     "battery.py",
		SourceFunction: "check",
		SourceLine:     42,
		Topics:         []string{"/rosout", "/battery"},
	}
}

func TestLevelFor(t *testing.T) {
	testCases := []struct {
		severity domain.Severity
		want     domain.Level
	}{
		{domain.SeverityDebug, domain.LevelOK},
		{domain.SeverityInfo, domain.LevelOK},
		{domain.SeverityWarn, domain.LevelWarn},
		{domain.SeverityError, domain.LevelError},
		{domain.SeverityFatal, domain.LevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.severity.String(), func(t *testing.T) {
			got, err := service.LevelFor(tc.severity)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLevelFor_CoversEverySeverity(t *testing.T) {
	for _, sev := range domain.Severities() {
		_, err := service.LevelFor(sev)
		assert.NoError(t, err, sev.String())
	}
}

func TestLevelFor_Unknown(t *testing.T) {
	for _, sev := range []domain.Severity{0, 3, 5, 32, 255} {
		_, err := service.LevelFor(sev)
		assert.ErrorIs(t, err, service.ErrUnknownSeverity)
	}
}

func TestRelayService_Convert(t *testing.T) {
	s := service.NewRelayService(selfIdentity)

	got, err := s.Convert(batteryRecord())
	require.NoError(t, err)

	want := domain.DiagnosticReport{
		Header: domain.Header{
			Seq:     7,
			Stamp:   time.Unix(1700000000, 500),
			FrameID: selfIdentity,
		},
		Statuses: []domain.DiagnosticStatus{
			{
				Level:      domain.LevelWarn,
				Name:       "/sensor_node",
				Message:    "low battery",
				HardwareID: "/sensor_node",
				Values: []domain.KeyValue{
					{Key: "file", Value: "battery.py"},
					{Key: "function", Value: "check"},
					{Key: "line", Value: "42"},
				},
			},
		},
	}
	assert.Equal(t, want, got)
}

func TestRelayService_Convert_Levels(t *testing.T) {
	s := service.NewRelayService(selfIdentity)

	testCases := []struct {
		name     string
		severity domain.Severity
		want     domain.Level
	}{
		{name: "fatal is error", severity: domain.SeverityFatal, want: domain.LevelError},
		{name: "debug is ok", severity: domain.SeverityDebug, want: domain.LevelOK},
		{name: "info is ok", severity: domain.SeverityInfo, want: domain.LevelOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := batteryRecord()
			rec.Severity = tc.severity

			got, err := s.Convert(rec)
			require.NoError(t, err)
			require.Len(t, got.Statuses, 1)
			assert.Equal(t, tc.want, got.Statuses[0].Level)
		})
	}
}

func TestRelayService_Convert_ReattributesHeader(t *testing.T) {
	s := service.NewRelayService(selfIdentity)

	for _, frame := range []string{"", "map", selfIdentity, "/sensor_node"} {
		rec := batteryRecord()
		rec.Header.FrameID = frame

		got, err := s.Convert(rec)
		require.NoError(t, err)
		assert.Equal(t, selfIdentity, got.Header.FrameID)
		assert.Equal(t, frame, rec.Header.FrameID, "input record must not be modified")
	}
}

func TestRelayService_Convert_UnknownSeverity(t *testing.T) {
	s := service.NewRelayService(selfIdentity)

	rec := batteryRecord()
	rec.Severity = 3

	got, err := s.Convert(rec)
	assert.ErrorIs(t, err, service.ErrUnknownSeverity)
	assert.Equal(t, domain.DiagnosticReport{}, got)
}

func TestRelayService_Convert_Idempotent(t *testing.T) {
	s := service.NewRelayService(selfIdentity)

	first, err := s.Convert(batteryRecord())
	require.NoError(t, err)
	second, err := s.Convert(batteryRecord())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRelayService_HandleIncoming(t *testing.T) {
	s := service.NewRelayService(selfIdentity)

	own := batteryRecord()
	own.OriginName = selfIdentity

	prefixed := batteryRecord()
	prefixed.OriginName = selfIdentity + "_other"

	unknown := batteryRecord()
	unknown.Severity = 0

	testCases := []struct {
		name    string
		record  domain.LogRecord
		wantOK  bool
		wantErr error
	}{
		{
			name:   "foreign record is relayed",
			record: batteryRecord(),
			wantOK: true,
		},
		{
			name:   "own record is dropped",
			record: own,
			wantOK: false,
		},
		{
			name:   "prefix of identity is not filtered",
			record: prefixed,
			wantOK: true,
		},
		{
			name:    "unknown severity fails",
			record:  unknown,
			wantOK:  false,
			wantErr: service.ErrUnknownSeverity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := s.HandleIncoming(tc.record)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			if !tc.wantOK {
				assert.Equal(t, domain.DiagnosticReport{}, got)
				return
			}

			want, err := s.Convert(tc.record)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Len(t, got.Statuses, 1)
		})
	}
}

func TestRelayService_HandleIncoming_OwnRecordAnySeverity(t *testing.T) {
	s := service.NewRelayService(selfIdentity)

	for _, sev := range append(domain.Severities(), 0) {
		rec := batteryRecord()
		rec.OriginName = selfIdentity
		rec.Severity = sev

		_, ok, err := s.HandleIncoming(rec)
		assert.NoError(t, err)
		assert.False(t, ok)
	}
}
