package device

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service produces the protocol responses.
type Service struct {
	logger   *zap.Logger
	location *time.Location
	now      func() time.Time
}

// NewService creates a new device service rendering times in location.
// A nil location means UTC.
func NewService(logger *zap.Logger, location *time.Location, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	s := &Service{
		logger:   logger,
		location: location,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the zone used for date answers.
func (s *Service) Location() *time.Location {
	return s.location
}

// Report returns the acknowledgement for a battery report.
func (s *Service) Report() ReportResponse {
	return ReportResponse{Code: 1, Msg: "ok"}
}

// RealtimeSoc returns the state of charge answer.
func (s *Service) RealtimeSoc() SocResponse {
	return SocResponse{Code: 1, Show: 0, Msg: "ok", Data: SocData{}}
}

// DateInfo renders the current instant in the configured zone.
func (s *Service) DateInfo() string {
	return FormatDateInfo(s.now().In(s.location))
}

// FormatDateInfo renders t as _YYYY_MM_DD_HH_MM_SS followed by DateInfoSuffix.
// The year is not padded; every other field is two digits.
func FormatDateInfo(t time.Time) string {
	return fmt.Sprintf("_%d_%02d_%02d_%02d_%02d_%02d%s",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), DateInfoSuffix)
}
