package service

import (
	"github.com/Egor213/RosoutDiag/internal/domain"
)

//go:generate mockgen -source=service.go -destination=../mocks/service/mock.go -package=servicemocks

type Relay interface {
	Convert(record domain.LogRecord) (domain.DiagnosticReport, error)
	HandleIncoming(record domain.LogRecord) (domain.DiagnosticReport, bool, error)
}

type Services struct {
	Relay Relay
}

type ServicesDependencies struct {
	Identity string
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Relay: NewRelayService(deps.Identity),
	}
}
