package grpcv1

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const RelayServiceName = "rosout_diagnostics.Relay"

// HealthController reports whether the relay is consuming rosout records.
type HealthController struct {
	server *health.Server
}

func NewHealthController() *HealthController {
	hs := health.NewServer()
	hs.SetServingStatus(RelayServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthController{server: hs}
}

func (c *HealthController) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	c.server.SetServingStatus(RelayServiceName, status)
}

func (c *HealthController) Shutdown() {
	c.server.Shutdown()
}

func RegisterServices(hc *HealthController) func(s *grpc.Server) {
	return func(s *grpc.Server) {
		healthpb.RegisterHealthServer(s, hc.server)
	}
}
