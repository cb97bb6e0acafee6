package grpc

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// startHealthServer runs the handler on an in-memory listener and returns a
// connected health client.
func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryLoggingInterceptor))
	h.Register(srv)

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestHealth_Serving(t *testing.T) {
	client := startHealthServer(t, NewHandler(logger.Nop()))
	ctx := context.Background()

	for _, name := range []string{"", VaultServiceName} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err, "service %q", name)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}

func TestHealth_UnknownService(t *testing.T) {
	client := startHealthServer(t, NewHandler(logger.Nop()))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "nope"})

	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHealth_NotServingAfterShutdown(t *testing.T) {
	h := NewHandler(logger.Nop())
	client := startHealthServer(t, h)

	h.Shutdown()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: VaultServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestUnaryLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)})
	client := startHealthServer(t, h)

	_, _ = client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	_, _ = client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "nope"})

	out := buf.String()
	assert.Contains(t, out, `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, out, `"code":"OK"`)
	assert.Contains(t, out, `"code":"NotFound"`)
}
