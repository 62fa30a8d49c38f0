package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/citynav/pkg/http/router"
	"github.com/lintang-b-s/citynav/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/citynav/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use. starts the API in the background, Wait returns its error once ctx is done
func (s *Server) Use(
	ctx context.Context,
	routingService controllers.RoutingService,
) *Server {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 50.0)

	config := http_server.Config{
		Port:         viper.GetInt("API_PORT"),
		Timeout:      viper.GetDuration("API_TIMEOUT"),
		UseRateLimit: viper.GetBool("USE_RATE_LIMIT"),
		RateLimitRPS: viper.GetFloat64("RATE_LIMIT_RPS"),
	}

	server := http_router.NewAPI(s.Log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, config, routingService)
	})
	s.g = g

	return s
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}

// GracefulShutdown. blocks until SIGINT or SIGTERM
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
