package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/citynav/pkg"
	"github.com/lintang-b-s/citynav/pkg/engine"
	"github.com/lintang-b-s/citynav/pkg/http"
	"github.com/lintang-b-s/citynav/pkg/http/usecases"
	"github.com/lintang-b-s/citynav/pkg/logger"
	"github.com/lintang-b-s/citynav/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	networkFile = flag.String("network_file", "", "yaml road network file, the embedded network when empty")
	snapRadius  = flag.Float64("snap_radius", 50, "max canvas distance between a point and the city it snaps to")
)

func main() {
	flag.Parse()

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	viper.SetDefault("NETWORK_FILE", *networkFile)
	viper.SetDefault("CANVAS_HEIGHT", pkg.DEFAULT_CANVAS_HEIGHT)
	viper.SetDefault("ROUTE_ESTIMATE_TRAVEL_TIME", true)
	viper.SetDefault("SNAP_RADIUS", *snapRadius)

	routingEngine, err := engine.NewEngine(engine.Config{
		NetworkFilePath:    viper.GetString("NETWORK_FILE"),
		CanvasHeight:       viper.GetFloat64("CANVAS_HEIGHT"),
		EstimateTravelTime: viper.GetBool("ROUTE_ESTIMATE_TRAVEL_TIME"),
	}, logger)
	if err != nil {
		logger.Fatal("failed to build routing engine", zap.Error(err))
	}

	routingService := usecases.NewRoutingService(logger, routingEngine.GetRoutingEngine(),
		routingEngine.GetSpatialIndex(), viper.GetFloat64("SNAP_RADIUS"))

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger).Use(ctx, routingService)

	signal := http.GracefulShutdown()
	logger.Info("citynav routing server stopping", zap.String("signal", signal.String()))
	cleanup()

	if err := api.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
	logger.Info("citynav routing server stopped")
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
