package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/motus3d/motus/internal/core/config"
	"github.com/motus3d/motus/internal/core/events/bus"
	"github.com/motus3d/motus/internal/core/observability/log"
	"github.com/motus3d/motus/internal/core/scene"
	"github.com/motus3d/motus/internal/engine"
	"github.com/motus3d/motus/internal/host/bridge"
	"github.com/motus3d/motus/internal/host/memory"
)

func main() {
	var (
		configPath = flag.String("config", "", "scene file (.yaml, .yml or .json); built-in cube demo when empty")
		hostKind   = flag.String("host", "memory", "host binding: memory, websocket or quic")
		addr       = flag.String("addr", "", "remote host address for websocket/quic bridges")
		logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
	)
	flag.Parse()

	logger := log.New(log.ParseLevel(*logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-stopCh
		cancel()
	}()

	if err := run(ctx, logger, *configPath, *hostKind, *addr); err != nil {
		logger.Error("animator failed", log.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger log.Log, configPath, hostKind, addr string) error {
	sc, err := loadScene(configPath)
	if err != nil {
		return err
	}

	host, shutdown, err := buildHost(ctx, logger, hostKind, addr)
	if err != nil {
		return err
	}
	defer shutdown()

	b := bus.New()
	b.Subscribe(engine.EventKeyframeRecorded, func(e bus.Event) {
		logger.Debug("keyframe recorded",
			log.String("entity", e.Source),
			log.Any("frame", e.Data),
		)
	})

	eng := engine.New(host, logger, b)
	if err = eng.Build(sc); err != nil {
		return err
	}

	summary, err := eng.Run(ctx, sc.Steps)
	if err != nil {
		return err
	}
	logger.Info("animation complete",
		log.String("scene", summary.Scene),
		log.Int("entities", summary.Entities),
		log.Int("keyframes", summary.Keyframes),
		log.Int("end_frame", summary.EndFrame),
	)
	return nil
}

func loadScene(path string) (*config.Scene, error) {
	if path == "" {
		return config.CubeDemo(), nil
	}
	return config.LoadFile(path)
}

func buildHost(ctx context.Context, logger log.Log, kind, addr string) (scene.Host, func(), error) {
	switch kind {
	case "memory":
		return memory.New(), func() {}, nil

	case "websocket":
		if addr == "" {
			return nil, nil, fmt.Errorf("websocket host requires -addr")
		}
		transport, err := bridge.DialWebSocket(ctx, addr)
		if err != nil {
			return nil, nil, err
		}
		br := bridge.New(transport, logger)
		return br, func() { _ = br.Close() }, nil

	case "quic":
		if addr == "" {
			return nil, nil, fmt.Errorf("quic host requires -addr")
		}
		transport, err := bridge.DialQUIC(ctx, addr, nil)
		if err != nil {
			return nil, nil, err
		}
		br := bridge.New(transport, logger)
		return br, func() { _ = br.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown host kind %q", kind)
	}
}
