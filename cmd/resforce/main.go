package main

import (
	"flag"
	"fmt"
	gio "io"
	"net"
	"os"
	"runtime/trace"

	"github.com/colinrgodsey/resforce/lib/config"
	"github.com/colinrgodsey/resforce/lib/force"
	"github.com/colinrgodsey/resforce/lib/input"
	"github.com/colinrgodsey/resforce/lib/io"
	"github.com/colinrgodsey/resforce/lib/log"
	"github.com/colinrgodsey/serial"
	"go.uber.org/zap"

	"github.com/pkg/profile"
)

const connBufferSize = 8

var (
	configPath string
	devicePath string
	baud       int
	addr       string
	logLevel   string

	doTrace bool
	doProf  bool
)

func main() {
	flag.StringVar(&configPath, "config", "", "Path to HJSON config file")
	flag.StringVar(&devicePath, "device", "", "Path to serial device to prompt on")
	flag.IntVar(&baud, "baud", 0, "Baud rate for serial device")
	flag.StringVar(&addr, "addr", "", "TCP address to prompt on")
	flag.StringVar(&logLevel, "log-level", "", "Override the configured log level")

	flag.BoolVar(&doTrace, "trace", false, "Enable tracing (debug)")
	flag.BoolVar(&doProf, "prof", false, "Enable profiling (debug)")
	flag.Parse()

	if devicePath != "" && baud <= 0 {
		fmt.Println("Baud flag required with device.")
		os.Exit(1)
	} else if flag.NArg() > 0 {
		fmt.Println("Unexpected arguments, use -device and -baud, or -addr.")
		os.Exit(1)
	}

	conf := config.Default()
	if configPath != "" {
		var err error
		if conf, err = config.LoadConfig(configPath); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
	if logLevel != "" {
		conf.LogLevel = logLevel
	}

	logger, err := log.New(conf.LogLevel, conf.LogFormat)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer logger.Sync()

	if doTrace {
		trace.Start(os.Stderr)
		defer trace.Stop()
	}

	if doProf {
		defer profile.Start().Stop()
	}

	if err := run(conf, logger); err != nil {
		logger.Error("resforce failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(conf config.Config, logger *zap.Logger) error {
	rw, err := openSource(logger)
	if err != nil {
		return fmt.Errorf("Failed to start resforce: %w", err)
	}
	defer rw.Close()

	c := io.NewConn(connBufferSize, connBufferSize)
	done := make(chan error, 1)
	go func() {
		done <- io.LinePipe(rw, rw, c)
	}()

	s := input.NewSession(c, conf.Origin, logger)
	points, origin, err := s.Collect()
	if err == nil {
		res := force.Resultant(points, origin)
		logger.Info("resultant",
			zap.Int("points", len(points)),
			zap.Float64("fx", res.X),
			zap.Float64("fy", res.Y),
			zap.Float64("magnitude", res.Magnitude),
			zap.Float64("angle", res.Angle))
		s.Report(res)
	}
	c.Close()

	if perr := <-done; perr != nil && err == nil {
		err = perr
	}
	return err
}

type stdio struct {
	gio.Reader
	gio.Writer
}

func (stdio) Close() error { return nil }

func openSource(logger *zap.Logger) (gio.ReadWriteCloser, error) {
	switch {
	case devicePath != "":
		logger.Info("opening serial device", zap.String("device", devicePath), zap.Int("baud", baud))
		port, err := serial.OpenPort(&serial.Config{Name: devicePath, Baud: baud})
		if err != nil {
			return nil, fmt.Errorf("Failed to open %v: %w", devicePath, err)
		}
		return port, nil
	case addr != "":
		logger.Info("connecting", zap.String("addr", addr))
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("Failed to connect to %v: %w", addr, err)
		}
		return conn, nil
	}
	return stdio{os.Stdin, os.Stdout}, nil
}
