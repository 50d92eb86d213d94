// Command ssipcli is a small speech-dispatcher client for scripting:
// point it at a socket or TCP address, give it text on the command line
// or via stdin, and it speaks the text and exits once it's queued.
package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ssipgo/ssipgo/ssip"
	"github.com/ssipgo/ssipgo/ssipgo"
	"github.com/ssipgo/ssipgo/transport"
)

func main() {
	log := logrus.New()

	configPath := pflag.StringP("config", "c", "", "YAML config file")
	network := pflag.String("network", "", "transport: unix or tcp (overrides config)")
	address := pflag.String("address", "", "TCP address host:port (when network=tcp)")
	socketPath := pflag.String("socket", "", "Unix socket path (when network=unix)")
	user := pflag.String("user", "", "client user name")
	app := pflag.String("app", "", "client application name")
	metricsAddr := pflag.String("metrics-addr", "", "address to serve /metrics on (overrides config; empty keeps the config value)")
	rate := pflag.Int8("rate", 0, "speech rate, -100..100")
	verbose := pflag.BoolP("verbose", "v", false, "debug logging")
	pflag.Parse()

	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadConfigFile(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if *network != "" {
		cfg.Network = *network
	}
	if *address != "" {
		cfg.Address = *address
	}
	if *socketPath != "" {
		cfg.SocketPath = *socketPath
	}
	if *user != "" {
		cfg.User = *user
	}
	if *app != "" {
		cfg.App = *app
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}

	text := strings.Join(pflag.Args(), " ")
	if text == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.WithError(err).Fatal("read stdin")
		}
		text = strings.TrimRight(string(data), "\n")
	}
	if text == "" {
		log.Fatal("nothing to speak: pass text as arguments or on stdin")
	}

	reg := prometheus.NewRegistry()
	metrics := ssipgo.NewMetrics(reg)
	if cfg.MetricsAddr != "" {
		go serveMetrics(log, cfg.MetricsAddr, reg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := dial(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("dial speech-dispatcher")
	}
	defer conn.Close()

	client, err := ssipgo.NewClient(conn, ssipgo.WithClientMetrics(metrics))
	if err != nil {
		log.WithError(err).Fatal("construct client")
	}
	defer client.Close()

	if err := client.SetClientName(ssip.NewClientName(cfg.User, cfg.App)); err != nil {
		log.WithError(err).Fatal("set client name")
	}
	if *rate != 0 {
		if err := client.SetRate(ssip.CurrentClient(), *rate); err != nil {
			log.WithError(err).Fatal("set rate")
		}
	}

	id, err := client.Speak(ctx, text)
	if err != nil {
		log.WithError(err).Fatal("speak")
	}
	log.WithField("message_id", id).Info("message queued")

	if err := client.Quit(); err != nil {
		log.WithError(err).Fatal("quit")
	}
}

func dial(ctx context.Context, cfg config) (transport.Conn, error) {
	if cfg.Network == "tcp" {
		return transport.DialTCP(ctx, cfg.Address, transport.ModeBlocking())
	}
	path := cfg.SocketPath
	if path == "" {
		var err error
		path, err = transport.DefaultSocketPath()
		if err != nil {
			return nil, err
		}
	}
	return transport.DialUnix(ctx, path, transport.ModeBlocking())
}

func serveMetrics(log *logrus.Logger, addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	log.WithField("addr", addr).Info("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Error("metrics server stopped")
	}
}
