// Command list connects to speech-dispatcher and prints the synthesizer's
// native voices and, for each, the languages speech-dispatcher reports.
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ssipgo/ssipgo/ssip"
	"github.com/ssipgo/ssipgo/ssipgo"
	"github.com/ssipgo/ssipgo/transport"
)

func main() {
	log := logrus.New()

	path, err := transport.DefaultSocketPath()
	if err != nil {
		log.WithError(err).Fatal("resolve speech-dispatcher socket path")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := transport.DialUnix(ctx, path, transport.ModeBlocking())
	if err != nil {
		log.WithError(err).Fatal("dial speech-dispatcher")
	}
	defer conn.Close()

	client, err := ssipgo.NewClient(conn)
	if err != nil {
		log.WithError(err).Fatal("construct client")
	}
	defer client.Close()

	if err := client.SetClientName(ssip.NewClientName("list", "ssipgo")); err != nil {
		log.WithError(err).Fatal("set client name")
	}

	voices, err := client.ListSynthesisVoices()
	if err != nil {
		log.WithError(err).Fatal("list synthesis voices")
	}

	for _, v := range voices {
		entry := log.WithField("voice", v.Name)
		if v.Language != nil {
			entry = entry.WithField("language", *v.Language)
		}
		if v.Dialect != nil {
			entry = entry.WithField("dialect", *v.Dialect)
		}
		entry.Info("voice")
	}

	if err := client.Quit(); err != nil {
		log.WithError(err).Fatal("quit")
	}
}
