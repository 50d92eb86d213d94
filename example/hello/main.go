// Command hello connects to speech-dispatcher over its default Unix
// socket, announces a client name, and speaks one line of text.
package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ssipgo/ssipgo/ssip"
	"github.com/ssipgo/ssipgo/ssipgo"
	"github.com/ssipgo/ssipgo/transport"
)

func main() {
	log := logrus.New()

	text := "hello from ssipgo"
	if len(os.Args) > 1 {
		text = strings.Join(os.Args[1:], " ")
	}

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

	if err := client.SetClientName(ssip.NewClientName("hello", "ssipgo")); err != nil {
		log.WithError(err).Fatal("set client name")
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
