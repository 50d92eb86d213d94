// Command notifications speaks one message with all lifecycle
// notifications enabled and prints the first two events that arrive, demonstrating
// ssipgo's goroutine/channel-based AsyncClient.
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

	dialCtx, cancelDial := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelDial()

	conn, err := transport.DialUnix(dialCtx, path, transport.ModeBlocking())
	if err != nil {
		log.WithError(err).Fatal("dial speech-dispatcher")
	}

	client, err := ssipgo.NewClient(conn)
	if err != nil {
		log.WithError(err).Fatal("construct client")
	}

	if err := client.SetClientName(ssip.NewClientName("notifications", "ssipgo")); err != nil {
		log.WithError(err).Fatal("set client name")
	}
	if err := client.SetNotification(ssip.NotifyAll, true); err != nil {
		log.WithError(err).Fatal("enable notifications")
	}

	async := ssipgo.NewAsyncClient(client)
	defer async.Close()

	ctx := context.Background()
	id, err := async.Speak(ctx, "this message reports its own lifecycle")
	if err != nil {
		log.WithError(err).Fatal("speak")
	}
	log.WithField("message_id", id).Info("message queued")

	for i := 0; i < 2; i++ {
		evCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		ev, err := async.ReceiveEvent(evCtx)
		cancel()
		if err != nil {
			log.WithError(err).Error("receive event")
			return
		}
		log.WithFields(logrus.Fields{
			"type":    ev.Type,
			"message": ev.ID.Message,
			"client":  ev.ID.Client,
		}).Info("event")
	}
}
