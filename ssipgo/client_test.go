package ssipgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssipgo/ssipgo/internal/ssiptest"
	"github.com/ssipgo/ssipgo/ssip"
)

func TestClientSetClientNameAndQuit(t *testing.T) {
	srv := ssiptest.NewServer()
	srv.Run([]ssiptest.Exchange{
		{Want: "SET self CLIENT_NAME joe:myapp:main", Reply: "208 OK CLIENT NAME SET\r\n"},
		{Want: "QUIT", Reply: "231 HAPPY HACKING\r\n"},
	})
	c, err := NewClient(srv.Client)
	require.NoError(t, err)

	require.NoError(t, c.SetClientName(ssip.NewClientName("joe", "myapp")))
	require.NoError(t, c.Quit())
	require.NoError(t, srv.Wait())
}

func TestClientSpeakReturnsMessageID(t *testing.T) {
	srv := ssiptest.NewServer()
	srv.Run([]ssiptest.Exchange{
		{Want: "SPEAK", Reply: "230 OK RECEIVING DATA\r\n"},
		{Want: "hello there", Reply: ""},
		{Want: ".", Reply: "225-100\r\n225 OK MESSAGE QUEUED\r\n"},
	})
	c, err := NewClient(srv.Client)
	require.NoError(t, err)

	id, err := c.Speak(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Equal(t, ssip.MessageID(100), id)
}

func TestClientGetRate(t *testing.T) {
	srv := ssiptest.NewServer()
	srv.Run([]ssiptest.Exchange{
		{Want: "GET RATE", Reply: "251-42\r\n251 OK GET\r\n"},
	})
	c, err := NewClient(srv.Client)
	require.NoError(t, err)

	rate, err := c.GetRate()
	require.NoError(t, err)
	assert.Equal(t, int8(42), rate)
}

func TestClientSetRateRejectsServerError(t *testing.T) {
	srv := ssiptest.NewServer()
	srv.Run([]ssiptest.Exchange{
		{Want: "SET self RATE 100", Reply: "411 ERR PARAMETER NOT ON LIST\r\n"},
	})
	c, err := NewClient(srv.Client)
	require.NoError(t, err)

	err = c.SetRate(ssip.CurrentClient(), 127)
	require.Error(t, err)
	var ssipErr *ssip.SsipError
	assert.ErrorAs(t, err, &ssipErr)
}

func TestClientListSynthesisVoices(t *testing.T) {
	srv := ssiptest.NewServer()
	srv.Run([]ssiptest.Exchange{
		{Want: "LIST SYNTHESIS_VOICES", Reply: "249-male1\tenglish\tnone\r\n249 OK VOICE LIST SENT\r\n"},
	})
	c, err := NewClient(srv.Client)
	require.NoError(t, err)

	voices, err := c.ListSynthesisVoices()
	require.NoError(t, err)
	require.Len(t, voices, 1)
	assert.Equal(t, "male1", voices[0].Name)
}

func TestClientReceiveEventAfterNotification(t *testing.T) {
	srv := ssiptest.NewServer()
	srv.Run([]ssiptest.Exchange{
		{Want: "SET self NOTIFICATION all on", Reply: "220 OK NOTIFICATION SET\r\n"},
		{Reply: "701-5\r\n701-3\r\n701 EVENT BEGIN\r\n"},
	})
	c, err := NewClient(srv.Client)
	require.NoError(t, err)

	require.NoError(t, c.SetNotification(ssip.NotifyAll, true))

	ev, err := c.ReceiveEvent()
	require.NoError(t, err)
	assert.Equal(t, ssip.EventBegin, ev.Type)
	assert.Equal(t, "5", ev.ID.Message)
	assert.Equal(t, "3", ev.ID.Client)
}

func TestClientHistoryCursorSetFirstDisambiguates220(t *testing.T) {
	srv := ssiptest.NewServer()
	srv.Run([]ssiptest.Exchange{
		{Want: "HISTORY CURSOR SET self first", Reply: "220 OK CURSOR SET FIRST\r\n"},
	})
	c, err := NewClient(srv.Client)
	require.NoError(t, err)

	require.NoError(t, c.HistoryCursorSet(ssip.CurrentClient(), ssip.HistoryFirst()))
}
