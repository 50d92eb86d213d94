package ssip

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustReadFrame(t *testing.T, raw string) Frame {
	t.Helper()
	f, err := ReadFrame(bufio.NewReader(strings.NewReader(raw)))
	require.NoError(t, err)
	return f
}

func TestCheckStatusSuccess(t *testing.T) {
	f := Frame{Status: StatusLine{Code: CodeMessageQueued, Message: "OK MESSAGE QUEUED"}}
	assert.NoError(t, CheckStatus(f, CodeMessageQueued))
}

func TestCheckStatusFailure(t *testing.T) {
	f := Frame{Status: StatusLine{Code: 411, Message: "ERR PARAMETER NOT ON LIST"}}
	err := CheckStatus(f, CodeMessageQueued)
	require.Error(t, err)
	var ssipErr *SsipError
	assert.ErrorAs(t, err, &ssipErr)
}

func TestCheckStatusUnexpectedCode(t *testing.T) {
	f := Frame{Status: StatusLine{Code: CodeRateSet, Message: "OK RATE SET"}}
	err := CheckStatus(f, CodeMessageQueued)
	require.Error(t, err)
	var unexpected *UnexpectedStatusError
	assert.ErrorAs(t, err, &unexpected)
}

func TestDisambiguateCursorSetFirst(t *testing.T) {
	notif := Frame{Status: StatusLine{Code: 220, Message: "OK NOTIFICATION SET"}}
	assert.Equal(t, CodeNotificationSet, DisambiguateCursorSetFirst(notif))

	cursor := Frame{Status: StatusLine{Code: 220, Message: "OK CURSOR SET FIRST"}}
	assert.Equal(t, CodeHistoryCurSetFirst, DisambiguateCursorSetFirst(cursor))
}

func TestDisambiguateCursorSetFirstViaReadFrame(t *testing.T) {
	f := mustReadFrame(t, "220 OK CURSOR SET FIRST\r\n")
	assert.Equal(t, CodeHistoryCurSetFirst, DisambiguateCursorSetFirst(f))
}

func TestDecodeMessageID(t *testing.T) {
	f := Frame{Lines: []string{"42"}}
	id, err := DecodeMessageID(f)
	require.NoError(t, err)
	assert.Equal(t, MessageID(42), id)
}

func TestDecodeMessageIDTooManyLines(t *testing.T) {
	f := Frame{Lines: []string{"42", "99"}}
	_, err := DecodeMessageID(f)
	assert.ErrorIs(t, err, ErrTooManyLines)
}

func TestDecodeSynthesisVoices(t *testing.T) {
	f := Frame{Lines: []string{"male1\tenglish\tnone", "female1\tnone\tnone"}}
	voices, err := DecodeSynthesisVoices(f)
	require.NoError(t, err)
	require.Len(t, voices, 2)
	assert.Equal(t, "male1", voices[0].Name)
	require.NotNil(t, voices[0].Language)
	assert.Equal(t, "english", *voices[0].Language)
	assert.Nil(t, voices[0].Dialect)
	assert.Nil(t, voices[1].Language)
}

func TestDecodeHistoryClients(t *testing.T) {
	f := Frame{Lines: []string{"3 joe:myapp:main 1", "4 ann:otherapp:main 0"}}
	clients, err := DecodeHistoryClients(f)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, ClientID(3), clients[0].ID)
	assert.True(t, clients[0].Connected)
	assert.False(t, clients[1].Connected)
}

func TestDecodeEventBegin(t *testing.T) {
	f := Frame{Status: StatusLine{Code: EventCodeBegin}, Lines: []string{"10", "3"}}
	ev, err := DecodeEvent(f)
	require.NoError(t, err)
	assert.Equal(t, EventBegin, ev.Type)
	assert.Equal(t, "10", ev.ID.Message)
	assert.Equal(t, "3", ev.ID.Client)
}

func TestDecodeEventIndexMarkUsesThirdLine(t *testing.T) {
	f := Frame{Status: StatusLine{Code: EventCodeIndexMark}, Lines: []string{"10", "3", "mark1"}}
	ev, err := DecodeEvent(f)
	require.NoError(t, err)
	assert.Equal(t, EventIndexMark, ev.Type)
	assert.Equal(t, "mark1", ev.Mark)
}

func TestDecodeEventTooFewLines(t *testing.T) {
	f := Frame{Status: StatusLine{Code: EventCodeBegin}, Lines: []string{"10"}}
	_, err := DecodeEvent(f)
	assert.ErrorIs(t, err, ErrTooFewLines)
}
