package ssip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeSimpleRequests(t *testing.T) {
	assert.Equal(t, "STOP self", Stop(LastMessage()).Encode())
	assert.Equal(t, "STOP all", Stop(AllMessages()).Encode())
	assert.Equal(t, "STOP 42", Stop(MessageByID(42)).Encode())
	assert.Equal(t, "QUIT", QuitRequest().Encode())
	assert.Equal(t, "LIST SYNTHESIS_VOICES", ListSynthesisVoices().Encode())
	assert.Equal(t, "LIST VOICES", ListVoiceTypes().Encode())
	assert.Equal(t, "BLOCK BEGIN", BlockBegin().Encode())
	assert.Equal(t, "BLOCK END", BlockEnd().Encode())
}

func TestEncodeSetClientName(t *testing.T) {
	name := NewClientName("joe", "myapp")
	req := SetClientName(name)
	assert.Equal(t, "SET self CLIENT_NAME joe:myapp:main", req.Encode())
}

func TestEncodeSpeakBlock(t *testing.T) {
	assert.Equal(t, "SPEAK", SpeakRequest().Encode())
	assert.Equal(t, "hello world", SendLine("hello world").Encode())
}

func TestEncodeSendLinesAddsTerminator(t *testing.T) {
	req := SendLines([]string{"line one", "line two"})
	assert.Equal(t, "line one\r\nline two\r\n.", req.Encode())
}

func TestEncodeRateClampsToRange(t *testing.T) {
	assert.Equal(t, "SET self RATE 100", SetRate(CurrentClient(), 127).Encode())
	assert.Equal(t, "SET self RATE -100", SetRate(CurrentClient(), -128).Encode())
	assert.Equal(t, "SET all RATE 50", SetRate(AllClients(), 50).Encode())
}

func TestEncodeHistoryCursor(t *testing.T) {
	assert.Equal(t, "HISTORY CURSOR SET self first", HistoryCursorSet(CurrentClient(), HistoryFirst()).Encode())
	assert.Equal(t, "HISTORY CURSOR SET self last", HistoryCursorSet(CurrentClient(), HistoryLast()).Encode())
	assert.Equal(t, "HISTORY CURSOR SET self pos 3", HistoryCursorSet(CurrentClient(), HistoryAt(3)).Encode())
	assert.Equal(t, "HISTORY CURSOR forward", HistoryCursorMove(CursorForward).Encode())
}

func TestEncodeHistorySort(t *testing.T) {
	assert.Equal(t, "HISTORY SORT desc time", HistorySort(SortDescending, SortByTime).Encode())
}

func TestEncodeHistorySearchQuotesCondition(t *testing.T) {
	req := HistorySearch(CurrentClient(), "hello")
	assert.Equal(t, `HISTORY SEARCH self "hello"`, req.Encode())
}

func TestEncodeHistoryMessageTypeOrderingQuoted(t *testing.T) {
	req := HistorySetMessageTypeOrdering([]Ordering{OrderingText, OrderingChar})
	assert.Equal(t, `HISTORY SET MESSAGE_TYPE_ORDERING "text char"`, req.Encode())
}

func TestEncodeNotificationToggle(t *testing.T) {
	assert.Equal(t, "SET self NOTIFICATION all on", SetNotification(NotifyAll, true).Encode())
	assert.Equal(t, "SET self NOTIFICATION begin off", SetNotification(NotifyBegin, false).Encode())
}

func TestEncodeSetPunctuation(t *testing.T) {
	req := SetPunctuation(CurrentClient(), PunctuationAll)
	assert.Equal(t, "SET self PUNCTUATION all", req.Encode())
}

func TestEncodeHistoryGetClientMessages(t *testing.T) {
	req := HistoryGetClientMessages(ClientByID(3), 0, 10)
	assert.Equal(t, "HISTORY GET CLIENT_MESSAGES 3 0_10", req.Encode())
}
