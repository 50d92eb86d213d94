package ssip

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFrameStatusOnly(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("225 OK MESSAGE QUEUED\r\n"))
	f, err := ReadFrame(r)
	require.NoError(t, err)
	assert.Equal(t, CodeMessageQueued, f.Status.Code)
	assert.Equal(t, "OK MESSAGE QUEUED", f.Status.Message)
	assert.Empty(t, f.Lines)
}

func TestReadFrameWithContinuationLines(t *testing.T) {
	raw := "249-male1\tenglish\tnone\r\n249-female1\tenglish\tnone\r\n249 OK VOICE LIST SENT\r\n"
	r := bufio.NewReader(strings.NewReader(raw))
	f, err := ReadFrame(r)
	require.NoError(t, err)
	require.Len(t, f.Lines, 2)
	assert.Equal(t, "male1\tenglish\tnone", f.Lines[0])
	assert.Equal(t, CodeVoicesListSent, f.Status.Code)
}

func TestReadFrameRejectsShortLine(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("12\r\n"))
	_, err := ReadFrame(r)
	require.Error(t, err)
	var protoErr *ProtocolError
	assert.ErrorAs(t, err, &protoErr)
}

func TestReadFrameRejectsNonNumericCode(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("abc OK\r\n"))
	_, err := ReadFrame(r)
	require.Error(t, err)
}

func TestWriteRequestAppendsCRLF(t *testing.T) {
	var buf strings.Builder
	w := bufio.NewWriter(&buf)
	err := WriteRequest(w, QuitRequest())
	require.NoError(t, err)
	assert.Equal(t, "QUIT\r\n", buf.String())
}
