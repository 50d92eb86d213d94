package langdetect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ssipgo/ssipgo/internal/ssiptest"
	"github.com/ssipgo/ssipgo/ssipgo"
)

func TestDetectorMatchFallsBackToDefault(t *testing.T) {
	d := NewDetector(language.English, language.French)
	assert.Equal(t, language.French, d.Match(language.MustParse("fr-CA")))
	assert.Equal(t, language.English, d.Match(language.MustParse("de")))
}

func TestSendLinesMultilingualSwitchesLanguageBetweenRuns(t *testing.T) {
	srv := ssiptest.NewServer()
	srv.Run([]ssiptest.Exchange{
		{Want: "SET self LANGUAGE en", Reply: "201 OK LANGUAGE SET\r\n"},
		{Want: "SPEAK", Reply: "230 OK RECEIVING DATA\r\n"},
		{Want: "hello", Reply: ""},
		{Want: ".", Reply: "225-1\r\n225 OK MESSAGE QUEUED\r\n"},
		{Want: "SET self LANGUAGE fr", Reply: "201 OK LANGUAGE SET\r\n"},
		{Want: "SPEAK", Reply: "230 OK RECEIVING DATA\r\n"},
		{Want: "bonjour", Reply: ""},
		{Want: ".", Reply: "225-2\r\n225 OK MESSAGE QUEUED\r\n"},
	})
	client, err := ssipgo.NewClient(srv.Client)
	require.NoError(t, err)

	det := NewDetector(language.English, language.French)
	lines := []TaggedLine{
		{Text: "hello", Tag: language.English},
		{Text: "bonjour", Tag: language.French},
	}

	id, err := SendLinesMultilingual(context.Background(), client, det, lines)
	require.NoError(t, err)
	assert.EqualValues(t, 2, id)
}
