package ssip

// ReturnCode is the 3-digit numeric status prefix on every server line.
type ReturnCode uint16

// Successful completion codes. Two of these share the same numeric value
// (220) and must be disambiguated by message text; see
// DisambiguateCursorSetFirst.
const (
	CodeLanguageSet          ReturnCode = 201
	CodePrioritySet          ReturnCode = 202
	CodeRateSet              ReturnCode = 203
	CodePitchSet             ReturnCode = 204
	CodePunctuationSet       ReturnCode = 205
	CodeCapLetRecognSet      ReturnCode = 206
	CodeSpellingSet          ReturnCode = 207
	CodeClientNameSet        ReturnCode = 208
	CodeVoiceSet             ReturnCode = 209
	CodeStopped              ReturnCode = 210
	CodePaused               ReturnCode = 211
	CodeResumed              ReturnCode = 212
	CodeCanceled             ReturnCode = 213
	CodeTableSet             ReturnCode = 215
	CodeOutputModuleSet      ReturnCode = 216
	CodePauseContextSet      ReturnCode = 217
	CodeVolumeSet            ReturnCode = 218
	CodeSSMLModeSet          ReturnCode = 219
	CodeNotificationSet      ReturnCode = 220 // shares 220 with CodeHistoryCurSetFirst
	CodeHistoryCurSetFirst   ReturnCode = 220
	CodeHistoryCurSetLast    ReturnCode = 221
	CodeHistoryCurSetPos     ReturnCode = 222
	CodeHistoryCurMoveFor    ReturnCode = 223
	CodeHistoryCurMoveBack   ReturnCode = 224
	CodeMessageQueued        ReturnCode = 225
	CodeSoundIconQueued      ReturnCode = 226
	CodeMessageCanceled      ReturnCode = 227
	CodeReceivingData        ReturnCode = 230
	CodeBye                  ReturnCode = 231
	CodeHistoryClientsSent   ReturnCode = 240
	CodeHistoryMsgsListSent  ReturnCode = 241
	CodeHistoryLastMsg       ReturnCode = 242
	CodeHistoryCurPosRet     ReturnCode = 243
	CodeTableListSent        ReturnCode = 244
	CodeHistoryClientIDSent  ReturnCode = 245
	CodeMessageTextSent      ReturnCode = 246
	CodeHelpSent             ReturnCode = 248
	CodeVoicesListSent       ReturnCode = 249
	CodeOutputModulesSent    ReturnCode = 250
	CodeGet                  ReturnCode = 251
	CodeInsideBlock          ReturnCode = 260
	CodeOutsideBlock         ReturnCode = 261
	CodeDebugSet             ReturnCode = 262
	CodePitchRangeSet        ReturnCode = 263
	CodeNotImplemented       ReturnCode = 299
)

// Event codes (asynchronous notifications).
const (
	EventCodeIndexMark ReturnCode = 700
	EventCodeBegin     ReturnCode = 701
	EventCodeEnd       ReturnCode = 702
	EventCodeCancel    ReturnCode = 703
	EventCodePause     ReturnCode = 704
	EventCodeResume    ReturnCode = 705
)

// msgCursorSetFirst is the only textual discriminator between code 220's two
// meanings. ReadFrame keeps the "OK "/"ERR " prefix on a status message, so
// this must match the full text, not just the payload after it.
const msgCursorSetFirst = "OK CURSOR SET FIRST"

// IsFailure reports whether code falls in the 3xx/4xx/5xx server/client/request
// error ranges. 7xx event codes and 2xx success codes are not failures.
func (c ReturnCode) IsFailure() bool {
	return c >= 300 && c < 700
}

// IsEvent reports whether code is one of the 700-705 asynchronous notification codes.
func (c ReturnCode) IsEvent() bool {
	return c >= 700 && c < 706
}
