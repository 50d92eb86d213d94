package ssip

import (
	"fmt"
	"strconv"
	"strings"
)

// MessageID identifies a queued message, assigned by the server.
type MessageID uint32

// ClientID identifies a connected client, assigned by the server.
type ClientID uint32

// MessageScope selects which queued message(s) an operation applies to.
type MessageScope struct {
	kind messageScopeKind
	id   MessageID
}

type messageScopeKind int

const (
	messageScopeLast messageScopeKind = iota
	messageScopeAll
	messageScopeMessage
)

// LastMessage scopes an operation to the message most recently sent by the
// current client ("self" on the wire).
func LastMessage() MessageScope { return MessageScope{kind: messageScopeLast} }

// AllMessages scopes an operation to every queued message across clients.
func AllMessages() MessageScope { return MessageScope{kind: messageScopeAll} }

// MessageByID scopes an operation to one specific message.
func MessageByID(id MessageID) MessageScope {
	return MessageScope{kind: messageScopeMessage, id: id}
}

func (s MessageScope) String() string {
	switch s.kind {
	case messageScopeLast:
		return "self"
	case messageScopeAll:
		return "all"
	default:
		return strconv.FormatUint(uint64(s.id), 10)
	}
}

// ClientScope selects which client(s) a SET/GET/history operation applies to.
type ClientScope struct {
	kind clientScopeKind
	id   ClientID
}

type clientScopeKind int

const (
	clientScopeCurrent clientScopeKind = iota
	clientScopeAll
	clientScopeClient
)

// CurrentClient scopes an operation to the connection's own client ("self").
func CurrentClient() ClientScope { return ClientScope{kind: clientScopeCurrent} }

// AllClients scopes an operation to every connected client.
func AllClients() ClientScope { return ClientScope{kind: clientScopeAll} }

// ClientByID scopes an operation to one specific client.
func ClientByID(id ClientID) ClientScope {
	return ClientScope{kind: clientScopeClient, id: id}
}

func (s ClientScope) String() string {
	switch s.kind {
	case clientScopeCurrent:
		return "self"
	case clientScopeAll:
		return "all"
	default:
		return strconv.FormatUint(uint64(s.id), 10)
	}
}

// Priority is the message priority queue a SPEAK request belongs to.
type Priority int

const (
	PriorityProgress Priority = iota
	PriorityNotification
	PriorityMessage
	PriorityText
	PriorityImportant
)

func (p Priority) String() string {
	switch p {
	case PriorityProgress:
		return "progress"
	case PriorityNotification:
		return "notification"
	case PriorityMessage:
		return "message"
	case PriorityText:
		return "text"
	case PriorityImportant:
		return "important"
	default:
		return "message"
	}
}

// PunctuationMode controls how much punctuation the synthesizer reads aloud.
type PunctuationMode int

const (
	PunctuationNone PunctuationMode = iota
	PunctuationSome
	PunctuationMost
	PunctuationAll
)

func (p PunctuationMode) String() string {
	switch p {
	case PunctuationNone:
		return "none"
	case PunctuationSome:
		return "some"
	case PunctuationMost:
		return "most"
	case PunctuationAll:
		return "all"
	default:
		return "none"
	}
}

// CapitalLettersMode controls how capital letters are announced.
type CapitalLettersMode int

const (
	CapitalLettersNone CapitalLettersMode = iota
	CapitalLettersSpell
	CapitalLettersIcon
)

func (c CapitalLettersMode) String() string {
	switch c {
	case CapitalLettersNone:
		return "none"
	case CapitalLettersSpell:
		return "spell"
	case CapitalLettersIcon:
		return "icon"
	default:
		return "none"
	}
}

// NotificationType selects which lifecycle events the server reports once
// notifications are enabled.
type NotificationType int

const (
	NotifyBegin NotificationType = iota
	NotifyEnd
	NotifyCancel
	NotifyPause
	NotifyResume
	NotifyIndexMark
	NotifyAll
)

func (n NotificationType) String() string {
	switch n {
	case NotifyBegin:
		return "begin"
	case NotifyEnd:
		return "end"
	case NotifyCancel:
		return "cancel"
	case NotifyPause:
		return "pause"
	case NotifyResume:
		return "resume"
	case NotifyIndexMark:
		return "index_mark"
	case NotifyAll:
		return "all"
	default:
		return "all"
	}
}

// CursorDirection moves the history cursor backward or forward.
type CursorDirection int

const (
	CursorBackward CursorDirection = iota
	CursorForward
)

func (d CursorDirection) String() string {
	if d == CursorForward {
		return "forward"
	}
	return "backward"
}

// SortDirection orders history listings ascending or descending.
type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

func (d SortDirection) String() string {
	if d == SortDescending {
		return "desc"
	}
	return "asc"
}

// SortKey selects the field history listings are sorted by.
type SortKey int

const (
	SortByClientName SortKey = iota
	SortByPriority
	SortByMessageType
	SortByTime
	SortByUser
)

func (k SortKey) String() string {
	switch k {
	case SortByClientName:
		return "client_name"
	case SortByPriority:
		return "priority"
	case SortByMessageType:
		return "message_type"
	case SortByTime:
		return "time"
	case SortByUser:
		return "user"
	default:
		return "time"
	}
}

// Ordering is one element of a HISTORY SET MESSAGE_TYPE_ORDERING list.
type Ordering int

const (
	OrderingText Ordering = iota
	OrderingSoundIcon
	OrderingChar
	OrderingKey
)

func (o Ordering) String() string {
	switch o {
	case OrderingText:
		return "text"
	case OrderingSoundIcon:
		return "sound_icon"
	case OrderingChar:
		return "char"
	case OrderingKey:
		return "key"
	default:
		return "text"
	}
}

// HistoryPosition is a cursor position within a client's message history.
type HistoryPosition struct {
	kind historyPositionKind
	pos  uint16
}

type historyPositionKind int

const (
	historyPositionFirst historyPositionKind = iota
	historyPositionLast
	historyPositionPos
)

// HistoryFirst positions the cursor at the first (oldest) message.
func HistoryFirst() HistoryPosition { return HistoryPosition{kind: historyPositionFirst} }

// HistoryLast positions the cursor at the last (newest) message.
func HistoryLast() HistoryPosition { return HistoryPosition{kind: historyPositionLast} }

// HistoryAt positions the cursor at a specific index.
func HistoryAt(pos uint16) HistoryPosition {
	return HistoryPosition{kind: historyPositionPos, pos: pos}
}

func (p HistoryPosition) String() string {
	switch p.kind {
	case historyPositionFirst:
		return "first"
	case historyPositionLast:
		return "last"
	default:
		return fmt.Sprintf("pos %d", p.pos)
	}
}

// HistoryClientStatus describes one client entry in a HISTORY GET CLIENT_LIST
// response, parsed from "<id> <name> <0|1>".
type HistoryClientStatus struct {
	ID        ClientID
	Name      string
	Connected bool
}

func parseHistoryClientStatus(line string) (HistoryClientStatus, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 1 || parts[0] == "" {
		return HistoryClientStatus{}, unexpectedEOF("expecting client id")
	}
	id, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return HistoryClientStatus{}, invalidData("invalid client id")
	}
	if len(parts) < 2 {
		return HistoryClientStatus{}, unexpectedEOF("expecting client name")
	}
	if len(parts) < 3 {
		return HistoryClientStatus{}, unexpectedEOF("expecting client status")
	}
	var connected bool
	switch parts[2] {
	case "0":
		connected = false
	case "1":
		connected = true
	default:
		return HistoryClientStatus{}, invalidData("invalid client status")
	}
	return HistoryClientStatus{ID: ClientID(id), Name: parts[1], Connected: connected}, nil
}

// SynthesisVoice is one entry of a LIST SYNTHESIS_VOICES response: three
// tab-separated fields, where the literal token "none" decodes to an absent
// language or dialect.
type SynthesisVoice struct {
	Name     string
	Language *string
	Dialect  *string
}

func parseNoneableField(s string, ok bool) *string {
	if !ok || s == "none" {
		return nil
	}
	return &s
}

func parseSynthesisVoice(line string) (SynthesisVoice, error) {
	fields := strings.Split(line, "\t")
	if len(fields) == 0 || fields[0] == "" {
		return SynthesisVoice{}, unexpectedEOF("missing synthesis voice name")
	}
	v := SynthesisVoice{Name: fields[0]}
	if len(fields) > 1 {
		v.Language = parseNoneableField(fields[1], true)
	}
	if len(fields) > 2 {
		v.Dialect = parseNoneableField(fields[2], true)
	}
	return v, nil
}

// ClientName identifies the connecting application on the wire as
// "user:application:component".
type ClientName struct {
	User        string
	Application string
	Component   string
}

// NewClientName builds a ClientName with the default "main" component.
func NewClientName(user, application string) ClientName {
	return ClientName{User: user, Application: application, Component: "main"}
}

func (c ClientName) String() string {
	component := c.Component
	if component == "" {
		component = "main"
	}
	return fmt.Sprintf("%s:%s:%s", c.User, c.Application, component)
}

// EventID identifies which message/client a notification event pertains to.
// The server sends these as plain strings, not necessarily parseable as
// integers, so they are kept as strings here.
type EventID struct {
	Message string
	Client  string
}

// EventType is the lifecycle stage a notification event reports.
type EventType int

const (
	EventBegin EventType = iota
	EventEnd
	EventCancel
	EventPause
	EventResume
	EventIndexMark
)

// Event is one asynchronous notification (codes 700-705).
type Event struct {
	Type EventType
	ID   EventID
	Mark string // only set when Type == EventIndexMark
}

// clampRange clamps a signed 8-bit value to the wire-legal [-100, 100]
// range for rate/pitch/volume parameters.
func clampRange(v int8) int8 {
	if v > 100 {
		return 100
	}
	if v < -100 {
		return -100
	}
	return v
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
