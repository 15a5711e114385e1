package elements

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

var (
	eventPattern      = regexp.MustCompile(`(?i)^on\s+(.+?)(?:\s+with\s+priority\s+(lowest|low|normal|high|highest|monitor))?$`)
	periodicalPattern = regexp.MustCompile(`(?i)^every\s+(.+?)(?:\s+in\s+(?:the\s+)?(?:worlds?\s+)?(.+))?$`)
)

// Event is an "on <event>:" or "every <timespan>:" structure.
type Event struct {
	Name string
	// Priority is the listener priority, "normal" when omitted.
	Priority string

	// Periodical events run every Interval, in World when it is set.
	Periodical bool
	Interval   time.Duration
	World      string

	language language.Tag
}

// EventRecognizer recognizes top-level "on ..." sections.
var EventRecognizer = cmn.Recognizer{
	Name: "Event",
	Match: func(node *cmn.Node) bool {
		return node.IsSection() && node.IsTopLevel() && hasWordPrefix(node.Key, "on")
	},
	New: func() cmn.Element { return &Event{} },
}

// PeriodicalEventRecognizer recognizes top-level "every ..." sections.
var PeriodicalEventRecognizer = cmn.Recognizer{
	Name: "PeriodicalEvent",
	Match: func(node *cmn.Node) bool {
		return node.IsSection() && node.IsTopLevel() && hasWordPrefix(node.Key, "every")
	},
	New: func() cmn.Element { return &Event{Periodical: true} },
}

func (e *Event) Load(node *cmn.Node, ctx *cmn.ParsingContext) error {
	e.language = ctx.Language()

	if e.Periodical {
		return e.loadPeriodical(node)
	}

	match := eventPattern.FindStringSubmatch(node.Key)
	if match == nil {
		ctx.Warning(node, cmn.UnknownElement)
		return cmn.ErrDeclined
	}

	e.Name = match[1]
	e.Priority = "normal"

	if match[2] != "" {
		e.Priority = strings.ToLower(match[2])
	}

	return nil
}

func (e *Event) loadPeriodical(node *cmn.Node) error {
	match := periodicalPattern.FindStringSubmatch(node.Key)
	if match == nil {
		return cmn.NewParsingError(node, "missing interval in '%s'", node.Key)
	}

	interval, err := ParseTimespan(match[1])
	if err != nil {
		return cmn.NewParsingError(node, "invalid interval '%s'", match[1])
	}

	if interval <= 0 {
		return cmn.NewParsingError(node, "the interval of a periodical event must be positive")
	}

	e.Name = "every " + match[1]
	e.Interval = interval
	e.World = strings.Trim(match[2], `"`)

	return nil
}

func (e *Event) Debug() string {
	if e.Periodical {
		return fmt.Sprintf("Event{every=%s, world=%q}", e.Interval, e.World)
	}

	return fmt.Sprintf("Event{name=%s, priority=%s}", e.Name, e.Priority)
}

func (e *Event) SectionDisplay() (string, bool) {
	if e.Periodical {
		return "Every " + e.Interval.String(), true
	}

	return "On " + title(e.Name), true
}

func (e *Event) IconSource() cmn.Icon { return cmn.IconEvent }

func (e *Event) DisplayString() string {
	return Label(e.language, labelEvents)
}
