package elements

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/language"

	"github.com/SkEditorPlus/skparse/parser"
	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

var (
	CommandAlreadyExists = cmn.NewParserWarning("command_already_exists", "Another command with the same name already exists.")
	UnknownCommandEntry  = cmn.NewParserWarning("unknown_command_entry", "Unknown command entry '%s'.%s")
	InvalidTimespan      = cmn.NewParserWarning("invalid_timespan", "'%s' is not a valid timespan.")
)

var commandPattern = regexp.MustCompile(`(?i)^command\s+/?(\S+)\s*(\s+(.+))?$`)

// commandEntry binds a single-value entry key to the Command field it fills.
type commandEntry struct {
	key string
	set func(c *Command, value string)
}

var commandEntries = []commandEntry{
	{"aliases", func(c *Command, v string) { c.Aliases = splitAliases(v) }},
	{"executable by", func(c *Command, v string) { c.ExecutableBy = cmn.SplitValues(v) }},
	{"permission", func(c *Command, v string) { c.Permission = v }},
	{"permission message", func(c *Command, v string) { c.PermissionMessage = v }},
	{"description", func(c *Command, v string) { c.Description = v }},
	{"prefix", func(c *Command, v string) { c.Prefix = v }},
	{"cooldown", func(c *Command, v string) { c.Cooldown = v }},
	{"cooldown message", func(c *Command, v string) { c.CooldownMessage = v }},
	{"cooldown bypass", func(c *Command, v string) { c.CooldownBypass = v }},
	{"cooldown storage", func(c *Command, v string) { c.CooldownStorage = v }},
	{"usage", func(c *Command, v string) { c.Usage = v }},
}

// Command is a "command /name:" structure.
type Command struct {
	Name      string
	Arguments string

	Aliases           []string
	ExecutableBy      []string
	Permission        string
	PermissionMessage string
	Description       string
	Prefix            string
	Usage             string

	Cooldown         string
	CooldownDuration time.Duration
	CooldownMessage  string
	CooldownBypass   string
	CooldownStorage  string

	Entries []*CommandEntry
	Trigger *CommandTrigger

	language language.Tag
}

// CommandRecognizer recognizes top-level sections starting with "command".
var CommandRecognizer = cmn.Recognizer{
	Name: "Command",
	Match: func(node *cmn.Node) bool {
		return node.IsSection() && strings.HasPrefix(node.Key, "command") && node.IsTopLevel()
	},
	New: func() cmn.Element { return &Command{} },
}

func (c *Command) Load(node *cmn.Node, ctx *cmn.ParsingContext) error {
	match := commandPattern.FindStringSubmatch(node.Key)
	if match == nil {
		ctx.Warning(node, cmn.UnknownElement)
		return cmn.ErrDeclined
	}

	c.Name = match[1]
	c.Arguments = strings.TrimSpace(match[3])
	c.language = ctx.Language()

	for _, resolved := range ctx.ResolvedNodes() {
		if other, ok := resolved.Element.(*Command); ok && other.Name == c.Name {
			ctx.Warning(node, CommandAlreadyExists)
			break
		}
	}

	for _, entry := range commandEntries {
		child := node.SimpleChild(entry.key)
		if child == nil {
			continue
		}

		entry.set(c, child.Value)

		element := &CommandEntry{Key: entry.key, Value: child.Value, Command: c}
		if parser.ResolveAs(child, ctx, "CommandEntry", element) {
			c.Entries = append(c.Entries, element)
		}
	}

	if c.Cooldown != "" {
		d, err := ParseTimespan(c.Cooldown)
		if err != nil {
			ctx.Warning(node.SimpleChild("cooldown"), InvalidTimespan, c.Cooldown)
		}

		c.CooldownDuration = d
	}

	c.reportUnknownEntries(node, ctx)

	if trigger := node.SectionChild("trigger"); trigger != nil {
		element := &CommandTrigger{Command: c}
		if parser.ResolveAs(trigger, ctx, "CommandTrigger", element) {
			c.Trigger = element
		}
	}

	return nil
}

func (c *Command) reportUnknownEntries(node *cmn.Node, ctx *cmn.ParsingContext) {
	for _, child := range node.Children() {
		if !child.IsSimple() || isCommandEntry(child.Key) {
			continue
		}

		hint := ""
		if suggestion := suggestEntry(child.Key); suggestion != "" {
			hint = fmt.Sprintf(" Did you mean '%s'?", suggestion)
		}

		ctx.Warning(child, UnknownCommandEntry, child.Key, hint)
	}
}

func (c *Command) Debug() string {
	return fmt.Sprintf("Command{name=%s, entries=%d, trigger=%t}", c.Name, len(c.Entries), c.Trigger != nil)
}

func (c *Command) SectionDisplay() (string, bool) {
	return "Command '" + c.Name + "'", true
}

func (c *Command) IconSource() cmn.Icon { return cmn.IconCode }

func (c *Command) DisplayString() string {
	return Label(c.language, labelCommands)
}

// CommandEntry is a single-value entry of a command.
type CommandEntry struct {
	Key     string
	Value   string
	Command *Command
}

// Load is a no-op: entries are filled by their command.
func (e *CommandEntry) Load(*cmn.Node, *cmn.ParsingContext) error { return nil }

func (e *CommandEntry) SectionDisplay() (string, bool) {
	return "Entry '" + e.Key + "'", true
}

// CommandTrigger is the "trigger:" section of a command.
type CommandTrigger struct {
	Command *Command
}

// Load is a no-op: triggers are claimed by their command.
func (t *CommandTrigger) Load(*cmn.Node, *cmn.ParsingContext) error { return nil }

func isCommandEntry(key string) bool {
	for _, entry := range commandEntries {
		if entry.key == key {
			return true
		}
	}

	return false
}

// suggestEntry returns the known entry closest to key, if any is close enough.
func suggestEntry(key string) string {
	metric := metrics.NewLevenshtein()

	best, bestScore := "", 0.6
	for _, entry := range commandEntries {
		if score := strutil.Similarity(strings.ToLower(key), entry.key, metric); score >= bestScore {
			best, bestScore = entry.key, score
		}
	}

	return best
}

func splitAliases(value string) []string {
	aliases := cmn.SplitValues(value)
	for i, alias := range aliases {
		aliases[i] = strings.TrimPrefix(alias, "/")
	}

	return aliases
}
