package carousel

import "fmt"

// CommandKind identifies a navigation request.
type CommandKind int

const (
	// CommandNone is produced when a gesture resolves to nothing.
	CommandNone CommandKind = iota
	// CommandNext advances one slide, wrapping to the first.
	CommandNext
	// CommandPrevious steps back one slide, wrapping to the last.
	CommandPrevious
	// CommandGoTo jumps to Command.Index.
	CommandGoTo
)

// String returns a human-readable name for the command kind
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandNext:
		return "next"
	case CommandPrevious:
		return "previous"
	case CommandGoTo:
		return "goto"
	default:
		return fmt.Sprintf("CommandKind(%d)", k)
	}
}

// Command is a single navigation request from any input source.
type Command struct {
	Kind  CommandKind
	Index int // Only meaningful for CommandGoTo
}

// Next returns a next-slide command.
func Next() Command { return Command{Kind: CommandNext} }

// Previous returns a previous-slide command.
func Previous() Command { return Command{Kind: CommandPrevious} }

// GoTo returns a jump command for slide i.
func GoTo(i int) Command { return Command{Kind: CommandGoTo, Index: i} }

// None returns the empty command.
func None() Command { return Command{Kind: CommandNone} }

// IsNone reports whether the command requests nothing.
func (c Command) IsNone() bool {
	return c.Kind == CommandNone
}

func (c Command) String() string {
	if c.Kind == CommandGoTo {
		return fmt.Sprintf("goto(%d)", c.Index)
	}
	return c.Kind.String()
}
