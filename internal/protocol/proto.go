package protocol

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CommandSET   = "SET"
	CommandGET   = "GET"
	CommandDEL   = "DEL"
	CommandPING  = "PING"
	CommandKEYS  = "KEYS"
	CommandSTATS = "STATS"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrWrongArgCount  = errors.New("wrong number of arguments")
)

type Command interface{}

type SetCommand struct {
	Key, Value string
}

type GetCommand struct {
	Key string
}

type DelCommand struct {
	Key string
}

type PingCommand struct{}

type KeysCommand struct{}

type StatsCommand struct{}

// ParseCommand tokenizes one request line into a Command. Command names are
// matched case-insensitively; keys and values are taken verbatim. A blank
// line yields a nil Command and nil error so callers can skip it without
// replying.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}

	name := fields[0]
	args := fields[1:]

	switch strings.ToUpper(name) {
	case CommandSET:
		if len(args) != 2 {
			return nil, fmt.Errorf("%w for '%s'", ErrWrongArgCount, name)
		}
		return SetCommand{Key: args[0], Value: args[1]}, nil
	case CommandGET:
		if len(args) != 1 {
			return nil, fmt.Errorf("%w for '%s'", ErrWrongArgCount, name)
		}
		return GetCommand{Key: args[0]}, nil
	case CommandDEL:
		if len(args) != 1 {
			return nil, fmt.Errorf("%w for '%s'", ErrWrongArgCount, name)
		}
		return DelCommand{Key: args[0]}, nil
	case CommandPING:
		if len(args) != 0 {
			return nil, fmt.Errorf("%w for '%s'", ErrWrongArgCount, name)
		}
		return PingCommand{}, nil
	case CommandKEYS:
		if len(args) != 0 {
			return nil, fmt.Errorf("%w for '%s'", ErrWrongArgCount, name)
		}
		return KeysCommand{}, nil
	case CommandSTATS:
		if len(args) != 0 {
			return nil, fmt.Errorf("%w for '%s'", ErrWrongArgCount, name)
		}
		return StatsCommand{}, nil
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnknownCommand, name)
	}
}
