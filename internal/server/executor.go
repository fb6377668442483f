package server

import (
	"fmt"
	"strings"

	"github.com/vector-ops/miniredis/internal/protocol"
	"github.com/vector-ops/miniredis/internal/storage"
)

// Executor maps parsed commands onto the shared store. It does no I/O of
// its own; the transport writes whatever Response comes back. The store's
// lock is the only synchronization between connections.
type Executor struct {
	kv *storage.Instrumented
}

func NewExecutor(kv *storage.Instrumented) *Executor {
	return &Executor{kv: kv}
}

func (e *Executor) Handle(cmd protocol.Command) protocol.Response {
	switch v := cmd.(type) {
	case protocol.SetCommand:
		if err := e.kv.Set(v.Key, v.Value); err != nil {
			return protocol.NewError(err.Error())
		}
		return protocol.NewOK()

	case protocol.GetCommand:
		val, ok := e.kv.Get(v.Key)
		if !ok {
			return protocol.NewNil()
		}
		return protocol.NewValue(val)

	case protocol.DelCommand:
		if err := e.kv.Delete(v.Key); err != nil {
			return protocol.NewError(err.Error())
		}
		return protocol.NewOK()

	case protocol.PingCommand:
		return protocol.NewValue("PONG")

	case protocol.KeysCommand:
		keys := e.kv.Keys()
		if len(keys) == 0 {
			return protocol.NewNil()
		}
		return protocol.NewValue(strings.Join(keys, ","))

	case protocol.StatsCommand:
		s := e.kv.Snapshot()
		return protocol.NewValue(fmt.Sprintf("gets=%d sets=%d dels=%d", s.Gets, s.Sets, s.Dels))

	default:
		return protocol.NewError(fmt.Sprintf("unhandled command type %T", cmd))
	}
}
