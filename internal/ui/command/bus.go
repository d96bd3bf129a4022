package command

import (
	"fmt"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/tabs"
)

// Kind names a tab command.
type Kind string

const (
	Add         Kind = "add"
	Close       Kind = "close"
	CloseOthers Kind = "close-others"
	Reopen      Kind = "reopen"
	Pin         Kind = "pin"
	Select      Kind = "select"
	Next        Kind = "next"
	Prev        Kind = "prev"
	MoveLeft    Kind = "move-left"
	MoveRight   Kind = "move-right"
)

// Request encapsulates a command invocation. Target is ignored by kinds that
// act on the selection or the history; TypeName is only read by Add.
type Request struct {
	Kind     Kind
	Target   tabs.TabID
	TypeName string
}

// Result describes what a command did. Missing is set when Add named an
// unknown tab type.
type Result struct {
	Kind    Kind
	Target  tabs.TabID
	Changed bool
	Missing bool
	Info    string
}

// MetaType is the metadata key recording which registered type created a tab.
const MetaType = "type"

// Bus applies tab commands to a store and traces each one.
type Bus struct {
	store    *tabs.Store
	registry *tabs.Registry
}

// New initialises a command bus over store and registry.
func New(store *tabs.Store, registry *tabs.Registry) *Bus {
	return &Bus{store: store, registry: registry}
}

// Execute runs req synchronously. Commands are total: a request that cannot
// apply returns a Result with Changed false.
func (b *Bus) Execute(req Request) Result {
	events.Command.Queue(string(req.Kind), uint64(req.Target))
	res := b.apply(req)
	res.Kind = req.Kind
	if res.Changed {
		events.Command.Result(string(req.Kind), uint64(res.Target), res.Info)
	} else {
		events.Command.NoOp(string(req.Kind), uint64(req.Target))
	}
	return res
}

func (b *Bus) apply(req Request) Result {
	s := b.store
	switch req.Kind {
	case Add:
		return b.add(req.TypeName)
	case Close:
		before := s.History()
		ok := s.Close(req.Target)
		events.Tab.Close(uint64(req.Target), ok)
		if ok {
			events.Tab.Evict(evicted(before, []tabs.TabID{req.Target}))
		}
		return Result{Target: req.Target, Changed: ok}
	case CloseOthers:
		before := s.History()
		prevSel, prevOK := s.Selected()
		removed := s.CloseOthers(req.Target)
		sel, ok := s.Selected()
		ids := make([]uint64, len(removed))
		for i, id := range removed {
			ids[i] = uint64(id)
		}
		events.Tab.CloseOthers(uint64(req.Target), ids)
		events.Tab.Evict(evicted(before, removed))
		return Result{
			Target:  req.Target,
			Changed: len(removed) > 0 || sel != prevSel || ok != prevOK,
			Info:    fmt.Sprintf("closed %d tab(s)", len(removed)),
		}
	case Reopen:
		id, ok := s.ReopenLastClosed()
		events.Tab.Reopen(uint64(id), ok)
		return Result{Target: id, Changed: ok}
	case Pin:
		if !s.TogglePin(req.Target) {
			return Result{Target: req.Target}
		}
		info, _ := s.Info(req.Target)
		events.Tab.Pin(uint64(req.Target), info.Pinned)
		label := "unpinned"
		if info.Pinned {
			label = "pinned"
		}
		return Result{Target: req.Target, Changed: true, Info: label + " " + info.Title}
	case Select:
		ok := s.Select(req.Target)
		if ok {
			events.Tab.Select(uint64(req.Target))
		}
		return Result{Target: req.Target, Changed: ok}
	case Next, Prev:
		before, had := s.Selected()
		if req.Kind == Next {
			s.Next()
		} else {
			s.Prev()
		}
		after, ok := s.Selected()
		if ok {
			events.Tab.Select(uint64(after))
		}
		return Result{Target: after, Changed: ok && (!had || after != before)}
	case MoveLeft, MoveRight:
		var moved bool
		if req.Kind == MoveLeft {
			moved = s.MoveLeft(req.Target)
		} else {
			moved = s.MoveRight(req.Target)
		}
		events.Tab.Move(uint64(req.Target), string(req.Kind), moved)
		return Result{Target: req.Target, Changed: moved}
	}
	return Result{Target: req.Target}
}

func (b *Bus) add(name string) Result {
	content, ok := b.registry.Create(name)
	if !ok {
		suggestion, _ := b.registry.Suggest(name)
		events.Registry.Miss(name, suggestion)
		return Result{Missing: true, Info: NotFound(name, suggestion)}
	}
	desc, _ := b.registry.Lookup(name)
	id := b.store.Add(content, tabs.WithIcon(desc.Icon), tabs.WithMetadata(MetaType, name))
	events.Tab.Add(uint64(id), name)
	return Result{Target: id, Changed: true, Info: "opened " + content.Title()}
}

// evicted returns the ids pushed out of a full history when closed is
// appended to before.
func evicted(before []tabs.Info, closed []tabs.TabID) []uint64 {
	overflow := len(before) + len(closed) - tabs.HistoryCapacity
	if overflow <= 0 {
		return nil
	}
	out := make([]uint64, 0, overflow)
	for _, info := range before {
		if len(out) == overflow {
			return out
		}
		out = append(out, uint64(info.ID))
	}
	for _, id := range closed {
		if len(out) == overflow {
			break
		}
		out = append(out, uint64(id))
	}
	return out
}

// NotFound formats the neutral fallback shown for an unknown tab type.
func NotFound(name, suggestion string) string {
	msg := "Editor not found: " + name
	if suggestion != "" && suggestion != name {
		msg += fmt.Sprintf(" (did you mean %s?)", suggestion)
	}
	return msg
}
