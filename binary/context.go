package binary

import (
	"sync"
)

// Context is the mutable, per-thread execution state every constructive
// operation consults: the active rounding-direction attribute, the sticky
// raised-flag bitset, the tininess-detection policy, the handler table, and
// an append-only record of exceptions handled with HandlerRecordException.
//
// Values are immutable; Context is the one piece of cross-cutting mutable
// state, following the teacher's split of an immutable numeric value type
// from a mutable context struct.
type Context struct {
	rounding      Rounding
	flags         Flag
	tininessAfter bool
	handlers      map[Kind]Handler
	exceptions    []Exception
}

// NewContext returns a Context with the default rounding mode, no flags
// raised, tininess detected before rounding, and no handlers registered
// (every Kind falls back to HandlerDefault).
func NewContext() *Context {
	return &Context{
		rounding: DefaultRounding,
		handlers: make(map[Kind]Handler),
	}
}

// BasicContext returns a Context equivalent to NewContext; kept distinct,
// matching the teacher's BasicContext64/BasicContext32 naming, as the spot
// to extend with stricter presets (e.g. trapping Invalid/Overflow/Underflow
// as errors) without disturbing NewContext's zero-handler default.
func BasicContext() *Context {
	return NewContext()
}

// Clone returns a deep-enough copy: an independent flag/exception state
// sharing no slice backing array with the receiver, but reusing Handler
// callback values (callbacks are themselves stateless function values).
func (c *Context) Clone() *Context {
	handlers := make(map[Kind]Handler, len(c.handlers))
	for k, h := range c.handlers {
		handlers[k] = h
	}
	exceptions := make([]Exception, len(c.exceptions))
	copy(exceptions, c.exceptions)
	return &Context{
		rounding:      c.rounding,
		flags:         c.flags,
		tininessAfter: c.tininessAfter,
		handlers:      handlers,
		exceptions:    exceptions,
	}
}

// Rounding returns the active rounding-direction attribute.
func (c *Context) Rounding() Rounding { return c.rounding }

// SetRounding sets the active rounding-direction attribute.
func (c *Context) SetRounding(r Rounding) { c.rounding = r }

// TininessAfter reports whether tininess is detected after rounding rather
// than before (the default).
func (c *Context) TininessAfter() bool { return c.tininessAfter }

// SetTininessAfter selects the tininess-detection policy.
func (c *Context) SetTininessAfter(after bool) { c.tininessAfter = after }

// Flags returns the sticky raised-flag bitset.
func (c *Context) Flags() Flag { return c.flags }

// ClearFlags clears every raised flag.
func (c *Context) ClearFlags() { c.flags = FlagClear }

// raise ORs bit into the sticky flag set.
func (c *Context) raise(bit Flag) { c.flags |= bit }

// Exceptions returns the exceptions recorded by HandlerRecordException
// handlers since the last ClearExceptions.
func (c *Context) Exceptions() []Exception {
	out := make([]Exception, len(c.exceptions))
	copy(out, c.exceptions)
	return out
}

// ClearExceptions discards recorded exceptions.
func (c *Context) ClearExceptions() { c.exceptions = nil }

// SetHandler registers how the context reacts to Kind (and, transitively,
// any more specific kind whose chain passes through it and is not itself
// overridden by a more specific registration).
func (c *Context) SetHandler(kind Kind, handler Handler) {
	if handler.Kind == HandlerSubstituteValueXor {
		root := kind.root()
		if root != KindInvalid && !isMulDivKind(kind) {
			panic("binary: SubstituteValueXor is only valid for multiply/divide signals")
		}
	}
	if handler.Kind == HandlerAbruptUnderflow {
		if kind.root() != KindUnderflowExact && kind.root() != KindUnderflowInexact {
			panic("binary: AbruptUnderflow is only valid for Underflow signals")
		}
	}
	c.handlers[kind] = handler
}

func isMulDivKind(k Kind) bool {
	switch k {
	case KindInvalidMultiply, KindInvalidDivide, KindDivideByZero:
		return true
	default:
		return false
	}
}

// ClearHandlers removes every registered handler, reverting every Kind to
// HandlerDefault.
func (c *Context) ClearHandlers() { c.handlers = make(map[Kind]Handler) }

// handlerFor walks from kind up through Parent() and returns the first
// registered handler found, or the zero Handler (HandlerDefault) if none
// is registered anywhere on the chain.
func (c *Context) handlerFor(kind Kind) Handler {
	for {
		if h, ok := c.handlers[kind]; ok {
			return h
		}
		if kind == KindIEEEError {
			return Handler{Kind: HandlerDefault}
		}
		kind = kind.Parent()
	}
}

// signal dispatches exc through the registered handler chain, returning
// the resulting value or, for HandlerRaise, a non-nil error.
func (c *Context) signal(exc Exception) (Binary, error) {
	handler := c.handlerFor(exc.Kind)
	bit := exc.Kind.flag()

	switch handler.Kind {
	case HandlerNoFlag:
		return exc.Default, nil

	case HandlerRecordException:
		c.raise(bit)
		exc.Origin = captureOrigin(2)
		c.exceptions = append(c.exceptions, exc)
		return exc.Default, nil

	case HandlerSubstituteValue:
		c.raise(bit)
		return handler.Callback(exc), nil

	case HandlerSubstituteValueXor:
		c.raise(bit)
		result := handler.Callback(exc)
		if !result.IsNaN() {
			result = result.withSign(exc.OperandsXor)
		}
		return result, nil

	case HandlerAbruptUnderflow:
		root := exc.Kind.root()
		if root != KindUnderflowExact && root != KindUnderflowInexact {
			break
		}
		c.raise(FlagUnderflow)
		value := makeAbruptUnderflowValue(exc.Default, c.rounding)
		result, _ := c.signal(Exception{Kind: KindInexact, Op: exc.Op, Default: value})
		return result, nil

	case HandlerRaise:
		return Binary{}, &SignalError{Exception: exc}
	}

	// HandlerDefault, HandlerMaybeFlag, or a fallthrough from an
	// inapplicable AbruptUnderflow registration.
	c.raise(bit)
	return exc.Default, nil
}

// --- Minimal thread-local "current context" stub -------------------------
//
// Rigorous per-goroutine context is explicitly out of scope (see spec.md
// §1, §5 and §9's "Thread-local context" design note); Go has no
// goroutine-local storage primitive to hang a real per-goroutine slot off
// of. What is provided is the three operations the design note asks for,
// implemented against a single mutex-guarded package default, which is
// sufficient for the single-threaded-per-operation usage the library
// assumes: current() returns the same *Context on repeated calls, set()
// replaces it, and Scoped installs a copy for the duration of a call and
// restores the previous one on every exit path.

var (
	currentMu      sync.Mutex
	currentContext = NewContext()
)

// Current returns the process-wide default context. Callers that need
// genuine per-goroutine isolation should hold their own *Context instead
// of relying on this accessor from multiple goroutines concurrently.
func Current() *Context {
	currentMu.Lock()
	defer currentMu.Unlock()
	return currentContext
}

// SetCurrent replaces the process-wide default context (not a copy of it).
func SetCurrent(c *Context) {
	currentMu.Lock()
	defer currentMu.Unlock()
	currentContext = c
}

// Scoped installs a copy of ctx (or, if ctx is nil, a copy of the current
// default) as the process-wide default for the duration of fn, restoring
// the previous default on every exit path including a panic inside fn.
func Scoped(ctx *Context, fn func(*Context)) {
	currentMu.Lock()
	saved := currentContext
	var installed *Context
	if ctx != nil {
		installed = ctx.Clone()
	} else {
		installed = saved.Clone()
	}
	currentContext = installed
	currentMu.Unlock()

	defer func() {
		currentMu.Lock()
		currentContext = saved
		currentMu.Unlock()
	}()

	fn(installed)
}
