package sidebar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dop251/goja"
)

// DefaultScriptTimeout bounds the evaluation of a sidebar script.
const DefaultScriptTimeout = 5 * time.Second

// ScriptOptions controls sidebar script evaluation.
type ScriptOptions struct {
	// Timeout defaults to DefaultScriptTimeout.
	Timeout time.Duration

	// Output receives console.log output. Nil discards it.
	Output io.Writer
}

// FromScript evaluates src and returns the sidebar it produces.
//
// The completion value of src is either a sidebar (a list, or a map of
// lists) or a function. A function is called with the configured sidebar,
// or null when there is none, and must return a sidebar.
func FromScript(ctx context.Context, src string, existing Sidebar, opts ScriptOptions) (Sidebar, error) {
	if strings.TrimSpace(src) == "" {
		return Sidebar{}, errors.New("sidebar script is empty")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultScriptTimeout
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}

	vm := goja.New()

	timeoutCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	go func() {
		<-timeoutCtx.Done()
		vm.Interrupt("sidebar script timeout or cancelled")
	}()

	if err := setupConsole(vm, opts.Output); err != nil {
		return Sidebar{}, err
	}

	val, err := vm.RunString(src)
	if err != nil {
		return Sidebar{}, scriptError(err)
	}

	if fn, ok := goja.AssertFunction(val); ok {
		arg, err := toJS(vm, existing)
		if err != nil {
			return Sidebar{}, err
		}
		val, err = fn(goja.Undefined(), arg)
		if err != nil {
			return Sidebar{}, scriptError(err)
		}
	}

	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return Sidebar{}, errors.New("sidebar script returned no sidebar")
	}

	data, err := json.Marshal(val.Export())
	if err != nil {
		return Sidebar{}, fmt.Errorf("failed to encode sidebar script result: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return Sidebar{}, fmt.Errorf("invalid sidebar script result: %w", err)
	}
	return s, nil
}

// toJS converts the configured sidebar into plain JavaScript values so the
// script can use array and object methods on it.
func toJS(vm *goja.Runtime, s Sidebar) (goja.Value, error) {
	if s.IsZero() {
		return goja.Null(), nil
	}

	data, err := json.Marshal(s.shape())
	if err != nil {
		return nil, fmt.Errorf("failed to encode sidebar: %w", err)
	}
	parse, ok := goja.AssertFunction(vm.Get("JSON").ToObject(vm).Get("parse"))
	if !ok {
		return nil, errors.New("JSON.parse is not available")
	}
	v, err := parse(goja.Undefined(), vm.ToValue(string(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to pass sidebar to script: %w", err)
	}
	return v, nil
}

func setupConsole(vm *goja.Runtime, w io.Writer) error {
	logFunc := func(call goja.FunctionCall) goja.Value {
		args := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = arg.String()
		}
		fmt.Fprintln(w, strings.Join(args, " "))
		return goja.Undefined()
	}

	console := vm.NewObject()
	if err := console.Set("log", logFunc); err != nil {
		return fmt.Errorf("failed to set console.log: %w", err)
	}
	if err := vm.Set("console", console); err != nil {
		return fmt.Errorf("failed to set console: %w", err)
	}
	return nil
}

func scriptError(err error) error {
	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return fmt.Errorf("sidebar script interrupted: %v", interrupted.Value())
	}
	return fmt.Errorf("sidebar script error: %w", err)
}
