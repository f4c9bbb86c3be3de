// Package script exposes the evaluator to Lua programs as the global
// function rpn(expression), which returns the result or nil and an error
// message.
package script

import (
	"github.com/Shopify/go-lua"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"rpn/rpn"
)

const FunctionName = "rpn"

type Runtime struct {
	state *lua.State
	log   logr.Logger
}

func New(log logr.Logger) *Runtime {
	r := &Runtime{
		state: lua.NewState(),
		log:   log,
	}
	lua.OpenLibraries(r.state)
	r.state.Register(FunctionName, r.evaluate)
	return r
}

func (r *Runtime) evaluate(l *lua.State) int {
	expression := lua.CheckString(l, 1)
	result, err := rpn.Evaluate(expression)
	if err != nil {
		r.log.V(1).Info("evaluation failed", "expression", expression, "error", err.Error())
		l.PushNil()
		l.PushString(err.Error())
		return 2
	}
	l.PushNumber(result)
	return 1
}

func (r *Runtime) Run(file string) error {
	if err := lua.DoFile(r.state, file); err != nil {
		return errors.Wrapf(err, "failed to run script %v", file)
	}
	return nil
}

func (r *Runtime) RunString(source string) error {
	if err := lua.DoString(r.state, source); err != nil {
		return errors.Wrap(err, "failed to run script")
	}
	return nil
}

// Global reads a numeric global, mostly useful to inspect what a script
// computed.
func (r *Runtime) Global(name string) (float64, bool) {
	r.state.Global(name)
	defer r.state.Pop(1)
	return r.state.ToNumber(-1)
}
