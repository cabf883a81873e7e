package ecs

import (
	"fmt"
	"reflect"
)

// SystemResult is the uniform outcome of running a system: either it ran to
// completion (Err is nil, Value holds whatever it returned), or it failed
// because a parameter's borrow could not be acquired or because the
// system's own body reported a failure.
type SystemResult struct {
	Err   *SystemError
	Value any
}

// Ok reports whether the system completed without error.
func (r SystemResult) Ok() bool {
	return r.Err == nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Run binds every parameter of system — a func whose parameters each
// implement the Borrow Protocol — acquiring all of them left to right, in
// declaration order, before invoking it. If any parameter fails to bind,
// every borrow already acquired is released and the failure is returned as
// a SystemError wrapping the BorrowError; the system body never runs.
//
// system's parameters are arity 0..N for any N; there is no fixed upper
// bound, since binding goes through reflection rather than generated
// per-arity wrappers. Two overlapping mutable parameters of the same
// component (or any other aliasing borrow request) therefore fail at the
// second acquisition with InvalidBorrow.
func (w *World) Run(system any) SystemResult {
	fnVal := reflect.ValueOf(system)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		panic("ecs: Run requires a callable")
	}

	n := fnType.NumIn()
	params := make([]Param, 0, n)
	args := make([]reflect.Value, n)

	for i := 0; i < n; i++ {
		paramType := fnType.In(i)
		ptr := reflect.New(paramType)
		p, ok := ptr.Interface().(Param)
		if !ok {
			panic(fmt.Sprintf("ecs: system parameter %d (%s) does not implement the borrow protocol", i, paramType))
		}

		if err := p.bind(w); err != nil {
			for _, acquired := range params {
				acquired.Release()
			}
			be, _ := err.(*BorrowError)
			return SystemResult{Err: &SystemError{Borrow: be}}
		}

		params = append(params, p)
		args[i] = ptr.Elem()
	}

	defer func() {
		for _, p := range params {
			p.Release()
		}
	}()

	out := fnVal.Call(args)
	return mapSystemResult(out)
}

func mapSystemResult(out []reflect.Value) SystemResult {
	switch len(out) {
	case 0:
		return SystemResult{}
	case 1:
		if out[0].Type().Implements(errorType) {
			if out[0].IsNil() {
				return SystemResult{}
			}
			return SystemResult{Err: &SystemError{Exec: out[0].Interface().(error)}}
		}
		return SystemResult{Value: out[0].Interface()}
	default:
		last := out[len(out)-1]
		if last.Type().Implements(errorType) && !last.IsNil() {
			return SystemResult{Err: &SystemError{Exec: last.Interface().(error)}}
		}
		values := make([]any, 0, len(out)-1)
		for _, v := range out[:len(out)-1] {
			values = append(values, v.Interface())
		}
		if len(values) == 1 {
			return SystemResult{Value: values[0]}
		}
		return SystemResult{Value: values}
	}
}
