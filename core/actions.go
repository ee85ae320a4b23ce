// SPDX-License-Identifier: MIT
// Package: graphframe/core
//
// actions.go — deferred graph actions and global attribute bindings.
//
// Actions are a pass-through hook (see types.go): registration is
// bookkeeping, not a structural mutation, so it appends no log entry.
// Global attribute bindings are container state, so setting or deleting
// one is logged like any other mutating call.

package core

import (
	"fmt"
	"time"
)

// RegisterAction appends a named deferred action. It will run after every
// subsequent structural mutation, in registration order.
// Errors: ErrNilGraph, ErrNilAction, ErrDuplicateAction.
// Complexity: O(len(actions)).
func (g *Graph) RegisterAction(name string, fn func(*Graph) error) error {
	if g == nil {
		return coreErrorf(opRegisterAction, ErrNilGraph)
	}
	if name == "" || fn == nil {
		return coreErrorf(opRegisterAction, ErrNilAction)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, a := range g.actions {
		if a.Name == name {
			return fmt.Errorf("%s: %q: %w", opRegisterAction, name, ErrDuplicateAction)
		}
	}
	g.actions = append(g.actions, GraphAction{Name: name, Fn: fn})

	return nil
}

// DeregisterAction removes the named action, preserving the order of the
// remaining ones.
// Errors: ErrNilGraph, ErrActionNotFound.
// Complexity: O(len(actions)).
func (g *Graph) DeregisterAction(name string) error {
	if g == nil {
		return coreErrorf(opRegisterAction, ErrNilGraph)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for i, a := range g.actions {
		if a.Name == name {
			g.actions = append(g.actions[:i], g.actions[i+1:]...)

			return nil
		}
	}

	return fmt.Errorf("%s: %q: %w", opRegisterAction, name, ErrActionNotFound)
}

// SetGlobalAttr binds (attr, kind) to value, replacing an existing binding
// of the same attr and kind.
// Errors: ErrNilGraph.
// Complexity: O(len(attrs)).
func (g *Graph) SetGlobalAttr(attr string, value any, kind AttrKind) error {
	if g == nil {
		return coreErrorf(opSetGlobalAttr, ErrNilGraph)
	}
	if attr == "" {
		return fmt.Errorf("%s: empty attr: %w", opSetGlobalAttr, ErrAttrNotFound)
	}
	start := time.Now()

	g.mu.Lock()
	replaced := false
	for i := range g.globalAttrs {
		if g.globalAttrs[i].Attr == attr && g.globalAttrs[i].Kind == kind {
			g.globalAttrs[i].Value = value
			replaced = true

			break
		}
	}
	if !replaced {
		g.globalAttrs = append(g.globalAttrs, GlobalAttr{Attr: attr, Value: value, Kind: kind})
	}
	g.appendLogLocked(opSetGlobalAttr, start)
	g.mu.Unlock()

	g.afterMutation(opSetGlobalAttr)

	return nil
}

// DeleteGlobalAttr removes the (attr, kind) binding.
// Errors: ErrNilGraph, ErrAttrNotFound.
// Complexity: O(len(attrs)).
func (g *Graph) DeleteGlobalAttr(attr string, kind AttrKind) error {
	if g == nil {
		return coreErrorf(opDelGlobalAttr, ErrNilGraph)
	}
	start := time.Now()

	g.mu.Lock()
	for i := range g.globalAttrs {
		if g.globalAttrs[i].Attr == attr && g.globalAttrs[i].Kind == kind {
			g.globalAttrs = append(g.globalAttrs[:i], g.globalAttrs[i+1:]...)
			g.appendLogLocked(opDelGlobalAttr, start)
			g.mu.Unlock()

			g.afterMutation(opDelGlobalAttr)

			return nil
		}
	}
	g.mu.Unlock()

	return fmt.Errorf("%s: %q (%s): %w", opDelGlobalAttr, attr, kind, ErrAttrNotFound)
}
