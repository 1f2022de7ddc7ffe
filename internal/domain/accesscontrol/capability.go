// Package accesscontrol holds the role and permission model that drives
// authorization decisions: roles bundle permissions, permissions identify
// one action on one module, and a Capability is the canonical
// module:action pair the authorizer compares.
package accesscontrol

import (
	"fmt"
	"sort"
	"strings"
)

// Action is one of the four CRUD verbs a permission can grant.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var validActions = map[Action]bool{
	ActionCreate: true,
	ActionRead:   true,
	ActionUpdate: true,
	ActionDelete: true,
}

func NewAction(action string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(action)))
	if !validActions[a] {
		return "", fmt.Errorf("action must be one of create, read, update, or delete")
	}
	return a, nil
}

func (a Action) String() string {
	return string(a)
}

// Capability is the canonical authorization unit: a module paired with
// an action. Two permission rows with the same module and action but
// different role scopes collapse to the same Capability.
type Capability struct {
	module string
	action Action
}

// NewCapability builds a capability, normalizing the module to lower
// case so that storage comparison and token matching never diverge.
func NewCapability(module string, action Action) (Capability, error) {
	module = strings.ToLower(strings.TrimSpace(module))
	if module == "" {
		return Capability{}, fmt.Errorf("capability module is required")
	}
	if strings.Contains(module, ":") {
		return Capability{}, fmt.Errorf("capability module must not contain ':'")
	}
	if !validActions[action] {
		return Capability{}, fmt.Errorf("invalid capability action: %s", action)
	}
	return Capability{module: module, action: action}, nil
}

// ParseCapability parses the canonical "module:action" serialization.
func ParseCapability(s string) (Capability, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return Capability{}, fmt.Errorf("capability must be in module:action form, got %q", s)
	}
	action, err := NewAction(parts[1])
	if err != nil {
		return Capability{}, err
	}
	return NewCapability(parts[0], action)
}

// MustCapability is a ParseCapability variant for static route wiring,
// where a malformed literal is a programming error.
func MustCapability(s string) Capability {
	c, err := ParseCapability(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Capability) Module() string {
	return c.module
}

func (c Capability) Action() Action {
	return c.action
}

// String is the single canonical serialization used for storage
// comparison, responses, and middleware matching.
func (c Capability) String() string {
	return c.module + ":" + string(c.action)
}

// CapabilitySet is the resolved grant set for a principal.
type CapabilitySet map[Capability]struct{}

func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// HasAll reports whether every required capability is present. An empty
// required list is trivially satisfied.
func (s CapabilitySet) HasAll(required ...Capability) bool {
	for _, c := range required {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// Strings returns the sorted canonical serializations of the set.
func (s CapabilitySet) Strings() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c.String())
	}
	sort.Strings(out)
	return out
}
