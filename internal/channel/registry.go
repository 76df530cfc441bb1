// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package channel

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-log-monitor/models"
)

// Listener receives the payload of a dispatched message: a models type for
// known message types, json.RawMessage otherwise.
type Listener func(payload any)

// Subscription is the handle of one listener registration.
type Subscription struct {
	msgType  models.MessageType
	listener Listener
}

type registry struct {
	mu   sync.RWMutex
	subs map[models.MessageType][]*Subscription
}

func newRegistry() *registry {
	return &registry{subs: make(map[models.MessageType][]*Subscription)}
}

func (r *registry) add(msgType models.MessageType, listener Listener) *Subscription {
	sub := &Subscription{msgType: msgType, listener: listener}

	r.mu.Lock()
	r.subs[msgType] = append(r.subs[msgType], sub)
	r.mu.Unlock()

	return sub
}

// remove drops the first registration of sub under msgType.
func (r *registry) remove(msgType models.MessageType, sub *Subscription) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.subs[msgType]
	i := slices.Index(subs, sub)
	if i < 0 {
		return false
	}

	subs = slices.Delete(slices.Clone(subs), i, i+1)
	if len(subs) == 0 {
		delete(r.subs, msgType)
	} else {
		r.subs[msgType] = subs
	}
	return true
}

// snapshot returns the listeners of msgType in registration order. The slice
// is not shared with the registry, so listeners may (un)subscribe while it is
// being iterated.
func (r *registry) snapshot(msgType models.MessageType) []*Subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.subs[msgType])
}

func (r *registry) count(msgType models.MessageType) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs[msgType])
}
