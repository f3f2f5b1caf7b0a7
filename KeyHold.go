package main

import (
	"PongMatch/core"
	"time"
)

// Terminals only report key repeats, never key-up. keyHold turns a pause in the
// repeats into a release. Until a key has repeated once the longer firstRepeat
// window applies, since the terminal waits before it starts auto-repeating.
type keyHold struct {
	releaseAfter time.Duration
	firstRepeat  time.Duration
	held         map[core.Key]heldKey
}

type heldKey struct {
	lastSeen time.Time
	repeated bool
}

var gameKeys = []core.Key{core.KeyUp, core.KeyDown, core.KeyW, core.KeyS}

// opposite key driving the same paddle
var oppositeKey = map[core.Key]core.Key{
	core.KeyUp:   core.KeyDown,
	core.KeyDown: core.KeyUp,
	core.KeyW:    core.KeyS,
	core.KeyS:    core.KeyW,
}

func newKeyHold(releaseAfter, firstRepeat time.Duration) *keyHold {
	return &keyHold{
		releaseAfter: releaseAfter,
		firstRepeat:  firstRepeat,
		held:         make(map[core.Key]heldKey),
	}
}

// press records key as held at now. A press on the opposite key of the same
// paddle replaces it, so only the latest key can later be released.
func (h *keyHold) press(key core.Key, now time.Time) {
	opposite, ok := oppositeKey[key]
	if !ok {
		return
	}
	delete(h.held, opposite)

	_, repeated := h.held[key]
	h.held[key] = heldKey{lastSeen: now, repeated: repeated}
}

// expired returns, in a fixed order, the keys not seen for long enough and forgets them.
func (h *keyHold) expired(now time.Time) []core.Key {
	var keys []core.Key
	for _, key := range gameKeys {
		k, ok := h.held[key]
		if !ok {
			continue
		}
		window := h.releaseAfter
		if !k.repeated {
			window = h.firstRepeat
		}
		if now.Sub(k.lastSeen) >= window {
			keys = append(keys, key)
			delete(h.held, key)
		}
	}
	return keys
}
