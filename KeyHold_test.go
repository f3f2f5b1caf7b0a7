package main

import (
	"PongMatch/core"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestKeyHold() *keyHold {
	return newKeyHold(120*time.Millisecond, 700*time.Millisecond)
}

func TestKeyHoldWaitsForFirstRepeat(t *testing.T) {
	hold := newTestKeyHold()
	t0 := time.Now()

	hold.press(core.KeyUp, t0)

	for at := time.Duration(0); at < 500*time.Millisecond; at += 8 * time.Millisecond {
		assert.Empty(t, hold.expired(t0.Add(at)), "Key should still be held at %v before the first repeat", at)
	}

	hold.press(core.KeyUp, t0.Add(500*time.Millisecond))

	assert.Empty(t, hold.expired(t0.Add(580*time.Millisecond)), "Repeats should keep the key held")
	assert.Equal(t, []core.Key{core.KeyUp}, hold.expired(t0.Add(620*time.Millisecond)),
		"After repeats started the short window applies")
}

func TestKeyHoldSingleTapReleasedAfterFirstRepeatWindow(t *testing.T) {
	hold := newTestKeyHold()
	t0 := time.Now()

	hold.press(core.KeyUp, t0)

	assert.Empty(t, hold.expired(t0.Add(699*time.Millisecond)))
	assert.Equal(t, []core.Key{core.KeyUp}, hold.expired(t0.Add(700*time.Millisecond)))
	assert.Empty(t, hold.expired(t0.Add(2*time.Second)), "Released keys are forgotten")
}

func TestKeyHoldRepeatKeepsKeyHeld(t *testing.T) {
	hold := newTestKeyHold()
	t0 := time.Now()

	hold.press(core.KeyW, t0)
	hold.press(core.KeyW, t0.Add(400*time.Millisecond))
	hold.press(core.KeyW, t0.Add(500*time.Millisecond))

	assert.Empty(t, hold.expired(t0.Add(600*time.Millisecond)), "Repeat should extend the hold")
	assert.Equal(t, []core.Key{core.KeyW}, hold.expired(t0.Add(620*time.Millisecond)))
}

func TestKeyHoldNewPressAfterReleaseWaitsAgain(t *testing.T) {
	hold := newTestKeyHold()
	t0 := time.Now()

	hold.press(core.KeyS, t0)
	hold.press(core.KeyS, t0.Add(400*time.Millisecond))
	assert.Equal(t, []core.Key{core.KeyS}, hold.expired(t0.Add(520*time.Millisecond)))

	hold.press(core.KeyS, t0.Add(time.Second))
	assert.Empty(t, hold.expired(t0.Add(1300*time.Millisecond)), "A fresh press should wait for its first repeat")
}

func TestKeyHoldOppositeKeyReplaces(t *testing.T) {
	hold := newTestKeyHold()
	t0 := time.Now()

	hold.press(core.KeyUp, t0)
	hold.press(core.KeyDown, t0.Add(10*time.Millisecond))
	hold.press(core.KeyS, t0)

	assert.Equal(t, []core.Key{core.KeyDown, core.KeyS}, hold.expired(t0.Add(time.Second)),
		"Only the latest key of each paddle should be released")
}

func TestKeyHoldIgnoresOtherKeys(t *testing.T) {
	hold := newTestKeyHold()
	t0 := time.Now()

	hold.press(core.KeyOther, t0)

	assert.Empty(t, hold.expired(t0.Add(time.Second)))
}
