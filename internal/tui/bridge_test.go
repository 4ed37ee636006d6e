package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMailbox_KeepsLatest(t *testing.T) {
	box := newMailbox[int]()
	box.put(1)
	box.put(2)

	got, ok := box.take(nil)

	assert.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestMailbox_TakeStopsWhenDone(t *testing.T) {
	box := newMailbox[int]()
	done := make(chan struct{})
	close(done)

	_, ok := box.take(done)

	assert.False(t, ok)
}

func TestScreenView_SendAfterCloseDoesNotBlock(t *testing.T) {
	v := newScreenView[int, string]()
	for i := range intentBufferSize {
		v.intents <- i
	}
	v.close()

	assert.Nil(t, v.send(99)())
	assert.Nil(t, v.next()())
}

func TestVisibleWindow(t *testing.T) {
	from, to := visibleWindow(100, 50, 10)
	assert.Equal(t, 45, from)
	assert.Equal(t, 55, to)

	from, to = visibleWindow(5, 4, 10)
	assert.Equal(t, 0, from)
	assert.Equal(t, 5, to)

	from, to = visibleWindow(20, 19, 6)
	assert.Equal(t, 14, from)
	assert.Equal(t, 20, to)
}
