package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()

	assert.Equal(t, 80, r.DailyItemCap)
	assert.Equal(t, "4:00 PM", r.CappedSlot)
	assert.Equal(t, 30, r.CappedSlotCap)
	assert.Equal(t, time.Sunday, r.ClosedWeekday)
	assert.Equal(t, []string{
		"10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
	}, r.SlotCatalog)
}

func TestRules_HasSlot(t *testing.T) {
	r := DefaultRules()

	assert.True(t, r.HasSlot("10:00 AM"))
	assert.True(t, r.HasSlot("4:00 PM"))
	assert.False(t, r.HasSlot("5:00 PM"))
	assert.False(t, r.HasSlot("4:00 pm"), "slot labels are exact matches")
	assert.False(t, r.HasSlot(""))
}

func TestRules_CapForSlot(t *testing.T) {
	r := DefaultRules()

	assert.Equal(t, 30, r.CapForSlot("4:00 PM"), "the designated slot has its own cap")
	assert.Equal(t, 80, r.CapForSlot("2:00 PM"), "every other slot is bounded by the daily cap")
	assert.Equal(t, 80, r.CapForSlot("unknown"))
}
