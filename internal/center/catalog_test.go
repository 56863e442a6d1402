package center_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelink/internal/center"
)

func TestAll(t *testing.T) {
	centers := center.All()
	require.Len(t, centers, 3)
	assert.Equal(t, "Central Blood Donation Center", centers[0].Name)
	assert.Equal(t, 3, centers[2].ID)
}

func TestAllReturnsCopy(t *testing.T) {
	centers := center.All()
	centers[0].Name = "mutated"

	fresh := center.All()
	assert.Equal(t, "Central Blood Donation Center", fresh[0].Name)
}

func TestByID(t *testing.T) {
	c, ok := center.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Northside Blood Bank", c.Name)
	assert.Equal(t, "456 Park Avenue, Northside", c.Address)

	_, ok = center.ByID(99)
	assert.False(t, ok)
}

func TestTimeSlots(t *testing.T) {
	slots := center.TimeSlots()
	require.Len(t, slots, 18)
	assert.Equal(t, "9:00 AM", slots[0])
	assert.Equal(t, "6:30 PM", slots[17])
	// midday break: nothing between 11:30 AM and 1:00 PM
	assert.Equal(t, "11:30 AM", slots[5])
	assert.Equal(t, "1:00 PM", slots[6])
}
