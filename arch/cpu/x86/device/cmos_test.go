package device

import (
	"testing"
	"time"

	"github.com/retroenv/retro86/assert"
)

func testCMOS() *CMOS {
	c := NewCMOS()
	c.now = func() time.Time {
		return time.Date(1994, time.December, 24, 23, 59, 42, 0, time.UTC)
	}
	return c
}

func TestCMOSTimeOfDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name  string
		Index uint8
		Value uint8
	}{
		{Name: "seconds", Index: cmosSeconds, Value: 0x42},
		{Name: "minutes", Index: cmosMinutes, Value: 0x59},
		{Name: "hours", Index: cmosHours, Value: 0x23},
		{Name: "day", Index: cmosDay, Value: 0x24},
		{Name: "month", Index: cmosMonth, Value: 0x12},
		{Name: "year", Index: cmosYear, Value: 0x94},
		{Name: "status b", Index: cmosStatusB, Value: statusB},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			t.Parallel()
			cmos := testCMOS()
			cmos.Out8(CMOSIndexPort, test.Index)
			assert.Equal(t, test.Value, cmos.In8(CMOSDataPort))
		})
	}
}

func TestCMOSUnknownRegister(t *testing.T) {
	t.Parallel()
	cmos := testCMOS()
	cmos.Out8(CMOSIndexPort, 0x7F)
	assert.Equal(t, 0, cmos.In8(CMOSDataPort))
}

func TestCMOSIndexPortRead(t *testing.T) {
	t.Parallel()
	cmos := testCMOS()
	assert.Equal(t, 0, cmos.In8(CMOSIndexPort))
}

func TestToBCD(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0x00, toBCD(0))
	assert.Equal(t, 0x09, toBCD(9))
	assert.Equal(t, 0x10, toBCD(10))
	assert.Equal(t, 0x99, toBCD(99))
}
