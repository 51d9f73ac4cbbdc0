package grid

import (
	"errors"
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "05:00", want: "05:00"},
		{input: "23:30", want: "23:30"},
		{input: "00:00", want: "00:00"},
		{input: "5:00", wantErr: true},
		{input: "24:00", wantErr: true},
		{input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidClock) {
					t.Errorf("got error %v, want %v", err, ErrInvalidClock)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClock_AddWrapsMidnight(t *testing.T) {
	c := MustParseClock("23:30")
	if got := c.Add(time.Hour); got.String() != "00:30" {
		t.Errorf("23:30 + 1h = %s, want 00:30", got)
	}
	if got := MustParseClock("00:15").Add(-30 * time.Minute); got.String() != "23:45" {
		t.Errorf("00:15 - 30m = %s, want 23:45", got)
	}
}

func TestClock_Format(t *testing.T) {
	if got := MustParseClock("05:00").Format("03:04 PM"); got != "05:00 AM" {
		t.Errorf("got %q, want %q", got, "05:00 AM")
	}
	if got := MustParseClock("16:30").Format("03:04 PM"); got != "04:30 PM" {
		t.Errorf("got %q, want %q", got, "04:30 PM")
	}
}

func TestClock_On(t *testing.T) {
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	got := MustParseClock("20:30").On(day)
	want := time.Date(2025, 1, 6, 20, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSlotTime_WrapsPastMidnight(t *testing.T) {
	start := MustParseClock("20:00")
	if got := SlotTime(start, ContentRows); got.String() != "07:30" {
		t.Errorf("last slot = %s, want 07:30", got)
	}
}
