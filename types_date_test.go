package etfperf

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-31", want: NewDate(2024, time.January, 31)},
		{in: "2024-1-5", want: NewDate(2024, time.January, 5)},
		{in: " 2024-06-01 ", want: NewDate(2024, time.June, 1)},
		{in: "31-01-2024", wantErr: true},
		{in: "2024/01/31", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDate_StartOfEndOf(t *testing.T) {
	tests := []struct {
		name           string
		d              Date
		p              Period
		start, end     Date
	}{
		{
			name:  "mid month",
			d:     NewDate(2024, time.February, 15),
			p:     Monthly,
			start: NewDate(2024, time.February, 1),
			end:   NewDate(2024, time.February, 29),
		},
		{
			name:  "mid year",
			d:     NewDate(2023, time.July, 4),
			p:     Yearly,
			start: NewDate(2023, time.January, 1),
			end:   NewDate(2023, time.December, 31),
		},
		{
			name:  "december rolls into next year",
			d:     NewDate(2023, time.December, 31),
			p:     Monthly,
			start: NewDate(2023, time.December, 1),
			end:   NewDate(2023, time.December, 31),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.StartOf(tt.p); got != tt.start {
				t.Errorf("StartOf = %v, want %v", got, tt.start)
			}
			if got := tt.d.EndOf(tt.p); got != tt.end {
				t.Errorf("EndOf = %v, want %v", got, tt.end)
			}
		})
	}
}

func TestDate_AddSub(t *testing.T) {
	d := NewDate(2024, time.February, 28)
	if got := d.Add(2); got != NewDate(2024, time.March, 1) {
		t.Errorf("Add(2) = %v, want 2024-03-01", got)
	}
	if got := NewDate(2024, time.March, 1).Sub(d); got != 2 {
		t.Errorf("Sub = %d, want 2", got)
	}
}
