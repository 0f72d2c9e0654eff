package viewer

import "testing"

func TestDescribeKnownPairs(t *testing.T) {
	tests := []struct {
		room     Room
		lighting Lighting
		want     StyleDescriptor
	}{
		{RoomLiving, LightingDaylight, StyleDescriptor{"#f5f0e8", "/textures/rooms/living.jpg", 100, 100}},
		{RoomBedroom, LightingEvening, StyleDescriptor{"#e8e4f0", "/textures/rooms/bedroom.jpg", 85, 105}},
		{RoomOffice, LightingDim, StyleDescriptor{"#eef1f4", "/textures/rooms/office.jpg", 60, 110}},
		{RoomKitchen, LightingBright, StyleDescriptor{"#f4f1ea", "/textures/rooms/kitchen.jpg", 115, 95}},
	}
	for _, tt := range tests {
		if got := Describe(tt.room, tt.lighting); got != tt.want {
			t.Errorf("Describe(%s, %s) = %+v, want %+v", tt.room, tt.lighting, got, tt.want)
		}
	}
}

func TestDescribeUnknownRoomFallsBackToLiving(t *testing.T) {
	got := Describe(Room("attic"), LightingEvening)
	want := Describe(RoomLiving, LightingEvening)
	if got != want {
		t.Errorf("Describe(attic, evening) = %+v, want living base %+v", got, want)
	}
}

func TestDescribeUnknownLightingFallsBackToNeutral(t *testing.T) {
	got := Describe(RoomOffice, Lighting("candlelit"))
	if got.BrightnessPercent != 100 || got.ContrastPercent != 100 {
		t.Errorf("unknown lighting filter = %d/%d, want 100/100", got.BrightnessPercent, got.ContrastPercent)
	}
	if got.BackgroundColor != "#eef1f4" {
		t.Errorf("room base lost on unknown lighting: %+v", got)
	}
}

func TestDescribeBothUnknown(t *testing.T) {
	got := Describe(Room(""), Lighting(""))
	want := StyleDescriptor{"#f5f0e8", "/textures/rooms/living.jpg", 100, 100}
	if got != want {
		t.Errorf("Describe with empty selections = %+v, want %+v", got, want)
	}
}

func TestDescribeIsPure(t *testing.T) {
	a := Describe(RoomKitchen, LightingDim)
	b := Describe(RoomKitchen, LightingDim)
	if a != b {
		t.Errorf("repeated calls disagree: %+v vs %+v", a, b)
	}
}
