package viewer

// Room is the virtual room backdrop selection.
type Room string

const (
	RoomLiving  Room = "living"
	RoomBedroom Room = "bedroom"
	RoomOffice  Room = "office"
	RoomKitchen Room = "kitchen"
)

// Lighting is the virtual lighting selection.
type Lighting string

const (
	LightingDaylight Lighting = "daylight"
	LightingEvening  Lighting = "evening"
	LightingDim      Lighting = "dim"
	LightingBright   Lighting = "bright"
)

// StyleDescriptor is the backdrop style for a room/lighting pair.
type StyleDescriptor struct {
	BackgroundColor      string `json:"backgroundColor"`
	BackgroundTextureURI string `json:"backgroundTextureUri"`
	BrightnessPercent    int    `json:"brightnessPercent"`
	ContrastPercent      int    `json:"contrastPercent"`
}

// roomStyles defines the base color and wall texture per room.
var roomStyles = map[Room]struct {
	color   string
	texture string
}{
	RoomLiving:  {"#f5f0e8", "/textures/rooms/living.jpg"},
	RoomBedroom: {"#e8e4f0", "/textures/rooms/bedroom.jpg"},
	RoomOffice:  {"#eef1f4", "/textures/rooms/office.jpg"},
	RoomKitchen: {"#f4f1ea", "/textures/rooms/kitchen.jpg"},
}

// lightingFilters defines the brightness/contrast filter per lighting mode.
var lightingFilters = map[Lighting]struct {
	brightness int
	contrast   int
}{
	LightingDaylight: {100, 100},
	LightingEvening:  {85, 105},
	LightingDim:      {60, 110},
	LightingBright:   {115, 95},
}

// Describe maps a room/lighting selection to its backdrop style. Pure and
// total: unrecognized values fall back to the living base style and a
// 100%/100% filter.
func Describe(room Room, lighting Lighting) StyleDescriptor {
	base, ok := roomStyles[room]
	if !ok {
		base = roomStyles[RoomLiving]
	}

	filter, ok := lightingFilters[lighting]
	if !ok {
		filter = struct {
			brightness int
			contrast   int
		}{100, 100}
	}

	return StyleDescriptor{
		BackgroundColor:      base.color,
		BackgroundTextureURI: base.texture,
		BrightnessPercent:    filter.brightness,
		ContrastPercent:      filter.contrast,
	}
}
