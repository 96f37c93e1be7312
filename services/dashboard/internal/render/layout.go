package render

import (
	"image/color"

	"cluedash-go/services/dashboard/internal/sensors"
	"cluedash-go/services/dashboard/internal/surface"
)

// Screen geometry shared by every field.
const (
	ScreenW = 240
	ScreenH = 240

	rowH      = 20
	textInset = 10 // text origin is (x+10, y+10); y is the baseline
	swatchR   = 4
)

// Field binds one template to one region.
type Field struct {
	Region   surface.Region
	Kind     sensors.Kind
	Template Template
	// Swatch, when set, paints a filled circle left of the text.
	Swatch func(r sensors.Reading) color.RGBA
}

func row(name string, y int16) surface.Region {
	return surface.Region{Name: name, X: 0, Y: y, W: ScreenW, H: rowH}
}

// Fields is the CLUE dashboard layout, top to bottom on screen.
func Fields() []Field {
	return []Field{
		{Region: row("prox", 80), Kind: sensors.KindLight,
			Template: Template{Label: "PROX", Values: proxValues}},
		{Region: row("accel", 100), Kind: sensors.KindMotion,
			Template: Template{Label: "ACCEL", Tuple: true, Prec: 3, Values: accelValues}},
		{Region: row("humid", 120), Kind: sensors.KindHumidity,
			Template: Template{Label: "HUMID", Names: []string{"", "TEMP"}, Prec: 2, Values: humidValues}},
		{Region: row("mag", 140), Kind: sensors.KindMagField,
			Template: Template{Label: "MAG", Tuple: true, Values: magValues}},
		{Region: row("pressure", 160), Kind: sensors.KindClimate,
			Template: Template{Label: "PRESSURE", Prec: 2, Values: pressureValues}},
		{Region: row("temp", 180), Kind: sensors.KindClimate,
			Template: Template{Label: "TEMP", Prec: 2, Values: tempValues}},
		{Region: row("rgb", 200), Kind: sensors.KindLight,
			Template: Template{Label: "RGB", Tuple: true, Values: rgbcValues},
			Swatch:   LightColor},
		{Region: row("gyro", 220), Kind: sensors.KindMotion,
			Template: Template{Label: "GYRO", Tuple: true, Prec: 4, Values: gyroValues}},
	}
}

// LightColor maps the colour channels straight into the pixel format: each
// count is truncated to the 8-bit channel range.
func LightColor(r sensors.Reading) color.RGBA {
	l := r.(sensors.Light)
	return color.RGBA{R: uint8(l.Red), G: uint8(l.Green), B: uint8(l.Blue), A: 255}
}
