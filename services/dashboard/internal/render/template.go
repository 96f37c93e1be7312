package render

import "cluedash-go/services/dashboard/internal/sensors"

// Template describes one text line.
//
//	Tuple:  LABEL (v0,v1,v2)
//	Pairs:  LABEL v0 NAME1 v1 ...
type Template struct {
	Label string
	Tuple bool
	// Names labels values after the first in pair form ("" for none).
	Names []string
	// Prec is the number of decimals; 0 prints integers.
	Prec int
	// Values extracts the numbers to print, appending to dst.
	Values func(r sensors.Reading, dst []float64) []float64
}

// Format writes the line for r into t.
func (tp Template) Format(t *Text, r sensors.Reading) error {
	var scratch [4]float64
	vals := tp.Values(r, scratch[:0])

	t.Reset()
	t.AppendString(tp.Label)
	if tp.Tuple {
		t.AppendString(" (")
		for i, v := range vals {
			if i > 0 {
				t.AppendByte(',')
			}
			t.AppendFixed(v, tp.Prec)
		}
		t.AppendByte(')')
		return t.Err()
	}
	for i, v := range vals {
		t.AppendByte(' ')
		if i < len(tp.Names) && tp.Names[i] != "" {
			t.AppendString(tp.Names[i])
			t.AppendByte(' ')
		}
		t.AppendFixed(v, tp.Prec)
	}
	return t.Err()
}

// ---- value extractors ----

func gyroValues(r sensors.Reading, dst []float64) []float64 {
	m := r.(sensors.Motion)
	return append(dst, float64(m.Gyro.X), float64(m.Gyro.Y), float64(m.Gyro.Z))
}

func accelValues(r sensors.Reading, dst []float64) []float64 {
	m := r.(sensors.Motion)
	return append(dst, float64(m.Accel.X), float64(m.Accel.Y), float64(m.Accel.Z))
}

func rgbcValues(r sensors.Reading, dst []float64) []float64 {
	l := r.(sensors.Light)
	return append(dst, float64(l.Red), float64(l.Green), float64(l.Blue), float64(l.Clear))
}

func proxValues(r sensors.Reading, dst []float64) []float64 {
	return append(dst, float64(r.(sensors.Light).Proximity))
}

func tempValues(r sensors.Reading, dst []float64) []float64 {
	return append(dst, float64(r.(sensors.Climate).MilliC)/1000)
}

// pressureValues prints hPa.
func pressureValues(r sensors.Reading, dst []float64) []float64 {
	return append(dst, float64(r.(sensors.Climate).MilliPa)/100_000)
}

func magValues(r sensors.Reading, dst []float64) []float64 {
	m := r.(sensors.MagField)
	return append(dst, float64(m.X), float64(m.Y), float64(m.Z))
}

func humidValues(r sensors.Reading, dst []float64) []float64 {
	h := r.(sensors.Humidity)
	return append(dst, float64(h.CentiRH)/100, float64(h.MilliC)/1000)
}
