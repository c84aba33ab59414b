package colour

import "math"

// D65 reference white used by the Lab conversions.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883

	labEpsilon = 0.008856
	labKappa   = 7.787
)

// RGBToHSV converts RGB channels (0-255) to hue (0-360), saturation (0-1)
// and value (0-1).
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	r /= 255
	g /= 255
	b /= 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v = maxVal
	if v == 0 {
		return 0, 0, 0
	}

	s = delta / maxVal
	if s == 0 {
		// Achromatic grey.
		return 0, 0, v
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}

	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// HSVToRGB converts hue (degrees), saturation (0-1) and value (0-1) to RGB
// channels in the range 0-255. Hue is wrapped into [0, 360).
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h = normaliseHue(h)

	chroma := s * v
	hDash := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hDash, 2)-1))

	switch int(math.Floor(hDash)) {
	case 0:
		r, g = chroma, x
	case 1:
		r, g = x, chroma
	case 2:
		g, b = chroma, x
	case 3:
		g, b = x, chroma
	case 4:
		r, b = x, chroma
	default:
		r, b = chroma, x
	}

	m := v - chroma
	return (r + m) * 255, (g + m) * 255, (b + m) * 255
}

// RGBToHSL converts RGB channels (0-255) to hue (0-360), saturation (0-1)
// and lightness (0-1). It is derived from the HSV form.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	h, sv, v := RGBToHSV(r, g, b)

	l = (2 - sv) * v / 2
	if l == 0 || l == 1 {
		return h, 0, l
	}

	if l <= 0.5 {
		s = sv * v / (2 * l)
	} else {
		s = sv * v / (2 - 2*l)
	}
	return h, s, l
}

// HSLToRGB converts hue (degrees), saturation (0-1) and lightness (0-1) to
// RGB channels in the range 0-255.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	var t float64
	if l < 0.5 {
		t = s * l
	} else {
		t = s * (1 - l)
	}

	v := l + t
	sv := 0.0
	if v != 0 {
		sv = 2 * t / v
	}
	return HSVToRGB(h, sv, v)
}

// RGBToLab converts RGB channels (0-255) to CIE L*a*b* using the D65
// reference white.
func RGBToLab(r, g, b float64) (l, a, bb float64) {
	lr := linearise(r / 255)
	lg := linearise(g / 255)
	lb := linearise(b / 255)

	x := (lr*0.4124 + lg*0.3576 + lb*0.1805) * 100
	y := (lr*0.2126 + lg*0.7152 + lb*0.0722) * 100
	z := (lr*0.0193 + lg*0.1192 + lb*0.9505) * 100

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return 116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)
}

// LabToRGB converts CIE L*a*b* (D65) to RGB channels. The result is not
// clamped; out-of-gamut Lab values produce channels outside 0-255.
func LabToRGB(l, a, bb float64) (r, g, b float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - bb/200

	x := labFInv(fx) * whiteX / 100
	y := labFInv(fy) * whiteY / 100
	z := labFInv(fz) * whiteZ / 100

	lr := x*3.2406 + y*-1.5372 + z*-0.4986
	lg := x*-0.9689 + y*1.8758 + z*0.0415
	lb := x*0.0557 + y*-0.2040 + z*1.0570

	return compand(lr) * 255, compand(lg) * 255, compand(lb) * 255
}

// linearise removes sRGB gamma from a 0-1 channel.
func linearise(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// compand applies sRGB gamma to a linear 0-1 channel.
func compand(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return labKappa*t + 16.0/116.0
}

func labFInv(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (t - 16.0/116.0) / labKappa
}

// normaliseHue wraps a hue in degrees into [0, 360).
func normaliseHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// clamp limits v to [lo, hi]. NaN maps to lo.
func clamp(v, lo, hi float64) float64 {
	if !(v > lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
