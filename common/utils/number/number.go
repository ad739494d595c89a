package number

import (
	"math"
	"strconv"
)

const Epsilon float64 = 0.000001

func IsZero(f float64) bool {
	return math.Abs(f) < Epsilon
}

func AlmostEqual(a float64, b float64) bool {
	return IsZero(a - b)
}

func ToFixed(val float64, places int) (newVal float64) {
	roundOn := 0.5
	var round float64
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	if div >= roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	newVal = round / pow
	return
}

func FloatToStr(f float64, places int) string {
	return strconv.FormatFloat(f, 'f', places, 64)
}

func DegreeToRadian(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func RadianToDegree(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
