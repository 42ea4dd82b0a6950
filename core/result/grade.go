package result

// Grade is the derived display classification of a numeric mark. The
// style class carries visual emphasis only; it has no behavioral effect.
type Grade struct {
	Letter     string
	StyleClass string
}

var gradeStyles = map[string]string{
	"A+": "bg-green-500 text-white",
	"A":  "bg-blue-500 text-white",
	"B":  "bg-purple-500 text-white",
	"C":  "bg-yellow-400 text-black",
	"D":  "bg-red-500 text-white",
	"F":  "bg-red-700 text-white",
}

// Classify maps a numeric mark to its letter grade. Deterministic and
// total: marks outside [0,100] are pre-validated upstream but still fall
// through to the nearest band rather than failing.
func Classify(marks float64) Grade {
	var letter string
	switch {
	case marks >= 90:
		letter = "A+"
	case marks >= 80:
		letter = "A"
	case marks >= 70:
		letter = "B"
	case marks >= 60:
		letter = "C"
	case marks >= 50:
		letter = "D"
	default:
		letter = "F"
	}
	return Grade{Letter: letter, StyleClass: gradeStyles[letter]}
}
