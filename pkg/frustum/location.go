package frustum

// Location is the result of classifying a shape against a frustum.
// Values are ordered from least to most conservative for culling.
type Location int

const (
	Inside Location = iota
	Intersect
	Outside
)

// Visible reports whether a renderer should draw something at this location
func (l Location) Visible() bool {
	return l != Outside
}

func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case Intersect:
		return "intersect"
	case Outside:
		return "outside"
	default:
		return "unknown"
	}
}

// Face names one of the six bounding planes
type Face int

const (
	Top Face = iota
	Bottom
	Left
	Right
	Near
	Far

	faceCount
)

func (f Face) String() string {
	switch f {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	case Near:
		return "near"
	case Far:
		return "far"
	default:
		return "unknown"
	}
}
