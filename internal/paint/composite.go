package paint

import (
	"image"
	"image/color"
	"math"
)

// Op is a Porter-Duff composition operator, deciding how the pixels of
// a paint operation mix with the pixels already on the surface.
type Op int

const (
	SourceOver Op = iota
	Copy
	DestinationOver
	SourceIn
	DestinationIn
	SourceOut
	DestinationOut
	SourceAtop
	DestinationAtop
	Xor
)

var opNames = [...]string{
	SourceOver:      "source-over",
	Copy:            "copy",
	DestinationOver: "destination-over",
	SourceIn:        "source-in",
	DestinationIn:   "destination-in",
	SourceOut:       "source-out",
	DestinationOut:  "destination-out",
	SourceAtop:      "source-atop",
	DestinationAtop: "destination-atop",
	Xor:             "xor",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// factors returns the weights applied to the source and the backdrop
// for source alpha as and backdrop alpha ab.
func (op Op) factors(as, ab float64) (fs, fb float64) {
	switch op {
	case Copy:
		return 1, 0
	case DestinationOver:
		return 1 - ab, 1
	case SourceIn:
		return ab, 0
	case DestinationIn:
		return 0, as
	case SourceOut:
		return 1 - ab, 0
	case DestinationOut:
		return 0, 1 - as
	case SourceAtop:
		return ab, 1 - as
	case DestinationAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	default:
		return 1, 1 - as
	}
}

// composite mixes the premultiplied source layer into the backdrop over r
// using op. Both images must share the same bounds.
func composite(dst *image.NRGBA, src *image.RGBA, r image.Rectangle, op Op) {
	r = r.Intersect(dst.Bounds()).Intersect(src.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			si := src.PixOffset(x, y)
			di := dst.PixOffset(x, y)
			s := src.Pix[si : si+4 : si+4]
			d := dst.Pix[di : di+4 : di+4]

			as := float64(s[3]) / 255
			ab := float64(d[3]) / 255
			if as == 0 && (op == SourceOver || op == DestinationOver || op == DestinationOut ||
				op == SourceAtop || op == Xor) {
				continue
			}
			fs, fb := op.factors(as, ab)

			a := fs*as + fb*ab
			if a <= 0 {
				d[0], d[1], d[2], d[3] = 0, 0, 0, 0
				continue
			}
			for i := 0; i < 3; i++ {
				// source channels are premultiplied, backdrop channels are not
				cs := float64(s[i]) / 255
				cb := float64(d[i]) / 255 * ab
				d[i] = clamp8((fs*cs + fb*cb) / a)
			}
			d[3] = clamp8(a)
		}
	}
}

func clamp8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// ParseOp resolves a composite operator by its canvas name.
func ParseOp(name string) (Op, bool) {
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	return SourceOver, false
}

var transparent = image.NewUniform(color.Transparent)
