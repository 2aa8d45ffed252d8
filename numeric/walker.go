package numeric

import "fmt"

// WalkError reports a BitWalker request whose run of ones does not fit.
type WalkError struct {
	Width int
	Ones  int
}

func (e *WalkError) Error() string {
	switch {
	case e.Width < 1 || e.Width > 64:
		return fmt.Sprintf("bit width %d out of range 1..64", e.Width)
	case e.Ones < 1:
		return fmt.Sprintf("n_ones can not be less than 1, got %d", e.Ones)
	default:
		return fmt.Sprintf("cannot store %#x in %d bits", widthMask(uint(e.Ones)), e.Width)
	}
}

// BitWalker returns the patterns formed by a run of ones contiguous set bits
// starting at bit 0 and moving one position towards the MSB per element,
// stopping when the run would leave the width.
//
// With invert the patterns are complemented within width, giving walking
// zeros. With signed each pattern is read as a width-bit two's complement
// number; otherwise it is returned as is, so a 64-bit unsigned pattern with
// its top bit set comes back with the same bits in an int64.
func BitWalker(width, ones int, invert, signed bool) ([]int64, error) {
	if width < 1 || width > 64 || ones < 1 || ones > width {
		return nil, &WalkError{Width: width, Ones: ones}
	}
	w := uint(width)
	mask := widthMask(w)
	run := widthMask(uint(ones))

	ret := make([]int64, 0, width-ones+1)
	for shift := 0; shift+ones <= width; shift++ {
		p := run << uint(shift)
		if invert {
			p ^= mask
		}
		if signed {
			ret = append(ret, Twos(p, w))
		} else {
			ret = append(ret, int64(p))
		}
	}
	return ret, nil
}
