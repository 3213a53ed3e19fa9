package style

import "fmt"

// Sided values always start at the top and travel clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func sideIndex(name string) int {
	for i, d := range fourDirs {
		if d == name {
			return i
		}
	}
	return -1
}

// ExpandSided distributes a sided shorthand value to the four sides
// (top, right, bottom, left):
//
//     a         =>  a a a a
//     v h       =>  v h v h
//     t h b     =>  t h b h
//     t r b l   =>  t r b l
//
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func ExpandSided(v Value) ([4]Property, error) {
	var r [4]Property
	switch len(v) {
	case 1:
		r = [4]Property{v[0], v[0], v[0], v[0]}
	case 2:
		r = [4]Property{v[0], v[1], v[0], v[1]}
	case 3:
		r = [4]Property{v[0], v[1], v[2], v[1]}
	case 4:
		r = [4]Property{v[0], v[1], v[2], v[3]}
	default:
		return r, fmt.Errorf("%w: expecting 1-4 values for sided property, have %d",
			ErrInvalidStyleValue, len(v))
	}
	return r, nil
}

// CollapseSided is the inverse of ExpandSided: it returns the shortest
// value expanding to the given sides. Collapsing four identical sides
// yields a single token.
func CollapseSided(sides [4]Property) Value {
	if sides[Right] != sides[Left] {
		return Value{sides[Top], sides[Right], sides[Bottom], sides[Left]}
	}
	if sides[Top] != sides[Bottom] {
		return Value{sides[Top], sides[Right], sides[Bottom]}
	}
	if sides[Top] != sides[Right] {
		return Value{sides[Top], sides[Right]}
	}
	return Value{sides[Top]}
}
