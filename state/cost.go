package state

import "strconv"

// Cost is a route metric: either a finite non-negative value, or unreachable.
// Reachability is explicit so that no arithmetic is ever performed on an
// "infinite" sentinel value.
type Cost struct {
	value     int
	reachable bool
}

// Unreachable is the zero Cost.
var Unreachable = Cost{}

func Finite(v int) Cost {
	if v < 0 {
		panic("negative cost: " + strconv.Itoa(v))
	}
	return Cost{value: v, reachable: true}
}

func (c Cost) IsFinite() bool {
	return c.reachable
}

// Value returns the finite metric. Callers must check IsFinite first.
func (c Cost) Value() int {
	if !c.reachable {
		panic("value of unreachable cost")
	}
	return c.value
}

// Add is absorbing: if either side is unreachable, so is the sum.
func (c Cost) Add(o Cost) Cost {
	if !c.reachable || !o.reachable {
		return Unreachable
	}
	return Finite(c.value + o.value)
}

// Less reports whether c is strictly better than o. A finite cost always
// beats unreachable; unreachable never beats anything.
func (c Cost) Less(o Cost) bool {
	if !c.reachable {
		return false
	}
	if !o.reachable {
		return true
	}
	return c.value < o.value
}

func (c Cost) String() string {
	if !c.reachable {
		return "INF"
	}
	return strconv.Itoa(c.value)
}
