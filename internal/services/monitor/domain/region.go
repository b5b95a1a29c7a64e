package domain

import (
	"fmt"
	"strconv"
	"strings"

	perr "screenwatch/internal/platform/errors"
)

// Region is a capture rectangle in screen coordinates
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// ParseRegion reads "x1,y1,x2,y2". Empty input means the full screen (nil)
func ParseRegion(s string) (*Region, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, perr.WithField(perr.Configf("region must be x1,y1,x2,y2"), "region")
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, perr.WithField(perr.Configf("region coordinate %q is not an integer", strings.TrimSpace(p)), "region")
		}
		v[i] = n
	}
	r := &Region{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate enforces x2>x1 and y2>y1
func (r Region) Validate() error {
	if r.X2 <= r.X1 || r.Y2 <= r.Y1 {
		return perr.WithField(perr.Configf("region must satisfy x2>x1 and y2>y1"), "region")
	}
	return nil
}

// Width of the rectangle
func (r Region) Width() int { return r.X2 - r.X1 }

// Height of the rectangle
func (r Region) Height() int { return r.Y2 - r.Y1 }

func (r Region) String() string { return fmt.Sprintf("%d,%d,%d,%d", r.X1, r.Y1, r.X2, r.Y2) }
