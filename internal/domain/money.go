package domain

import "fmt"

// Money is an amount in cents.
type Money int64

func Dollars(d int64) Money {
	return Money(d * 100)
}

func (m Money) Dollars() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
