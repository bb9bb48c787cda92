package cards

import (
	"iter"
	"strings"
)

type flagBits interface {
	~uint8 | ~uint16 | ~uint32
}

type flagLabel[F flagBits] struct {
	flag  F
	label string
}

func hasBits[F flagBits](set, bits F) bool {
	return set&bits == bits
}

func setIf[F flagBits](set, bits F, cond bool) F {
	if cond {
		return set | bits
	}
	return set
}

// bits yields every single set bit in ascending order.
func bits[F flagBits](set F) iter.Seq[F] {
	return func(yield func(F) bool) {
		for rest := set; rest != 0; {
			low := rest & -rest
			if !yield(low) {
				return
			}
			rest &^= low
		}
	}
}

func label[F flagBits](set F, table []flagLabel[F]) string {
	if set == 0 {
		return "None"
	}
	names := make([]string, 0, len(table))
	for _, entry := range table {
		if hasBits(set, entry.flag) {
			names = append(names, entry.label)
		}
	}
	return strings.Join(names, " | ")
}
