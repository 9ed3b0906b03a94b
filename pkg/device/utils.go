package device

import "golang.org/x/exp/rand"

func cleari32(a []int32) {
	for i := range a {
		a[i] = 0
	}
}

func randi32(r *rand.Rand, a []int32) {
	for i := range a {
		a[i] = r.Int31()
	}
}
