package harness

import (
	"sort"

	"basedchecker/internal/rng"
	"basedchecker/internal/vm"
)

// signedBits is the width every task draws random integers at: 60 bits,
// leaving headroom below int64's 64 bits so sums (Task 1) and absolute
// values (Task 2) never themselves overflow int64.
const signedBits = 60

// Task1 sums two random integers.
type Task1 struct{}

func (Task1) Prepare(p *vm.Program, r *rng.Pcg128) int64 {
	a := r.NextSigned(signedBits)
	b := r.NextSigned(signedBits)
	p.PushInput(vm.Integer(a))
	p.PushInput(vm.Integer(b))
	return a + b
}

// Task2 takes the absolute value of a random integer.
type Task2 struct{}

func (Task2) Prepare(p *vm.Program, r *rng.Pcg128) int64 {
	a := r.NextSigned(signedBits)
	p.PushInput(vm.Integer(a))
	if a < 0 {
		return -a
	}
	return a
}

// Task3 finds the maximum of an n-element random array.
type Task3 struct {
	N int
}

func (t Task3) Prepare(p *vm.Program, r *rng.Pcg128) int64 {
	a := make([]int64, t.N)
	for i := range a {
		a[i] = r.NextSigned(signedBits)
	}
	answer := a[0]
	for _, v := range a[1:] {
		if v > answer {
			answer = v
		}
	}
	p.PushInput(vm.Integer(int64(t.N)))
	p.PushInput(vm.Array(a))
	return answer
}

// Task4 finds the k-th largest element of an n-element random array,
// with k itself drawn uniformly from [1, n].
type Task4 struct {
	N int
}

func (t Task4) Prepare(p *vm.Program, r *rng.Pcg128) int64 {
	// The array is drawn first and k after it; this draw order is part of
	// the reproducibility contract.
	a := make([]int64, t.N)
	for i := range a {
		a[i] = r.NextSigned(signedBits)
	}
	k := int(r.Next()%uint64(t.N)) + 1

	sorted := append([]int64(nil), a...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	answer := sorted[t.N-k]

	p.PushInput(vm.Integer(int64(t.N)))
	p.PushInput(vm.Array(a))
	p.PushInput(vm.Integer(int64(k)))
	return answer
}

