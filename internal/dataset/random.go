package dataset

const (
	lcgModulus    = 2147483647 // 2^31 - 1
	lcgMultiplier = 16807
)

// Random é o gerador congruencial linear de Park–Miller. Duas instâncias com a mesma
// semente produzem exatamente a mesma sequência.
type Random struct {
	state int64
}

func NewRandom(seed int64) *Random {
	state := seed % lcgModulus
	if state <= 0 {
		state += lcgModulus - 1
	}
	return &Random{state: state}
}

// Float64 avança o estado e devolve um valor em [0, 1)
func (r *Random) Float64() float64 {
	r.state = r.state * lcgMultiplier % lcgModulus
	return float64(r.state-1) / float64(lcgModulus-1)
}

// Pick sorteia um elemento da lista. Lista vazia devolve o valor zero sem consumir a sequência.
func Pick[T any](r *Random, values []T) T {
	var zero T
	if len(values) == 0 {
		return zero
	}
	return values[int(r.Float64()*float64(len(values)))]
}
