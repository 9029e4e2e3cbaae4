package sat

// EMA maintains an exponential moving average. The solver uses it to track
// the average size of recently learnt clauses in its search statistics.
type EMA struct {
	decay float64
	value float64
	init  bool
}

func NewEMA(decay float64) EMA {
	return EMA{decay: decay}
}

// Add incorporates a new sample in the average. The first sample initializes
// the average instead of being averaged with the zero value.
func (ema *EMA) Add(x float64) {
	if !ema.init {
		ema.init = true
		ema.value = x
	} else {
		ema.value = ema.decay*ema.value + x*(1-ema.decay)
	}
}

func (ema *EMA) Val() float64 {
	return ema.value
}
