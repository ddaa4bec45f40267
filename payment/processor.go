package payment

import "sync"

// Processor executes payments through a configured strategy. The strategy
// can be swapped at runtime; Processor is safe for concurrent use.
type Processor struct {
	mu       sync.RWMutex
	strategy Strategy
}

func NewProcessor(s Strategy) *Processor {
	return &Processor{strategy: s}
}

// SetStrategy replaces the active strategy.
func (p *Processor) SetStrategy(s Strategy) {
	p.mu.Lock()
	p.strategy = s
	p.mu.Unlock()
}

// Execute runs the payment with the active strategy.
func (p *Processor) Execute(amount float64) (Receipt, error) {
	p.mu.RLock()
	s := p.strategy
	p.mu.RUnlock()
	return s.Pay(amount)
}
