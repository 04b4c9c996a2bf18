package repository

import (
	"sync"

	"compound-interest/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of CalculationRepository.
type CalculationRepositoryMemory struct {
	mu    sync.RWMutex
	data  []domain.CalculationReport
	limit int
}

// NewCalculationRepositoryMemory creates a repository that keeps at most
// limit reports, dropping the oldest first. A limit <= 0 keeps everything.
func NewCalculationRepositoryMemory(limit int) *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data:  []domain.CalculationReport{},
		limit: limit,
	}
}

// Save stores the report in memory.
func (r *CalculationRepositoryMemory) Save(report domain.CalculationReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, report)
	if r.limit > 0 && len(r.data) > r.limit {
		r.data = r.data[len(r.data)-r.limit:]
	}
	return nil
}

// List returns a copy of the stored reports, oldest first.
func (r *CalculationRepositoryMemory) List() []domain.CalculationReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CalculationReport, len(r.data))
	copy(out, r.data)
	return out
}
