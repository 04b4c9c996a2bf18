package repository

import "compound-interest/domain"

type CalculationRepository interface {
	Save(report domain.CalculationReport) error
	List() []domain.CalculationReport
}
