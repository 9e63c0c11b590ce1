package domain

import "fmt"

// MonthKey é a chave composta usada no agrupamento mensal
type MonthKey struct {
	Year  int
	Month int
}

// String formata a chave como "YYYY-MM"
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Month)
}

// Before ordena cronologicamente por ano e depois por mês
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}
