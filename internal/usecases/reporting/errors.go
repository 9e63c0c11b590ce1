package reporting

import "errors"

// ErrDatasetUnavailable indica que o conjunto de vendas não pôde ser carregado
var ErrDatasetUnavailable = errors.New("reporting: dados de vendas indisponíveis")

// datasetError mantém a causa original e permite errors.Is com ErrDatasetUnavailable
type datasetError struct {
	cause error
}

func (e *datasetError) Error() string {
	return ErrDatasetUnavailable.Error() + ": " + e.cause.Error()
}

func (e *datasetError) Unwrap() []error {
	return []error{ErrDatasetUnavailable, e.cause}
}
