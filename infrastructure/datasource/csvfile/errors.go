package csvfile

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyFile           = errors.New("csvfile: arquivo vazio ou sem cabeçalho")
	ErrMissingColumns      = errors.New("csvfile: colunas obrigatórias ausentes no cabeçalho")
	ErrUnsupportedEncoding = errors.New("csvfile: codificação não suportada")
	ErrFileNotFound        = errors.New("csvfile: arquivo não encontrado")
	ErrFilePermission      = errors.New("csvfile: sem permissão de leitura")
)

// LoadError é o erro de carga do arquivo inteiro
type LoadError struct {
	Path string
	Err  error
}

// Error implementa a interface error
func (e *LoadError) Error() string {
	return fmt.Sprintf("csvfile: erro ao carregar %s: %v", e.Path, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *LoadError) Unwrap() error {
	return e.Err
}
