package csvfile

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// Loader carrega o arquivo de vendas de um caminho fixo
type Loader struct {
	path   string
	parser *Parser
}

// NewLoader cria um loader para o caminho informado
func NewLoader(path string, parser *Parser) *Loader {
	return &Loader{
		path:   path,
		parser: parser,
	}
}

// NewFileLoader cria o parser e o loader a partir da configuração do arquivo
func NewFileLoader(path string, cfg Config) (*Loader, error) {
	parser, err := NewParser(cfg)
	if err != nil {
		return nil, err
	}
	return NewLoader(path, parser), nil
}

// Path retorna o caminho do arquivo de origem
func (l *Loader) Path() string {
	return l.path
}

// Load lê e converte o arquivo inteiro. Falhas de linha nunca chegam aqui;
// apenas falhas do arquivo (inexistente, ilegível, cabeçalho quebrado).
func (l *Loader) Load(ctx context.Context) ([]domain.SalesRecord, error) {
	logger := log.ForContext(ctx).WithField("file_path", l.path)
	logger.Info("csvfile: carregando dados de vendas")

	startedAt := time.Now()

	file, err := os.Open(l.path)
	if err != nil {
		logger.WithError(err).Error("csvfile: erro ao abrir arquivo de vendas")
		return nil, &LoadError{Path: l.path, Err: classifyOpenError(err)}
	}
	defer file.Close()

	records, stats, err := l.parser.Parse(ctx, file)
	if err != nil {
		logger.WithError(err).Error("csvfile: erro ao processar arquivo de vendas")
		return nil, &LoadError{Path: l.path, Err: err}
	}

	logger.WithFields(log.Fields{
		"records":         stats.Rows,
		"malformed_rows":  stats.MalformedRows,
		"fallback_fields": stats.FallbackFields,
		"duration_ms":     time.Since(startedAt).Milliseconds(),
	}).Info("csvfile: dados de vendas carregados com sucesso")

	return records, nil
}

func classifyOpenError(err error) error {
	switch {
	case os.IsNotExist(err):
		return errors.Wrap(ErrFileNotFound, err.Error())
	case os.IsPermission(err):
		return errors.Wrap(ErrFilePermission, err.Error())
	default:
		return errors.Wrap(err, "csvfile: erro ao abrir arquivo")
	}
}
