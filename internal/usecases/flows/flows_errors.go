package flows

import (
	"errors"
	"fmt"

	"github.com/vfg2006/emerging-areas-api/pkg/apiErrors"
)

// Erros específicos do pipeline de visualizações
var (
	// Erros de validação dos controles
	ErrInvalidMonth       = errors.New("month out of range")
	ErrInvalidLayerStyle  = errors.New("unknown layer style")
	ErrInvalidFilterMode  = errors.New("unknown filter mode")
	ErrDatasetNotLoaded   = errors.New("dataset not loaded")
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)

// PipelineError é um erro com contexto adicional para a API
type PipelineError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *PipelineError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewPipelineError(err error, code string, details string) *PipelineError {
	return &PipelineError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// ErrorCode devolve o código de API de um erro do pipeline
func ErrorCode(err error) string {
	var pipelineErr *PipelineError
	if errors.As(err, &pipelineErr) {
		return pipelineErr.Code
	}

	switch {
	case errors.Is(err, ErrInvalidMonth):
		return apiErrors.ErrInvalidMonth
	case errors.Is(err, ErrInvalidLayerStyle):
		return apiErrors.ErrInvalidLayerStyle
	case errors.Is(err, ErrDatasetNotLoaded):
		return apiErrors.ErrDatasetNotLoaded
	}

	return apiErrors.ErrInternalServer
}
