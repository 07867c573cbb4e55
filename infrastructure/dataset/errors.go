package dataset

import "errors"

var (
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")
	ErrEmptyFile         = errors.New("arquivo sem cabeçalho")
	ErrMissingColumn     = errors.New("coluna obrigatória ausente")
	ErrMalformedRow      = errors.New("linha inválida")
)
