package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID gera o id curto de uma visão do painel, usado para correlacionar logs
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 10)
}
