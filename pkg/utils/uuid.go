package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o sufixo curto usado nos identificadores de negócio
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, 6)
}
