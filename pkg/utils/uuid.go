package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters      = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	sessionIDLength = 12
)

// GenerateID gera o identificador de uma sessão de upload
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, sessionIDLength)
}
