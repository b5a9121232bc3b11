package utils

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const caracteresSenha = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// HashSenha gera o hash bcrypt da senha
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// ConferirSenha retorna true quando a senha bate com o hash
func ConferirSenha(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// GerarSenhaTemporaria sorteia uma senha de n caracteres sem símbolos ambíguos (0/O, 1/l).
func GerarSenhaTemporaria(n int) (string, error) {
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(caracteresSenha))))
		if err != nil {
			return "", err
		}
		out[i] = caracteresSenha[idx.Int64()]
	}
	return string(out), nil
}
