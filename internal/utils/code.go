package utils

import (
	"crypto/rand"
	"math/big"
)

const (
	studentIDPrefix = "STU"
	studentIDMin    = 1000
	studentIDSpan   = 9000 // STU1000..STU9999
)

// GenerateStudentID returns a random id in the STU1000..STU9999 range.
func GenerateStudentID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(studentIDSpan))
	if err != nil {
		return "", err
	}
	return studentIDPrefix + big.NewInt(n.Int64()+studentIDMin).String(), nil
}

// UniqueStudentID draws ids until one is not taken. After maxTries it widens
// the range with a longer random suffix so a full id space cannot loop forever.
func UniqueStudentID(taken func(string) bool, maxTries int) (string, error) {
	if maxTries <= 0 {
		maxTries = 32
	}
	for i := 0; i < maxTries; i++ {
		id, err := GenerateStudentID()
		if err != nil {
			return "", err
		}
		if !taken(id) {
			return id, nil
		}
	}
	for {
		n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
		if err != nil {
			return "", err
		}
		id := studentIDPrefix + n.String()
		if !taken(id) {
			return id, nil
		}
	}
}
