package util

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const ticketAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

func GenerateNChar(n int) (string, error) {
	id, err := gonanoid.New(n)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Human readable maintenance ticket, e.g. "MNT-7K2Q9XHD"
func GenerateTicketNumber() (string, error) {
	id, err := gonanoid.Generate(ticketAlphabet, 8)
	if err != nil {
		return "", err
	}
	return "MNT-" + strings.ToUpper(id), nil
}
