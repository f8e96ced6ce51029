// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	visitorIDAlphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	visitorIDSuffixLength = 7
)

// Visitor representa um visitante anônimo identificado pelo token persistido no navegador
type Visitor struct {
	ID          string    `json:"id"`
	FirstSeenAt time.Time `json:"first_seen_at"`
}

// NewVisitorID gera um identificador no formato visitor_<timestamp-ms>_<sufixo-base36>.
// O sufixo aleatório torna a probabilidade de colisão entre navegadores desprezível.
func NewVisitorID() string {
	return fmt.Sprintf("visitor_%d_%s", time.Now().UnixMilli(), randomBase36(visitorIDSuffixLength))
}

func randomBase36(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand nunca deve falhar; se falhar, derivamos do relógio
		for i := range buf {
			buf[i] = byte(time.Now().UnixNano() >> (i * 8))
		}
	}

	for i, b := range buf {
		buf[i] = visitorIDAlphabet[int(b)%len(visitorIDAlphabet)]
	}

	return string(buf)
}
