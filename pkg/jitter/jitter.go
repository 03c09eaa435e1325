// Package jitter adiciona aleatoriedade a intervalos de backoff para evitar
// rajadas sincronizadas de retry contra serviços externos.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter é o fator de jitter padrão (50%).
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration devolve a duração com jitter aplicado.
// O resultado fica no intervalo [d, d*(1+jitterFactor)].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	jitter := globalRand.Float64() * jitterFactor * float64(d)
	randMutex.Unlock()
	return d + time.Duration(jitter)
}

// ExponentialBackoff calcula o backoff exponencial com jitter.
// base é a duração inicial, max o teto, attempt o número da tentativa
// (a partir de zero) e jitterFactor o fator de aleatoriedade.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, jitterFactor)
}
