// Package jitter предоставляет экспоненциальный backoff со случайным разбросом и
// цикл повторов поверх него. Используется при публикации событий в брокеры.
package jitter

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter: стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Backoff описывает политику задержек между попытками.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Factor float64 // доля случайного разброса, 0.5 означает +[0..50%]
}

// DefaultBackoff: политика по умолчанию для публикации событий.
func DefaultBackoff() Backoff {
	return Backoff{
		Base:   100 * time.Millisecond,
		Max:    2 * time.Second,
		Factor: DefaultJitter,
	}
}

// Delay возвращает задержку перед попыткой attempt (нумерация с нуля).
// Результат находится в диапазоне [d, d*(1+Factor)], где d = min(Base*2^attempt, Max).
func (b Backoff) Delay(attempt int) time.Duration {
	d := b.Base
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= b.Max {
			d = b.Max
			break
		}
	}

	return Duration(d, b.Factor)
}

// Duration возвращает продолжительность с применённым джиттером.
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	randMutex.Lock()
	j := globalRand.Float64() * jitterFactor * float64(d)
	randMutex.Unlock()
	return d + time.Duration(j)
}

// Retry вызывает fn до attempts раз, пока она возвращает ошибку, для которой retryable == true.
// Между попытками выдерживается задержка из b. Отмена контекста прерывает ожидание.
func Retry(ctx context.Context, attempts int, b Backoff, retryable func(error) bool, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}

		if !retryable(err) || attempt == attempts-1 {
			return err
		}

		timer := time.NewTimer(b.Delay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return err
}
