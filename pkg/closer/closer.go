package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

// Func: сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

type resource struct {
	name string
	fn   Func
}

// Closer обеспечивает потокобезопасное закрытие ресурсов в порядке, обратном регистрации.
type Closer struct {
	resources     []resource
	mu            sync.Mutex
	once          sync.Once
	forcedTimeout time.Duration
	logger        logger.Logger
}

// NewCloser создает новый экземпляр Closer.
// forcedTimeout: время на принудительное закрытие ресурсов, не успевших закрыться до отмены контекста.
func NewCloser(forcedTimeout time.Duration, logger logger.Logger) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{
		forcedTimeout: forcedTimeout,
		logger:        logger,
	}
}

// Add регистрирует ресурс под именем name.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, resource{name: name, fn: f})
}

// Close закрывает ресурсы (LIFO). Повторные вызовы ничего не делают.
// Если ctx отменяется раньше, оставшиеся ресурсы закрываются параллельно с forcedTimeout.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		resources := c.resources
		c.mu.Unlock()

		var errs []string
		for i := len(resources) - 1; i >= 0; i-- {
			r := resources[i]
			done := make(chan error, 1)
			go func() { done <- r.fn(ctx) }()

			select {
			case closeErr := <-done:
				if closeErr != nil {
					errs = append(errs, fmt.Sprintf("[!] %s: %v", r.name, closeErr))
					continue
				}
				c.logger.Infof("%s closed", r.name)
			case <-ctx.Done():
				errs = append(errs, c.forcedClose(resources[:i+1])...)
				err = fmt.Errorf("shutdown interrupted after %d/%d resources:\n%s",
					len(resources)-1-i, len(resources), strings.Join(errs, "\n"))
				return
			}
		}

		if len(errs) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(errs, "\n"))
		}
	})

	return err
}

func (c *Closer) forcedClose(resources []resource) []string {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []string
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for _, r := range resources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.fn(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Sprintf("[FORCED] %s: %v", r.name, err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}
