package engine

import "context"

// goRunner выполняет задачу в отдельной горутине и возвращает результат в очередь движка
type goRunner struct {
	e *Engine
}

func (r goRunner) Go(task func(ctx context.Context) Event) {
	ctx := r.e.runContext()
	go func() {
		ev := task(ctx)
		if ev != nil {
			r.e.Post(ev)
		}
	}()
}
