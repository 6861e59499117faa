package safe

import "sync"

// KeyedMutex serializes work per key, e.g. per repository name or checkout
// path. The zero value is ready to use.
type KeyedMutex struct {
	locks sync.Map
}

// Lock blocks until key is free and returns the function releasing it.
func (x *KeyedMutex) Lock(key string) func() {
	v, _ := x.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
