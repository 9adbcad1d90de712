package memory

import (
	"context"
)

func (r *implRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if val, ok := r.local.Get(key); ok {
		return val, true, nil
	}
	if r.next == nil {
		return nil, false, nil
	}

	val, ok, err := r.next.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	r.local.Add(key, val)
	return val, true, nil
}

// Put writes through to the backing store first so the local tier never
// holds a value the durable store rejected.
func (r *implRepository) Put(ctx context.Context, key string, value []byte) error {
	if r.next != nil {
		if err := r.next.Put(ctx, key, value); err != nil {
			return err
		}
	}
	r.local.Add(key, value)
	return nil
}
