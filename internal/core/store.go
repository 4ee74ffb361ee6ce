package core

// KeyValueStore is the durable storage capability consumed by games.
// Get reports ok=false when the key has never been written.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MaxStore is a KeyValueStore that can raise a counter in one atomic
// step, for values shared by concurrent writers.
//
// SetIfGreater writes value (as a decimal string) when the key is absent,
// holds something other than a non-negative integer, or holds a smaller
// integer. It reports whether it wrote.
type MaxStore interface {
	KeyValueStore
	SetIfGreater(key string, value int) (written bool, err error)
}
