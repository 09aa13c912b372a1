// Package kvstore is the persistence port for single named values that must
// survive restarts (currently just the dice best score).
package kvstore

type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
