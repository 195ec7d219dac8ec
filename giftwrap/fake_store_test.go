package giftwrap

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type memStore struct {
	mu   sync.Mutex
	rows map[string]string
	err  error
}

func newMemStore() *memStore { return &memStore{rows: map[string]string{}} }

func metaKey(productID uint, key string) string { return fmt.Sprintf("%d/%s", productID, key) }

func (s *memStore) GetMeta(_ context.Context, productID uint, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", false, s.err
	}
	v, ok := s.rows[metaKey(productID, key)]
	return v, ok, nil
}

func (s *memStore) SetMeta(_ context.Context, productID uint, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.rows[metaKey(productID, key)] = value
	return nil
}

type orderMeta struct {
	ItemID uint
	Key    string
	Value  string
}

type memOrderStore struct {
	rows []orderMeta
	err  error
}

func (s *memOrderStore) AddMeta(_ context.Context, itemID uint, key, value string) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, orderMeta{ItemID: itemID, Key: key, Value: value})
	return nil
}

var errStore = errors.New("store down")
