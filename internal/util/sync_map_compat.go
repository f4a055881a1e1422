// Only build for Go pre-1.9 where sync.Map is not available.
//+build !go1.9

/**
 * Copyright (c) 2018, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util

import (
	"sync"
)

// SyncMap is a map safe for concurrent use by multiple goroutines. This is the fallback for Go
// pre-1.9 built on a sync.Mutex; it implements the subset of the sync.Map API this project uses.
// The zero value is empty and ready for use.
type SyncMap struct {
	mutex sync.Mutex
	m     map[interface{}]interface{}
}

// Load returns the value stored in the map for a key, or nil if no value is present. The ok result
// indicates whether value was found in the map.
func (m *SyncMap) Load(key interface{}) (value interface{}, ok bool) {
	m.mutex.Lock()
	value, ok = m.m[key]
	m.mutex.Unlock()
	return
}

// Store sets the value for a key.
func (m *SyncMap) Store(key, value interface{}) {
	m.mutex.Lock()
	if m.m == nil {
		m.m = map[interface{}]interface{}{}
	}
	m.m[key] = value
	m.mutex.Unlock()
}

// LoadOrStore returns the existing value for the key if present. Otherwise, it stores and returns
// the given value. The loaded result is true if the value was loaded, false if stored.
func (m *SyncMap) LoadOrStore(key, value interface{}) (actual interface{}, loaded bool) {
	m.mutex.Lock()
	if actual, loaded = m.m[key]; !loaded {
		if m.m == nil {
			m.m = map[interface{}]interface{}{}
		}
		m.m[key] = value
		actual = value
	}
	m.mutex.Unlock()
	return
}

// Delete deletes the value for a key.
func (m *SyncMap) Delete(key interface{}) {
	m.mutex.Lock()
	delete(m.m, key)
	m.mutex.Unlock()
}

// Range calls f sequentially for each key and value present in the map. If f returns false, Range
// stops the iteration.
func (m *SyncMap) Range(f func(key, value interface{}) bool) {
	m.mutex.Lock()
	keys := make([]interface{}, 0, len(m.m))
	for key := range m.m {
		keys = append(keys, key)
	}
	m.mutex.Unlock()

	for _, key := range keys {
		if value, ok := m.Load(key); ok {
			if !f(key, value) {
				return
			}
		}
	}
}
