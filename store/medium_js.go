//go:build js

package store

import (
	"os"

	"github.com/gopherjs/gopherjs/js"
	"github.com/pkg/errors"
)

const localStorageKey = "pomotide.preferences"

// LocalMedium keeps the document in the browser's localStorage.
type LocalMedium struct{}

func NewLocalMedium() (*LocalMedium, error) {
	if js.Global.Get("localStorage") == js.Undefined {
		return nil, errors.New("localStorage unavailable")
	}
	return &LocalMedium{}, nil
}

func (m *LocalMedium) Read() ([]byte, error) {
	v := js.Global.Get("localStorage").Call("getItem", localStorageKey)
	if v == nil || v == js.Undefined || v.Interface() == nil {
		return nil, os.ErrNotExist
	}
	return []byte(v.String()), nil
}

func (m *LocalMedium) Write(raw []byte) error {
	js.Global.Get("localStorage").Call("setItem", localStorageKey, string(raw))
	return nil
}
