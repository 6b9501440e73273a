//go:build !(js && wasm)

package mapwidget

import (
	"context"
	"errors"
)

// ErrUnsupportedPlatform is returned when the widget is run outside a browser.
var ErrUnsupportedPlatform = errors.New("mapwidget requires GOOS=js GOARCH=wasm")

// Run fails outside js/wasm; the widget needs a host document.
func Run(context.Context, Config) error {
	return ErrUnsupportedPlatform
}
