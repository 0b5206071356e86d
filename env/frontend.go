//go:build wasm
// +build wasm

package env

import (
	"syscall/js"

	"github.com/tinywasm/fetch"
	. "github.com/tinywasm/fmt"
)

func setupDefaultLogger() func(a ...any) {
	return func(a ...any) {
		console := js.Global().Get("console")
		if !console.IsUndefined() {
			console.Call("log", Translate(a...).String())
		}
	}
}

// setupDefaultReadFile fetches resources over HTTP; in the browser static
// assets (fonts, dataset JSON) are served, not read from disk. The fetch
// callback runs on the event loop, so the reading goroutine blocks on a
// channel until it lands.
func setupDefaultReadFile() func(path string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		type result struct {
			data []byte
			err  error
		}
		done := make(chan result, 1)
		fetch.Get(path).Send(func(resp *fetch.Response, err error) {
			switch {
			case err != nil:
				done <- result{err: Errf("error fetching file %s: %v", path, err)}
			case resp.Status != 200:
				done <- result{err: Errf("error fetching file %s: status %d", path, resp.Status)}
			default:
				done <- result{data: resp.Body()}
			}
		})
		r := <-done
		return r.data, r.err
	}
}

// setupDefaultWriteFile triggers a browser download of the rendered bytes.
func setupDefaultWriteFile() func(filename string, data []byte) error {
	return func(filename string, data []byte) error {
		uint8Array := js.Global().Get("Uint8Array").New(len(data))
		js.CopyBytesToJS(uint8Array, data)

		blob := js.Global().Get("Blob").New([]any{uint8Array}, map[string]any{"type": "application/octet-stream"})
		url := js.Global().Get("URL").Call("createObjectURL", blob)

		link := js.Global().Get("document").Call("createElement", "a")
		link.Set("href", url)
		link.Set("download", filename)
		link.Call("click")

		return nil
	}
}
