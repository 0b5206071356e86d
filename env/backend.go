//go:build !wasm
// +build !wasm

package env

import (
	"fmt"
	"os"
)

func setupDefaultLogger() func(a ...any) {
	return func(a ...any) {
		fmt.Println(a...)
	}
}

func setupDefaultReadFile() func(path string) ([]byte, error) {
	return os.ReadFile
}

func setupDefaultWriteFile() func(filename string, data []byte) error {
	return func(filename string, data []byte) error {
		return os.WriteFile(filename, data, 0644)
	}
}
