// Package main demonstrates usage of the scg-errno packages.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/next-trace/scg-errno/errno"
	"github.com/next-trace/scg-errno/error"
)

func main() {
	// Direct lookup
	if c, ok := errno.FromCode(2); ok {
		fmt.Println(c.String(), "=>", c.Description())
	}

	if _, ok := errno.FromCode(59); !ok {
		fmt.Println("59 is unassigned")
	}

	// Classify the error returned by a failing call, then add context
	_, err := os.Open("config.toml")
	err = error.Wrap(err, "config.toml missing")
	fmt.Println(err)

	var w error.Wrapper[errno.Code]
	if errors.As(err, &w) {
		d, _ := w.Detail()
		fmt.Println(w.Kind().String(), "detail:", d)
	}

	if errors.Is(err, os.ErrNotExist) {
		fmt.Println("matched os.ErrNotExist through the wrapper")
	}
}
