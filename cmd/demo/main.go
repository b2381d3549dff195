// Command demo walks a lazily computed character set through its life:
// pending, read, mutated, read again, then consumed.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/bytedance/sonic"

	"github.com/mbeoliero/iou/pkg/charset"
	"github.com/mbeoliero/iou/pkg/lazy"
	"github.com/mbeoliero/iou/pkg/log"
)

var app = kingpin.New(
	"demo",
	"demo defers building a character set until it is first used.",
)

var (
	seed = app.Flag("seed", "String whose characters are collected.").Default("hello").String()
	drop = app.Flag("drop", "Characters removed through a mutable borrow.").Default("l").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	calls, err := run(os.Stdout, *seed, *drop)
	if err != nil {
		log.Error("demo failed: %v", err)
		os.Exit(1)
	}
	log.Info("initializer calls: %d", calls)
}

// run prints each stage to w and returns how many times the initializer ran.
func run(w io.Writer, seed, drop string) (int, error) {
	calls := 0
	chars := lazy.New(seed, func(s string) (charset.Set, error) {
		calls++
		return charset.Of(s), nil
	}, lazy.WithName("chars"))

	ok, err := chars.IsInitialized()
	if err != nil {
		return calls, err
	}
	log.Info("initialized before first use: %v", ok)

	r, err := chars.Read()
	if err != nil {
		return calls, err
	}
	err = show(w, "read", r.Value())
	r.Release()
	if err != nil {
		return calls, err
	}

	m, err := chars.Mutate()
	if err != nil {
		return calls, err
	}
	m.Value().Remove(drop)
	m.Release()

	r1, err := chars.Read()
	if err != nil {
		return calls, err
	}
	defer r1.Release()
	r2, err := chars.Read()
	if err != nil {
		return calls, err
	}
	defer r2.Release()

	if err = show(w, "first reader", r1.Value()); err != nil {
		return calls, err
	}
	if err = show(w, "second reader", r2.Value()); err != nil {
		return calls, err
	}
	r1.Release()
	r2.Release()

	set, err := chars.Consume()
	if err != nil {
		return calls, err
	}
	if err = show(w, "consumed", set); err != nil {
		return calls, err
	}
	return calls, nil
}

func show(w io.Writer, label string, set charset.Set) error {
	out, err := sonic.MarshalString(set.Sorted())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: %s\n", label, out)
	return err
}
