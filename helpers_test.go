package optargs

import (
	"reflect"
	"testing"
)

func TestRequiredArg(t *testing.T) {
	logTestOutput := setupLogging(t)
	defer logTestOutput()

	t.Run("pops in order", func(t *testing.T) {
		args := []string{"alpha", "beta"}
		first, args, err := RequiredArg(args, "FIRST")
		checkError(t, err, nil)
		second, args, err := RequiredArg(args, "SECOND")
		checkError(t, err, nil)
		if first != "alpha" || second != "beta" {
			t.Errorf("got %q, %q", first, second)
		}
		if len(args) != 0 {
			t.Errorf("args = %#v, want empty", args)
		}
	})
	t.Run("missing", func(t *testing.T) {
		_, rest, err := RequiredArg([]string{}, "NAME")
		checkError(t, err, ErrorMissingArgument)
		if len(rest) != 0 {
			t.Errorf("rest = %#v", rest)
		}
	})
	t.Run("int", func(t *testing.T) {
		n, rest, err := RequiredArgInt([]string{"42", "tail"}, "COUNT")
		checkError(t, err, nil)
		if n != 42 {
			t.Errorf("n = %d", n)
		}
		if !reflect.DeepEqual(rest, []string{"tail"}) {
			t.Errorf("rest = %#v", rest)
		}
	})
	t.Run("int conversion failure", func(t *testing.T) {
		_, _, err := RequiredArgInt([]string{"abc"}, "COUNT")
		checkError(t, err, ErrorConversion)
	})
	t.Run("float64", func(t *testing.T) {
		f, _, err := RequiredArgFloat64([]string{"3.25"}, "RATIO")
		checkError(t, err, nil)
		if f != 3.25 {
			t.Errorf("f = %v", f)
		}
	})
	t.Run("float64 conversion failure", func(t *testing.T) {
		_, _, err := RequiredArgFloat64([]string{"abc"}, "RATIO")
		checkError(t, err, ErrorConversion)
	})
}
