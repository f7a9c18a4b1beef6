// vkey converts between variant strings and VariantKeys.
//
// Usage:
//
//	vkey vk <variant> [-x|--hex]   e.g. vkey vk 1-976157-T-C
//	vkey kv <key> [-x|--hex]       e.g. vkey kv --hex 807728e88e80000
//	vkey --version
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/carbocation/variantkey"
	"github.com/grailbio/base/log"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

// errUsage is returned for bad invocations; the usage text has already been
// printed.
var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}
	code := exitCode(err)
	if code < 0 {
		log.Fatalf("%v", pfx.Err(err))
	}
	if code != 2 {
		log.Error.Printf("%v", err)
	}
	os.Exit(code)
}

// exitCode maps an error from run to a process status. Unparsable variant or
// key text is reported but not fatal. A negative result means err was not
// expected at all.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	case errors.Is(err, variantkey.ErrInvalidVariant),
		errors.Is(err, variantkey.ErrInvalidKey):
		return 0
	case errors.Is(err, variantkey.ErrPositionOutOfRange):
		return 1
	}
	return -1
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errUsage
	}

	switch cmd := args[0]; cmd {
	case "vk":
		return runSubcommand(cmd, args[1:], stdout, stderr, toKey)
	case "kv":
		return runSubcommand(cmd, args[1:], stdout, stderr, toVariant)
	case "-h", "--help", "help":
		printUsage(stdout)
		return nil
	case "-V", "--version", "version":
		_, err := fmt.Fprintln(stdout, "vkey", version)
		return err
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		printUsage(stderr)
		return errUsage
	}
}

func runSubcommand(name string, args []string, stdout, stderr io.Writer, fn func(arg string, hex bool, w io.Writer) error) error {
	var hex bool
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVarP(&hex, "hex", "x", false, "read or write the key in hexadecimal")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return errUsage
	}

	if flagSet.NArg() != 1 {
		fmt.Fprintf(stderr, "%s takes exactly one argument, but found %d\n", name, flagSet.NArg())
		printUsage(stderr)
		return errUsage
	}
	return fn(flagSet.Arg(0), hex, stdout)
}

func toKey(arg string, hex bool, w io.Writer) error {
	v, err := variantkey.ParseVariant(arg)
	if err != nil {
		return err
	}
	vk, err := v.Key()
	if err != nil {
		return err
	}

	if hex {
		_, err = fmt.Fprintln(w, vk.Hex())
	} else {
		_, err = fmt.Fprintln(w, vk.String())
	}
	return err
}

func toVariant(arg string, hex bool, w io.Writer) error {
	vk, err := variantkey.ParseKey(arg, hex)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, variantkey.Decode(vk))
	return err
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `vkey converts between variant strings and VariantKeys.

Usage:
  vkey vk <variant> [-x|--hex]   print the key for CHROM-POS-REF-ALT
  vkey kv <key> [-x|--hex]       print the variant for a key
  vkey --version                 print the version

Variants look like 1-976157-T-C or MT:12345:A:T. Keys are decimal unless
--hex is given.
`)
}
