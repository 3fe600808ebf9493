package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/attrkit/cfgattrs"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	traceFlag = kingpin.Flag("trace", "Dump recognized entries to stderr.").Bool()
	fileArg   = kingpin.Arg("file", "Source file to expand (defaults to stdin).").String()
)

func main() {
	kingpin.CommandLine.Help = `Expands #[cfg_attrs { ... }] attributes in a source file into
standard #[cfg_attr(...)] attributes and prints the result.`
	kingpin.Parse()

	name := *fileArg
	var source []byte
	var err error
	if name == "" {
		name = "<stdin>"
		source, err = ioutil.ReadAll(os.Stdin)
	} else {
		source, err = ioutil.ReadFile(name)
	}
	kingpin.FatalIfError(err, "")

	options := []cfgattrs.Option{cfgattrs.Filename(name)}
	if *traceFlag {
		options = append(options, cfgattrs.Trace(os.Stderr))
	}
	expander, err := cfgattrs.New(options...)
	kingpin.FatalIfError(err, "")

	out, err := expander.ExpandSource(string(source))
	kingpin.FatalIfError(err, "")
	fmt.Print(out)
}
