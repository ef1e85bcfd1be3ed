// Command boxiter reads a YAML document and prints the elements of the value it contains, one per
// line, using the uniform iteration layer.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/lyraproj/boxiter/config"
	"github.com/lyraproj/boxiter/eval"
	"github.com/lyraproj/boxiter/iter"
	"github.com/lyraproj/boxiter/logger"
	"github.com/lyraproj/boxiter/types"
	"github.com/lyraproj/boxiter/yaml"
)

func main() {
	configFile := flag.String(`config`, ``, `path to a configuration file`)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, `usage: boxiter [-config file] <document.yaml>`)
		os.Exit(2)
	}
	if err := run(*configFile, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configFile, document string) error {
	var opts []config.LoaderOption
	if configFile != `` {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	rt, err := cfg.Build()
	if err != nil {
		return err
	}

	data, err := ioutil.ReadFile(document)
	if err != nil {
		return err
	}
	v, err := yaml.Unmarshal(data)
	if err != nil {
		return err
	}
	logger.Debug(rt.Logger, `iterating %s value from %s`, v.Kind(), document)
	return iter.Each(v, func(e eval.Value) {
		types.ToString(e, os.Stdout)
		fmt.Fprintln(os.Stdout)
	}, rt.IterOptions...)
}
