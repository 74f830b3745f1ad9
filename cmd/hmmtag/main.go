// Command hmmtag trains, evaluates and applies a first-order HMM
// part-of-speech tagger on CoNLL-U corpora.
//
//	hmmtag [-config hmmtag.yaml] [-v N] <train|eval|decode|curve|demo> [flags]
package main

import (
	"errors"
	stdflag "flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/hmmtag/config"
)

var (
	configPath string
	verbosity  int

	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

func rootCommand() *commander.Command {
	root := &commander.Command{
		UsageLine: "hmmtag [-config file] [-v level] <command>",
		Short:     "HMM part-of-speech tagger",
		Subcommands: []*commander.Command{
			cmdTrain(),
			cmdEval(),
			cmdDecode(),
			cmdCurve(),
			cmdDemo(),
		},
		Flag: *flag.NewFlagSet("hmmtag", flag.ExitOnError),
	}
	root.Flag.StringVar(&configPath, "config", "", "YAML configuration file")
	root.Flag.IntVar(&verbosity, "v", 0, "log verbosity")

	return root
}

func main() {
	defer glog.Flush()

	root := rootCommand()
	if err := root.Flag.Parse(os.Args[1:]); err != nil {
		fail(err)
	}
	setupLogging(verbosity)

	if err := dispatch(root, root.Flag.Args()); err != nil {
		fail(err)
	}
}

// dispatch runs the subcommand named by args[0]. commander only prints usage
// for a missing or unknown name, so those are reported as errors here.
func dispatch(root *commander.Command, args []string) error {
	if len(args) == 0 {
		root.Usage()
		return errors.New("missing command")
	}
	if args[0] != "help" && !hasSubcommand(root, args[0]) {
		root.Usage()
		return fmt.Errorf("unknown command %q", args[0])
	}

	return root.Dispatch(args)
}

func hasSubcommand(root *commander.Command, name string) bool {
	for _, c := range root.Subcommands {
		if c.Name() == name {
			return true
		}
	}

	return false
}

func fail(err error) {
	fmt.Printf("**err**: %v\n", err)
	glog.Flush()
	os.Exit(1)
}

// setupLogging routes glog to stderr at the requested verbosity.
func setupLogging(v int) {
	_ = stdflag.Set("logtostderr", "true")
	_ = stdflag.Set("v", strconv.Itoa(v))
	_ = stdflag.CommandLine.Parse(nil)
}

func loadConfig() (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}

	return config.Load(configPath)
}
