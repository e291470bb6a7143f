// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/demo"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/random"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// set up the fault panic log now that logging is available
	fault.Initialise()
	defer fault.Finalise()

	verbose := len(options["verbose"]) > 0

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "watch", "w":
		err = watch(configurationFile, theConfiguration, verbose, log)
	default:
		err = runDemo(os.Stdout, theConfiguration, verbose, logger.New("demo"))
	}
	if nil != err {
		log.Criticalf("%s error: %s", command, err)
		exitwithstatus.Message("%s: %s error: %s", program, command, err)
	}
}

// build a tree from the configured or random keys and run the demonstration
func runDemo(w io.Writer, theConfiguration *Configuration, verbose bool, log *logger.L) error {

	keys := theConfiguration.Keys
	if 0 == len(keys) {
		var err error
		keys, err = random.Keys(theConfiguration.Size, theConfiguration.Maximum)
		if nil != err {
			log.Errorf("random keys error: %s", err)
			return err
		}
	}
	log.Debugf("keys: %v", keys)
	if verbose {
		fmt.Fprintf(w, "keys: %v\n", keys)
		fmt.Fprintf(w, "unbalance: %v\n\n", theConfiguration.Unbalance)
	}

	tree := bst.New(keys)
	return demo.Run(tree, theConfiguration.Unbalance, demo.NewConsole(w), log)
}

// run once then again on each change to the configuration file until
// the file is removed or a signal is received
func watch(configurationFile string, theConfiguration *Configuration, verbose bool, log *logger.L) error {

	channels := newWatcherChannel()
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), channels)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	demoLog := logger.New("demo")
	if err := runDemo(os.Stdout, theConfiguration, verbose, demoLog); nil != err {
		return err
	}

	// wait for CTRL-C before shutting down to allow manual testing
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			return nil

		case <-channels.remove:
			return fault.ErrFileRemoved

		case <-channels.change:
			newConfiguration, err := getConfiguration(configurationFile)
			if nil != err {
				// keep watching, the file may be mid edit
				log.Errorf("configuration reload error: %s", err)
				continue
			}
			fmt.Printf("\n---- configuration changed ----\n\n")
			if err := runDemo(os.Stdout, newConfiguration, verbose, demoLog); nil != err {
				log.Errorf("run error: %s", err)
			}
		}
	}
}
