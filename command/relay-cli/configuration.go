// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/notaryrelay/configuration"
	"github.com/bitmark-inc/notaryrelay/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "relay.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "relay-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// DatabaseType - location of the ledger database
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// PeerType - the relay contract on the other ledger
type PeerType struct {
	Channel string `gluamapper:"channel" json:"channel"`
	ChainID string `gluamapper:"chain_id" json:"chain_id"`
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Contract      string               `gluamapper:"contract" json:"contract"`
	ChainID       string               `gluamapper:"chain_id" json:"chain_id"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Peer          PeerType             `gluamapper:"peer" json:"peer"`
	Notaries      []string             `gluamapper:"notaries" json:"notaries"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	if "" == options.Contract {
		return nil, fmt.Errorf("contract address is not set")
	}
	if "" == options.ChainID {
		return nil, fmt.Errorf("chain_id is not set")
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// make absolute and create directories if they do not already exist
	util.MakeAbsolute(options.DataDirectory,
		&options.Database.Directory,
		&options.Logging.Directory,
	)
	for _, d := range []string{options.Database.Directory, options.Logging.Directory} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// file names must not contain directories
	options.Database.Name, err = util.PlainName(options.Database.Directory, options.Database.Name)
	if nil != err {
		return nil, err
	}
	if _, err := util.PlainName(options.Logging.Directory, options.Logging.File); nil != err {
		return nil, err
	}

	return options, nil
}
