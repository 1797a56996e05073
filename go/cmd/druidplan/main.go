/*
Copyright 2026 The Druid-Go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"flag"
	"os"

	"github.com/petermarshallio/druid/go/cmd/druidplan/command"
	"github.com/petermarshallio/druid/go/druid/log"
)

func main() {
	// Grab the glog flags registered on the global flag set and shove 'em
	// on in.
	command.Root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	if err := command.Root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
