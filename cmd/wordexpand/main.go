// Copyright 2019-present Ganbaro Digital Ltd
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions
// are met:
//
//   * Redistributions of source code must retain the above copyright
//     notice, this list of conditions and the following disclaimer.
//
//   * Redistributions in binary form must reproduce the above copyright
//     notice, this list of conditions and the following disclaimer in
//     the documentation and/or other materials provided with the
//     distribution.
//
//   * Neither the names of the copyright holders nor the names of his
//     contributors may be used to endorse or promote products derived
//     from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS
// FOR A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE
// COPYRIGHT OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT,
// INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING,
// BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
// LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
// CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT
// LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN
// ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Command wordexpand is a small demonstration CLI that runs the
// wordexpand pipeline over its arguments and prints the resulting
// fields, one per line. It exists to exercise the library end-to-end
// with a real VariableStore, Globber, and pattern matcher wired up, the
// way an embedding shell would.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ganbarodigital/go_wordexpand"
	"github.com/ganbarodigital/go_wordexpand/collab/globfs"
	"github.com/ganbarodigital/go_wordexpand/collab/homedir"
	"github.com/ganbarodigital/go_wordexpand/collab/patternmatch"
	"github.com/ganbarodigital/go_wordexpand/collab/varstore"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordexpand [word...]",
		Short: "Expand shell words through the tilde/parameter/brace/split/glob pipeline",
		RunE:  runExpand,
	}
	cmd.Flags().Bool("noglob", false, "disable filename generation")
	cmd.Flags().Bool("nullglob", false, "drop non-matching glob patterns instead of keeping them literal")
	cmd.Flags().Bool("braceexpand", true, "enable brace expansion")
	cmd.Flags().StringToString("var", nil, "predefine a variable as name=value (repeatable)")
	return cmd
}

func runExpand(cmd *cobra.Command, args []string) error {
	v := viper.New()
	v.BindPFlags(cmd.Flags())

	log := logrus.New()
	store := varstore.New()
	for name, val := range v.GetStringMapString("var") {
		if err := store.Assign(name, val, true); err != nil {
			return err
		}
	}
	if store.Lookup("HOME").Kind == wordexpand.NotFound {
		if home, err := os.UserHomeDir(); err == nil {
			store.Assign("HOME", home, true)
		}
	}

	collab := &wordexpand.Collaborators{
		Vars:     store,
		Patterns: patternmatch.Matcher{},
		Glob:     globfs.New(""),
		HomeDirs: homedir.OS{},
		Errors:   wordexpand.NewLogReporter(log),
	}

	opts := wordexpand.Options{
		Glob:        !v.GetBool("noglob"),
		Nullglob:    v.GetBool("nullglob"),
		BraceExpand: v.GetBool("braceexpand"),
		CaseGlob:    true,
	}

	ctx := context.Background()
	for _, arg := range args {
		units := []wordexpand.WordUnit{{Kind: wordexpand.WordString, String: arg}}
		fields, err := wordexpand.ExpandMultiple(ctx, units, collab, opts)
		if err != nil {
			return err
		}
		for _, f := range fields {
			fmt.Println(f)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wordexpand: "+err.Error())
		os.Exit(1)
	}
}
