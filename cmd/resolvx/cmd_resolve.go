/*
   Copyright 2025 The DIRPX Authors.

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
	"fmt"

	"github.com/spf13/cobra"
)

func newResolveCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Resolve type:name requests and print the artifact",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range args {
				normalized := s.resolver.Normalize(name)
				v, ok := s.resolver.Resolve(name)
				if !ok {
					fmt.Fprintf(out, "%s -> %s -> not resolved\n", name, normalized)
					continue
				}
				fmt.Fprintf(out, "%s -> %s -> %v\n", name, normalized, v)
			}
			return nil
		},
	}
}

func newNormalizeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize NAME...",
		Short: "Print the canonical form of type:name requests",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, name := range args {
				fmt.Fprintln(cmd.OutOrStdout(), s.resolver.Normalize(name))
			}
			return nil
		},
	}
}

func newSuffixCmd(f *flags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "suffix SUFFIX",
		Short: "List module paths ending with SUFFIX",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.load(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			for _, p := range s.index.WithSuffix(args[0], limit) {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of paths (0 = all)")
	return cmd
}
