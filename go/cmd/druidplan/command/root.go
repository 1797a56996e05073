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

// Package command contains the druidplan command tree.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/petermarshallio/druid/go/druid/datasource"
	"github.com/petermarshallio/druid/go/druid/log"
	"github.com/petermarshallio/druid/go/druid/planning"
)

var Root = &cobra.Command{
	Use:   "druidplan [spec-file]",
	Short: "Analyzes a datasource spec and prints its planning breakdown.",
	Long: `Analyzes a JSON datasource spec and prints the base datasource,
the flattened join clauses, and the classification predicates physical
planning keys off. The spec is read from the given file, or from stdin
when no file is given.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Flush()
	},
}

func init() {
	log.RegisterFlags(Root.PersistentFlags())
}

func run(cmd *cobra.Command, args []string) error {
	data, err := readSpec(cmd, args)
	if err != nil {
		return err
	}

	ds, err := datasource.DecodeSpec(data)
	if err != nil {
		return err
	}
	log.V(2).Infof("analyzing datasource %v", ds)

	analysis := planning.Analyze(ds)
	printAnalysis(cmd.OutOrStdout(), analysis)
	return nil
}

func readSpec(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(cmd.InOrStdin())
}

func printAnalysis(w io.Writer, analysis *planning.DataSourceAnalysis) {
	fmt.Fprintf(w, "Base datasource: %v\n", analysis.BaseDataSource())

	if table, err := analysis.BaseTableDataSource(); err == nil {
		fmt.Fprintf(w, "Base table: %s\n", table.Name)
	}
	if union, ok := analysis.BaseUnionDataSource(); ok {
		fmt.Fprintf(w, "Base union tables: %s\n", strings.Join(union.TableNames(), ", "))
	}
	if spec, ok := analysis.BaseQuerySegmentSpec(); ok {
		fmt.Fprintf(w, "Base query intervals: %v\n", spec)
	}
	if filter, ok := analysis.JoinBaseTableFilter(); ok {
		fmt.Fprintf(w, "Base table filter: %s\n", filter.Expression)
	}

	fmt.Fprintf(w, "Concrete based:  %v\n", analysis.IsConcreteBased())
	fmt.Fprintf(w, "Table based:     %v\n", analysis.IsTableBased())
	fmt.Fprintf(w, "Global:          %v\n", analysis.IsGlobal())
	fmt.Fprintf(w, "Join:            %v\n", analysis.IsJoin())

	clauses := analysis.PreJoinableClauses()
	if len(clauses) == 0 {
		return
	}

	fmt.Fprintf(w, "\nJoin clauses, nearest to the base first:\n")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Type", "Prefix", "Datasource", "Condition", "Algorithm"})
	for i, clause := range clauses {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			string(clause.JoinType()),
			clause.Prefix(),
			fmt.Sprintf("%v", clause.DataSource()),
			clause.Condition().Expression,
			string(clause.Algorithm()),
		})
	}
	table.Render()
}
