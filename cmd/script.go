/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/notargets/gomesh/session"

	"github.com/spf13/cobra"
)

// ScriptCmd represents the script command
var ScriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Runs a YAML command script against a fresh session",
	Long: `
Runs a YAML command script against a fresh session, printing one result per command,

gomesh script -S commands.yaml `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err        error
			scriptFile string
		)
		fmt.Println("script called")
		if scriptFile, err = cmd.Flags().GetString("scriptFile"); err != nil {
			panic(err)
		}
		if len(scriptFile) == 0 {
			err = fmt.Errorf("must supply a script file (-S, --scriptFile) in YAML format")
			fmt.Printf("error: %s\n", err.Error())
			exampleFile := `
########################################
- {op: new_mesh2d, output: m}
- {op: push_vertex, mesh: m, coords: [0, 0]}
- {op: push_vertex, mesh: m, coords: [1, 0]}
- {op: push_edge, mesh: m, verts: [0, 1], tag: wall}
- {op: quality_report, mesh: m}
########################################
`
			fmt.Printf("Example Script File:%s\n", exampleFile)
			os.Exit(1)
		}
		RunScriptFile(scriptFile)
	},
}

func init() {
	rootCmd.AddCommand(ScriptCmd)
	ScriptCmd.Flags().StringP("scriptFile", "S", "", "YAML file holding a list of session commands")
}

func RunScriptFile(scriptFile string) {
	sn := session.NewSession()
	results, err := sn.RunScript(scriptFile)
	for i, res := range results {
		data, merr := json.Marshal(res)
		if merr != nil {
			panic(merr)
		}
		fmt.Printf("[%d] %s\n", i, data)
	}
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Applied %d commands\n", len(results))
}
