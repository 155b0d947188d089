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
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/notargets/gomesh/server"

	"github.com/spf13/cobra"
)

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves meshes and sessions over HTTP",
	Long: `
Serves mesh uploads, connectivity queries, quality reports and session
commands over HTTP until interrupted,

gomesh serve --addr :9898 `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err  error
			addr string
		)
		fmt.Println("serve called")
		if addr, err = cmd.Flags().GetString("addr"); err != nil {
			panic(err)
		}
		RunServe(addr)
	},
}

func init() {
	rootCmd.AddCommand(ServeCmd)
	ServeCmd.Flags().StringP("addr", "a", ":9898", "address and port the HTTP server listens on")
}

func RunServe(addr string) {
	srv := server.NewServer(addr)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-shutdownChan
	srv.Shutdown()
}
