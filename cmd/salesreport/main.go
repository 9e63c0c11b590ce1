package main

import (
	"fmt"
	"os"

	"github.com/vfg2006/sales-dashboard-api/cmd/salesreport/cmd"
)

var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
