package main

import "github.com/Peter6188/tb-visualization-dashboard-V2/cmd"

func main() {
	cmd.Execute()
}
