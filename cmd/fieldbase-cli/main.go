package main

import "github.com/fieldbase/admin/cmd/fieldbase-cli/cmd"

func main() {
	cmd.Execute()
}
